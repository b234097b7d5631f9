package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meetingplanner/internal/domain"
)

type meetingService struct {
	meetingRepo     domain.MeetingRepository
	participantRepo domain.MeetingParticipantRepository
	userRepo        domain.UserRepository
	emailService    domain.EmailService
	contextTimeout  time.Duration
}

// NewMeetingService creates a MeetingService with the given repositories.
func NewMeetingService(
	meetingRepo domain.MeetingRepository,
	participantRepo domain.MeetingParticipantRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.MeetingService {
	return &meetingService{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		emailService:    emailService,
		contextTimeout:  timeout,
	}
}

func validateMeeting(title string, maxParticipants int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if maxParticipants <= 0 {
		return fmt.Errorf("%w: max participants must be greater than 0", domain.ErrInvalidInput)
	}
	return nil
}

func (s *meetingService) Create(ctx context.Context, title, description string, maxParticipants int, ownerID string) (*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateMeeting(title, maxParticipants); err != nil {
		return nil, err
	}
	meeting := domain.NewMeeting(strings.TrimSpace(title), description, maxParticipants, ownerID, time.Now())
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}
	return meeting, nil
}

func (s *meetingService) List(ctx context.Context) ([]*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return meetings, nil
}

func (s *meetingService) Update(ctx context.Context, meetingID, userID, title, description string, maxParticipants int) (*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if err := requireOwner(meeting.OwnerID, userID); err != nil {
		return nil, err
	}
	if err := validateMeeting(title, maxParticipants); err != nil {
		return nil, err
	}

	updated := *meeting
	updated.Title = strings.TrimSpace(title)
	updated.Description = description
	updated.MaxParticipants = maxParticipants
	// The capacity floor is enforced inside the repository, under the same
	// meeting row lock the join path takes; a pre-check here could not see a
	// join that commits between the count read and the write.
	if err := s.meetingRepo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
			return nil, err
		}
		return nil, fmt.Errorf("update meeting: %w", err)
	}
	return &updated, nil
}

func (s *meetingService) Delete(ctx context.Context, meetingID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get meeting: %w", err)
	}
	if err := requireOwner(meeting.OwnerID, userID); err != nil {
		return err
	}
	// Participant and schedule rows go with the meeting (ON DELETE CASCADE).
	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}

func (s *meetingService) Join(ctx context.Context, meetingID, userID string) (*domain.MeetingParticipant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}

	role := domain.RoleParticipant
	if meeting.OwnerID == userID {
		role = domain.RoleOwner
	}
	participant := &domain.MeetingParticipant{
		MeetingID: meetingID,
		UserID:    userID,
		Status:    domain.StatusAttending,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.participantRepo.Join(ctx, participant); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrAlreadyJoined),
			errors.Is(err, domain.ErrCapacityExceeded):
			return nil, err
		}
		return nil, fmt.Errorf("join meeting: %w", err)
	}

	s.notifyOwner(meeting, userID)

	return participant, nil
}

// notifyOwner emails the meeting owner about a new participant. Best effort;
// join success never depends on it.
func (s *meetingService) notifyOwner(meeting *domain.Meeting, joinedUserID string) {
	if meeting.OwnerID == joinedUserID {
		return
	}
	go func() {
		ctx := context.Background()
		owner, err := s.userRepo.GetByID(ctx, meeting.OwnerID)
		if err != nil {
			return
		}
		joined, err := s.userRepo.GetByID(ctx, joinedUserID)
		if err != nil {
			return
		}
		_ = s.emailService.SendMeetingJoined(ctx, &domain.MeetingJoinedEmailData{
			Email:            owner.Email,
			MeetingTitle:     meeting.Title,
			ParticipantEmail: joined.Email,
		})
	}()
}

func (s *meetingService) Leave(ctx context.Context, meetingID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get meeting: %w", err)
	}
	// Owners may leave their own participant row; the meeting itself stays.
	if err := s.participantRepo.Delete(ctx, meetingID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("leave meeting: %w", err)
	}
	return nil
}

func (s *meetingService) Participants(ctx context.Context, meetingID string) ([]*domain.ParticipantInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	participants, err := s.participantRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}
