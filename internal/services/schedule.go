package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meetingplanner/internal/domain"
)

type scheduleService struct {
	scheduleRepo           domain.ScheduleRepository
	meetingRepo            domain.MeetingRepository
	meetingParticipantRepo domain.MeetingParticipantRepository
	participantRepo        domain.ScheduleParticipantRepository
	contextTimeout         time.Duration
}

// NewScheduleService creates a ScheduleService with the given repositories.
func NewScheduleService(
	scheduleRepo domain.ScheduleRepository,
	meetingRepo domain.MeetingRepository,
	meetingParticipantRepo domain.MeetingParticipantRepository,
	participantRepo domain.ScheduleParticipantRepository,
	timeout time.Duration,
) domain.ScheduleService {
	return &scheduleService{
		scheduleRepo:           scheduleRepo,
		meetingRepo:            meetingRepo,
		meetingParticipantRepo: meetingParticipantRepo,
		participantRepo:        participantRepo,
		contextTimeout:         timeout,
	}
}

func validateSchedule(title, date, timeOfDay, location string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return fmt.Errorf("%w: time is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}
	return nil
}

// getInMeeting loads a schedule and verifies it belongs to the meeting named
// in the request path. A schedule reached through the wrong meeting is
// indistinguishable from a missing one.
func (s *scheduleService) getInMeeting(ctx context.Context, meetingID, scheduleID string) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if schedule.MeetingID != meetingID {
		return nil, domain.ErrNotFound
	}
	return schedule, nil
}

func (s *scheduleService) Create(ctx context.Context, meetingID, userID, title, date, timeOfDay, location string) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if err := validateSchedule(title, date, timeOfDay, location); err != nil {
		return nil, err
	}

	schedule := domain.NewSchedule(meetingID, strings.TrimSpace(title), date, timeOfDay, location, userID, time.Now())
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) ListByMeeting(ctx context.Context, meetingID string) ([]*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	schedules, err := s.scheduleRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

func (s *scheduleService) Update(ctx context.Context, meetingID, scheduleID, userID, title, date, timeOfDay, location string) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	schedule, err := s.getInMeeting(ctx, meetingID, scheduleID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(schedule.OwnerID, userID); err != nil {
		return nil, err
	}
	if err := validateSchedule(title, date, timeOfDay, location); err != nil {
		return nil, err
	}

	schedule.Title = strings.TrimSpace(title)
	schedule.Date = date
	schedule.Time = timeOfDay
	schedule.Location = location
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, meetingID, scheduleID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	schedule, err := s.getInMeeting(ctx, meetingID, scheduleID)
	if err != nil {
		return err
	}
	if err := requireOwner(schedule.OwnerID, userID); err != nil {
		return err
	}
	// Participant rows go with the schedule (ON DELETE CASCADE).
	if err := s.scheduleRepo.Delete(ctx, scheduleID); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) Join(ctx context.Context, meetingID, scheduleID, userID string) (*domain.ScheduleParticipant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getInMeeting(ctx, meetingID, scheduleID); err != nil {
		return nil, err
	}

	// Schedule membership presupposes meeting membership.
	isMember, err := s.meetingParticipantRepo.Exists(ctx, meetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("check meeting membership: %w", err)
	}
	if !isMember {
		return nil, domain.ErrForbidden
	}

	participant := &domain.ScheduleParticipant{
		ScheduleID: scheduleID,
		UserID:     userID,
		Status:     domain.StatusAttending,
		CreatedAt:  time.Now(),
	}
	if err := s.participantRepo.Join(ctx, participant); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrAlreadyJoined),
			errors.Is(err, domain.ErrCapacityExceeded):
			return nil, err
		}
		return nil, fmt.Errorf("join schedule: %w", err)
	}
	return participant, nil
}

func (s *scheduleService) Leave(ctx context.Context, meetingID, scheduleID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getInMeeting(ctx, meetingID, scheduleID); err != nil {
		return err
	}
	if err := s.participantRepo.Delete(ctx, scheduleID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("leave schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) Participants(ctx context.Context, meetingID, scheduleID string) ([]*domain.ParticipantInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getInMeeting(ctx, meetingID, scheduleID); err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}
