package domain

import (
	"context"
	"time"
)

// Meeting is the top-level organizing entity. MaxParticipants bounds both its
// own participant list and every schedule under it.
// swagger:model Meeting
type Meeting struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaxParticipants int       `json:"max_participants"`
	OwnerID         string    `json:"owner_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewMeeting returns a new Meeting. ID is set by the repository on create.
func NewMeeting(title, description string, maxParticipants int, ownerID string, createdAt time.Time) *Meeting {
	return &Meeting{
		Title:           title,
		Description:     description,
		MaxParticipants: maxParticipants,
		OwnerID:         ownerID,
		CreatedAt:       createdAt,
	}
}

// MeetingRepository defines the interface for meeting storage. Deleting a
// meeting cascades to its schedules and all participant rows.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *Meeting) error
	GetByID(ctx context.Context, id string) (*Meeting, error)
	List(ctx context.Context) ([]*Meeting, error)
	// Update must check MaxParticipants against the current participant count
	// under the same lock the participant Join takes, so a concurrent join
	// cannot leave the meeting with more members than capacity. Returns
	// ErrInvalidInput when the new capacity is below the count.
	Update(ctx context.Context, meeting *Meeting) error
	Delete(ctx context.Context, id string) error
}

// MeetingService defines meeting CRUD and the meeting-level join/leave protocol.
type MeetingService interface {
	Create(ctx context.Context, title, description string, maxParticipants int, ownerID string) (*Meeting, error)
	List(ctx context.Context) ([]*Meeting, error)
	// Update fails with ErrForbidden unless userID owns the meeting, and with a
	// validation error when maxParticipants is below the current participant count.
	Update(ctx context.Context, meetingID, userID, title, description string, maxParticipants int) (*Meeting, error)
	Delete(ctx context.Context, meetingID, userID string) error
	// Join admits userID with status ATTENDING; role is OWNER when userID owns
	// the meeting. Fails with ErrAlreadyJoined or ErrCapacityExceeded.
	Join(ctx context.Context, meetingID, userID string) (*MeetingParticipant, error)
	// Leave removes userID's own participant row; ErrNotFound if absent.
	Leave(ctx context.Context, meetingID, userID string) error
	Participants(ctx context.Context, meetingID string) ([]*ParticipantInfo, error)
}
