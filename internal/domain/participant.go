package domain

import (
	"context"
	"time"
)

// AttendanceStatus is the closed set of participation states.
type AttendanceStatus string

const (
	StatusAttending    AttendanceStatus = "ATTENDING"
	StatusMaybe        AttendanceStatus = "MAYBE"
	StatusNotAttending AttendanceStatus = "NOT_ATTENDING"
)

// Valid reports whether s is one of the defined attendance statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusAttending, StatusMaybe, StatusNotAttending:
		return true
	}
	return false
}

// ParticipantRole distinguishes the entity owner from ordinary participants.
type ParticipantRole string

const (
	RoleOwner       ParticipantRole = "OWNER"
	RoleParticipant ParticipantRole = "PARTICIPANT"
)

// MeetingParticipant links one user to one meeting. At most one row exists per
// (meeting, user) pair.
// swagger:model MeetingParticipant
type MeetingParticipant struct {
	ID        string           `json:"id"`
	MeetingID string           `json:"meeting_id"`
	UserID    string           `json:"user_id"`
	Status    AttendanceStatus `json:"status"`
	Role      ParticipantRole  `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
}

// ScheduleParticipant links one user to one schedule. At most one row exists
// per (schedule, user) pair, and only meeting participants may appear here.
// swagger:model ScheduleParticipant
type ScheduleParticipant struct {
	ID         string           `json:"id"`
	ScheduleID string           `json:"schedule_id"`
	UserID     string           `json:"user_id"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ParticipantInfo is a participant row joined with the user's email for listings.
// swagger:model ParticipantInfo
type ParticipantInfo struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Email     string           `json:"email"`
	Status    AttendanceStatus `json:"status"`
	Role      ParticipantRole  `json:"role,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// MeetingParticipantRepository defines storage for meeting memberships.
// Join must be atomic with respect to the capacity check: two concurrent joins
// racing on the last free slot must not both succeed.
type MeetingParticipantRepository interface {
	// Join inserts a participant row iff no row exists for (MeetingID, UserID)
	// and the meeting's capacity is not yet reached. The meeting row is locked
	// for the duration so the count-then-insert sequence serializes. Returns
	// ErrNotFound, ErrAlreadyJoined, or ErrCapacityExceeded.
	Join(ctx context.Context, p *MeetingParticipant) error
	Exists(ctx context.Context, meetingID, userID string) (bool, error)
	CountByMeeting(ctx context.Context, meetingID string) (int, error)
	ListByMeeting(ctx context.Context, meetingID string) ([]*ParticipantInfo, error)
	// Delete removes the row for (meetingID, userID); ErrNotFound if absent.
	Delete(ctx context.Context, meetingID, userID string) error
}

// ScheduleParticipantRepository defines storage for schedule memberships.
type ScheduleParticipantRepository interface {
	// Join inserts a participant row iff no row exists for (ScheduleID, UserID)
	// and the parent meeting's capacity is not yet reached. The parent meeting
	// row is locked so concurrent joins serialize against the shared ceiling.
	// Returns ErrNotFound, ErrAlreadyJoined, or ErrCapacityExceeded.
	Join(ctx context.Context, p *ScheduleParticipant) error
	Exists(ctx context.Context, scheduleID, userID string) (bool, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*ParticipantInfo, error)
	Delete(ctx context.Context, scheduleID, userID string) error
}
