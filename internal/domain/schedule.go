package domain

import (
	"context"
	"time"
)

// Schedule is a sub-event belonging to exactly one meeting. Date and Time are
// stored as the caller-supplied strings, matching the API contract.
// swagger:model Schedule
type Schedule struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSchedule returns a new Schedule. ID is set by the repository on create.
func NewSchedule(meetingID, title, date, timeOfDay, location, ownerID string, createdAt time.Time) *Schedule {
	return &Schedule{
		MeetingID: meetingID,
		Title:     title,
		Date:      date,
		Time:      timeOfDay,
		Location:  location,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
	}
}

// ScheduleRepository defines the interface for schedule storage. Deleting a
// schedule cascades to its participant rows.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *Schedule) error
	GetByID(ctx context.Context, id string) (*Schedule, error)
	ListByMeeting(ctx context.Context, meetingID string) ([]*Schedule, error)
	Update(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id string) error
}

// ScheduleService defines schedule CRUD and the schedule-level join/leave
// protocol. Every operation takes the parent meetingID and fails with
// ErrNotFound when the schedule does not belong to that meeting.
type ScheduleService interface {
	Create(ctx context.Context, meetingID, userID, title, date, timeOfDay, location string) (*Schedule, error)
	ListByMeeting(ctx context.Context, meetingID string) ([]*Schedule, error)
	Update(ctx context.Context, meetingID, scheduleID, userID, title, date, timeOfDay, location string) (*Schedule, error)
	Delete(ctx context.Context, meetingID, scheduleID, userID string) error
	// Join requires an existing meeting membership (ErrForbidden otherwise) and
	// is bounded by the parent meeting's capacity.
	Join(ctx context.Context, meetingID, scheduleID, userID string) (*ScheduleParticipant, error)
	Leave(ctx context.Context, meetingID, scheduleID, userID string) error
	Participants(ctx context.Context, meetingID, scheduleID string) ([]*ParticipantInfo, error)
}
