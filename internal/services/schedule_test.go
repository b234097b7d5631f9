package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetingplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	meetings            *fakeMeetingRepo
	schedules           *fakeScheduleRepo
	meetingParticipants *fakeMeetingParticipantRepo
	participants        *fakeScheduleParticipantRepo
	svc                 domain.ScheduleService
}

// newScheduleFixture wires a meeting "mtg-1" owned by user-1 with the given
// capacity, and a schedule "sch-1" under it.
func newScheduleFixture(t *testing.T, maxParticipants int) *scheduleFixture {
	t.Helper()
	meetings := newFakeMeetingRepo()
	meetings.addMeeting("mtg-1", "user-1", maxParticipants)
	schedules := newFakeScheduleRepo()
	schedules.addSchedule("sch-1", "mtg-1", "user-1")
	meetingParticipants := newFakeMeetingParticipantRepo(meetings)
	participants := newFakeScheduleParticipantRepo(schedules, meetings)
	return &scheduleFixture{
		meetings:            meetings,
		schedules:           schedules,
		meetingParticipants: meetingParticipants,
		participants:        participants,
		svc:                 NewScheduleService(schedules, meetings, meetingParticipants, participants, 5*time.Second),
	}
}

func (f *scheduleFixture) joinMeeting(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.meetingParticipants.Join(context.Background(), &domain.MeetingParticipant{MeetingID: "mtg-1", UserID: userID}))
}

func TestScheduleService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		meetingID string
		title     string
		date      string
		timeOfDay string
		location  string
		wantErr   error
	}{
		{name: "success", meetingID: "mtg-1", title: "Kickoff", date: "2026-09-01", timeOfDay: "10:00", location: "Room 1"},
		{name: "meeting not found", meetingID: "mtg-missing", title: "Kickoff", date: "2026-09-01", timeOfDay: "10:00", location: "Room 1", wantErr: domain.ErrNotFound},
		{name: "empty title", meetingID: "mtg-1", title: " ", date: "2026-09-01", timeOfDay: "10:00", location: "Room 1", wantErr: domain.ErrInvalidInput},
		{name: "empty date", meetingID: "mtg-1", title: "Kickoff", date: "", timeOfDay: "10:00", location: "Room 1", wantErr: domain.ErrInvalidInput},
		{name: "empty time", meetingID: "mtg-1", title: "Kickoff", date: "2026-09-01", timeOfDay: "", location: "Room 1", wantErr: domain.ErrInvalidInput},
		{name: "empty location", meetingID: "mtg-1", title: "Kickoff", date: "2026-09-01", timeOfDay: "10:00", location: "", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t, 5)
			s, err := f.svc.Create(ctx, tt.meetingID, "user-1", tt.title, tt.date, tt.timeOfDay, tt.location)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
			assert.NotEmpty(t, s.ID)
			assert.Equal(t, "mtg-1", s.MeetingID)
			assert.Equal(t, "user-1", s.OwnerID)
		})
	}
}

func TestScheduleService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		meetingID  string
		scheduleID string
		userID     string
		wantErr    error
	}{
		{name: "success", meetingID: "mtg-1", scheduleID: "sch-1", userID: "user-1"},
		{name: "schedule not found", meetingID: "mtg-1", scheduleID: "sch-missing", userID: "user-1", wantErr: domain.ErrNotFound},
		{name: "schedule under different meeting", meetingID: "mtg-other", scheduleID: "sch-1", userID: "user-1", wantErr: domain.ErrNotFound},
		{name: "forbidden not owner", meetingID: "mtg-1", scheduleID: "sch-1", userID: "user-2", wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t, 5)
			s, err := f.svc.Update(ctx, tt.meetingID, tt.scheduleID, tt.userID, "Retro", "2026-09-02", "16:00", "Room 2")
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Retro", s.Title)
			assert.Equal(t, "2026-09-02", s.Date)
			assert.Equal(t, "16:00", s.Time)
			assert.Equal(t, "Room 2", s.Location)
		})
	}
}

func TestScheduleService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		meetingID  string
		scheduleID string
		userID     string
		wantErr    error
	}{
		{name: "success", meetingID: "mtg-1", scheduleID: "sch-1", userID: "user-1"},
		{name: "schedule not found", meetingID: "mtg-1", scheduleID: "sch-missing", userID: "user-1", wantErr: domain.ErrNotFound},
		{name: "forbidden not owner", meetingID: "mtg-1", scheduleID: "sch-1", userID: "user-2", wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t, 5)
			err := f.svc.Delete(ctx, tt.meetingID, tt.scheduleID, tt.userID)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			_, err = f.schedules.GetByID(ctx, tt.scheduleID)
			require.True(t, errors.Is(err, domain.ErrNotFound))
		})
	}
}

func TestScheduleService_Join(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setup      func(t *testing.T, f *scheduleFixture)
		meetingID  string
		scheduleID string
		userID     string
		wantErr    error
	}{
		{
			name: "success meeting member joins",
			setup: func(t *testing.T, f *scheduleFixture) {
				f.joinMeeting(t, "user-2")
			},
			meetingID:  "mtg-1",
			scheduleID: "sch-1",
			userID:     "user-2",
		},
		{
			name:       "forbidden without meeting membership",
			setup:      func(t *testing.T, f *scheduleFixture) {},
			meetingID:  "mtg-1",
			scheduleID: "sch-1",
			userID:     "user-2",
			wantErr:    domain.ErrForbidden,
		},
		{
			name:       "schedule not found",
			setup:      func(t *testing.T, f *scheduleFixture) {},
			meetingID:  "mtg-1",
			scheduleID: "sch-missing",
			userID:     "user-2",
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "schedule under different meeting",
			setup:      func(t *testing.T, f *scheduleFixture) {},
			meetingID:  "mtg-other",
			scheduleID: "sch-1",
			userID:     "user-2",
			wantErr:    domain.ErrNotFound,
		},
		{
			name: "already joined",
			setup: func(t *testing.T, f *scheduleFixture) {
				f.joinMeeting(t, "user-2")
				_, err := f.svc.Join(ctx, "mtg-1", "sch-1", "user-2")
				require.NoError(t, err)
			},
			meetingID:  "mtg-1",
			scheduleID: "sch-1",
			userID:     "user-2",
			wantErr:    domain.ErrAlreadyJoined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t, 5)
			tt.setup(t, f)
			p, err := f.svc.Join(ctx, tt.meetingID, tt.scheduleID, tt.userID)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "sch-1", p.ScheduleID)
			assert.Equal(t, domain.StatusAttending, p.Status)
		})
	}
}

func TestScheduleService_Join_BoundedByMeetingCapacity(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, 3)
	f.joinMeeting(t, "user-2")
	f.joinMeeting(t, "user-3")
	f.joinMeeting(t, "user-4")

	// Schedule capacity is the parent meeting's ceiling, not a separate count.
	_, err := f.svc.Join(ctx, "mtg-1", "sch-1", "user-2")
	require.NoError(t, err)
	_, err = f.svc.Join(ctx, "mtg-1", "sch-1", "user-3")
	require.NoError(t, err)

	f.meetings.byID["mtg-1"].MaxParticipants = 2
	_, err = f.svc.Join(ctx, "mtg-1", "sch-1", "user-4")
	require.True(t, errors.Is(err, domain.ErrCapacityExceeded))
}

func TestScheduleService_Leave(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setup      func(t *testing.T, f *scheduleFixture)
		meetingID  string
		scheduleID string
		userID     string
		wantErr    error
	}{
		{
			name: "success",
			setup: func(t *testing.T, f *scheduleFixture) {
				f.joinMeeting(t, "user-2")
				_, err := f.svc.Join(ctx, "mtg-1", "sch-1", "user-2")
				require.NoError(t, err)
			},
			meetingID:  "mtg-1",
			scheduleID: "sch-1",
			userID:     "user-2",
		},
		{
			name:       "not joined",
			setup:      func(t *testing.T, f *scheduleFixture) {},
			meetingID:  "mtg-1",
			scheduleID: "sch-1",
			userID:     "user-2",
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "schedule not found",
			setup:      func(t *testing.T, f *scheduleFixture) {},
			meetingID:  "mtg-1",
			scheduleID: "sch-missing",
			userID:     "user-2",
			wantErr:    domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t, 5)
			tt.setup(t, f)
			err := f.svc.Leave(ctx, tt.meetingID, tt.scheduleID, tt.userID)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			exists, err := f.participants.Exists(ctx, tt.scheduleID, tt.userID)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestScheduleService_ListByMeeting(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, 5)
	f.schedules.addSchedule("sch-2", "mtg-1", "user-1")
	f.schedules.addSchedule("sch-other", "mtg-2", "user-1")

	schedules, err := f.svc.ListByMeeting(ctx, "mtg-1")
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	_, err = f.svc.ListByMeeting(ctx, "mtg-missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestScheduleService_Participants(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, 5)
	f.joinMeeting(t, "user-2")
	_, err := f.svc.Join(ctx, "mtg-1", "sch-1", "user-2")
	require.NoError(t, err)

	infos, err := f.svc.Participants(ctx, "mtg-1", "sch-1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "user-2", infos[0].UserID)

	_, err = f.svc.Participants(ctx, "mtg-1", "sch-missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
