package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"meetingplanner/internal/domain"

	"github.com/stretchr/testify/require"
)

var scheduleCols = []string{"id", "meeting_id", "title", "date", "time", "location", "owner_id", "created_at"}

func TestScheduleRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO schedules`).
		WithArgs("mtg-uuid-1", "Kickoff", "2026-09-01", "10:00", "Room 1", "user-uuid-1", createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sch-uuid-1"))

	repo := NewScheduleRepository(db)
	s := &domain.Schedule{
		MeetingID: "mtg-uuid-1",
		Title:     "Kickoff",
		Date:      "2026-09-01",
		Time:      "10:00",
		Location:  "Room 1",
		OwnerID:   "user-uuid-1",
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(ctx, s))
	require.Equal(t, "sch-uuid-1", s.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			id:   "sch-uuid-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM schedules`).
					WithArgs("sch-uuid-1").
					WillReturnRows(sqlmock.NewRows(scheduleCols).
						AddRow("sch-uuid-1", "mtg-uuid-1", "Kickoff", "2026-09-01", "10:00", "Room 1", "user-uuid-1", createdAt))
			},
		},
		{
			name: "not found",
			id:   "sch-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM schedules`).
					WithArgs("sch-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewScheduleRepository(db)
			s, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				require.Equal(t, "mtg-uuid-1", s.MeetingID)
				require.Equal(t, "Kickoff", s.Title)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_ListByMeeting(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM schedules`).
		WithArgs("mtg-uuid-1").
		WillReturnRows(sqlmock.NewRows(scheduleCols).
			AddRow("sch-uuid-1", "mtg-uuid-1", "Kickoff", "2026-09-01", "10:00", "Room 1", "user-uuid-1", createdAt).
			AddRow("sch-uuid-2", "mtg-uuid-1", "Retro", "2026-09-01", "16:00", "Room 2", "user-uuid-1", createdAt))

	repo := NewScheduleRepository(db)
	schedules, err := repo.ListByMeeting(ctx, "mtg-uuid-1")
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	require.Equal(t, "Kickoff", schedules[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		schedule *domain.Schedule
		mock     func(mock sqlmock.Sqlmock)
		wantErr  bool
		errIs    error
	}{
		{
			name:     "success",
			schedule: &domain.Schedule{ID: "sch-uuid-1", Title: "Retro", Date: "2026-09-02", Time: "16:00", Location: "Room 2"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE schedules`).
					WithArgs("sch-uuid-1", "Retro", "2026-09-02", "16:00", "Room 2").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "not found zero rows affected",
			schedule: &domain.Schedule{ID: "sch-missing", Title: "Retro", Date: "2026-09-02", Time: "16:00", Location: "Room 2"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE schedules`).
					WithArgs("sch-missing", "Retro", "2026-09-02", "16:00", "Room 2").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewScheduleRepository(db)
			err = repo.Update(ctx, tt.schedule)
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM schedules`).
		WithArgs("sch-uuid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewScheduleRepository(db)
	require.NoError(t, repo.Delete(ctx, "sch-uuid-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
