package postgres

import (
	"context"
	"database/sql"
	"errors"

	"meetingplanner/internal/domain"
)

type scheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

func (r *scheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	query := `
		INSERT INTO schedules (meeting_id, title, date, time, location, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.MeetingID, s.Title, s.Date, s.Time, s.Location, s.OwnerID, s.CreatedAt,
	).Scan(&s.ID)
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `
		SELECT id, meeting_id, title, date, time, location, owner_id, created_at
		FROM schedules
		WHERE id = $1
	`
	s := &domain.Schedule{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.MeetingID, &s.Title, &s.Date, &s.Time, &s.Location, &s.OwnerID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) ListByMeeting(ctx context.Context, meetingID string) ([]*domain.Schedule, error) {
	query := `
		SELECT id, meeting_id, title, date, time, location, owner_id, created_at
		FROM schedules
		WHERE meeting_id = $1
		ORDER BY date, time
	`
	rows, err := r.DB.QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		s := &domain.Schedule{}
		if err := rows.Scan(&s.ID, &s.MeetingID, &s.Title, &s.Date, &s.Time, &s.Location, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) Update(ctx context.Context, s *domain.Schedule) error {
	query := `
		UPDATE schedules
		SET title = $2, date = $3, time = $4, location = $5
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, s.ID, s.Title, s.Date, s.Time, s.Location)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
