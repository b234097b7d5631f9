package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetingplanner/internal/domain"
)

type meetingRepository struct {
	DB *sql.DB
}

func NewMeetingRepository(db *sql.DB) domain.MeetingRepository {
	return &meetingRepository{DB: db}
}

func (r *meetingRepository) Create(ctx context.Context, m *domain.Meeting) error {
	query := `
		INSERT INTO meetings (title, description, max_participants, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, m.Title, m.Description, m.MaxParticipants, m.OwnerID, m.CreatedAt).
		Scan(&m.ID)
}

func (r *meetingRepository) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	query := `
		SELECT id, title, description, max_participants, owner_id, created_at
		FROM meetings
		WHERE id = $1
	`
	m := &domain.Meeting{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.Description, &m.MaxParticipants, &m.OwnerID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *meetingRepository) List(ctx context.Context) ([]*domain.Meeting, error) {
	query := `
		SELECT id, title, description, max_participants, owner_id, created_at
		FROM meetings
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		m := &domain.Meeting{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.MaxParticipants, &m.OwnerID, &m.CreatedAt); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Update writes the new values in a transaction that locks the meeting row
// with FOR UPDATE before checking the capacity floor. Joins lock the same row,
// so a concurrent join cannot slip a participant in between the count read and
// the capacity change.
func (r *meetingRepository) Update(ctx context.Context, m *domain.Meeting) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM meetings WHERE id = $1 FOR UPDATE`, m.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock meeting: %w", err)
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM meeting_participants WHERE meeting_id = $1`,
		m.ID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if m.MaxParticipants < count {
		return fmt.Errorf("%w: max participants cannot be below the current participant count (%d)", domain.ErrInvalidInput, count)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE meetings
		SET title = $2, description = $3, max_participants = $4
		WHERE id = $1
	`, m.ID, m.Title, m.Description, m.MaxParticipants)
	if err != nil {
		return fmt.Errorf("update meeting: %w", err)
	}

	return tx.Commit()
}

func (r *meetingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
