package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"meetingplanner/internal/domain"
)

type scheduleParticipantRepository struct {
	DB *sql.DB
}

func NewScheduleParticipantRepository(db *sql.DB) domain.ScheduleParticipantRepository {
	return &scheduleParticipantRepository{DB: db}
}

// Join inserts a schedule participant under the parent meeting's capacity
// ceiling. The meeting row is locked (FOR UPDATE OF m) so schedule joins
// serialize with each other and with meeting capacity updates.
func (r *scheduleParticipantRepository) Join(ctx context.Context, p *domain.ScheduleParticipant) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxParticipants int
	err = tx.QueryRowContext(ctx, `
		SELECT m.max_participants
		FROM schedules s
		JOIN meetings m ON m.id = s.meeting_id
		WHERE s.id = $1
		FOR UPDATE OF m
	`, p.ScheduleID).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock parent meeting: %w", err)
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM schedule_participants WHERE schedule_id = $1 AND user_id = $2)`,
		p.ScheduleID, p.UserID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if exists {
		return domain.ErrAlreadyJoined
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schedule_participants WHERE schedule_id = $1`,
		p.ScheduleID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if count >= maxParticipants {
		return domain.ErrCapacityExceeded
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO schedule_participants (schedule_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.ScheduleID, p.UserID, string(p.Status), p.CreatedAt).Scan(&p.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrAlreadyJoined
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	return tx.Commit()
}

func (r *scheduleParticipantRepository) Exists(ctx context.Context, scheduleID, userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM schedule_participants WHERE schedule_id = $1 AND user_id = $2)`,
		scheduleID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *scheduleParticipantRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.ParticipantInfo, error) {
	query := `
		SELECT p.id, p.user_id, u.email, p.status, p.created_at
		FROM schedule_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.schedule_id = $1
		ORDER BY p.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.ParticipantInfo, 0)
	for rows.Next() {
		info := &domain.ParticipantInfo{}
		if err := rows.Scan(&info.ID, &info.UserID, &info.Email, &info.Status, &info.CreatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, info)
	}
	return participants, rows.Err()
}

func (r *scheduleParticipantRepository) Delete(ctx context.Context, scheduleID, userID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM schedule_participants WHERE schedule_id = $1 AND user_id = $2`,
		scheduleID, userID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
