package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"meetingplanner/internal/domain"
)

type meetingParticipantRepository struct {
	DB *sql.DB
}

func NewMeetingParticipantRepository(db *sql.DB) domain.MeetingParticipantRepository {
	return &meetingParticipantRepository{DB: db}
}

// Join runs the capacity-checked insert in a single transaction. The meeting
// row is locked with FOR UPDATE so two joins racing on the last free slot
// serialize: one commits, the other observes the updated count and fails.
func (r *meetingParticipantRepository) Join(ctx context.Context, p *domain.MeetingParticipant) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxParticipants int
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM meetings WHERE id = $1 FOR UPDATE`,
		p.MeetingID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock meeting: %w", err)
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM meeting_participants WHERE meeting_id = $1 AND user_id = $2)`,
		p.MeetingID, p.UserID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if exists {
		return domain.ErrAlreadyJoined
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM meeting_participants WHERE meeting_id = $1`,
		p.MeetingID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if count >= maxParticipants {
		return domain.ErrCapacityExceeded
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO meeting_participants (meeting_id, user_id, status, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.MeetingID, p.UserID, string(p.Status), string(p.Role), p.CreatedAt).Scan(&p.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrAlreadyJoined
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	return tx.Commit()
}

func (r *meetingParticipantRepository) Exists(ctx context.Context, meetingID, userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM meeting_participants WHERE meeting_id = $1 AND user_id = $2)`,
		meetingID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *meetingParticipantRepository) CountByMeeting(ctx context.Context, meetingID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM meeting_participants WHERE meeting_id = $1`,
		meetingID,
	).Scan(&count)
	return count, err
}

func (r *meetingParticipantRepository) ListByMeeting(ctx context.Context, meetingID string) ([]*domain.ParticipantInfo, error) {
	query := `
		SELECT p.id, p.user_id, u.email, p.status, p.role, p.created_at
		FROM meeting_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.meeting_id = $1
		ORDER BY p.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.ParticipantInfo, 0)
	for rows.Next() {
		info := &domain.ParticipantInfo{}
		if err := rows.Scan(&info.ID, &info.UserID, &info.Email, &info.Status, &info.Role, &info.CreatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, info)
	}
	return participants, rows.Err()
}

func (r *meetingParticipantRepository) Delete(ctx context.Context, meetingID, userID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM meeting_participants WHERE meeting_id = $1 AND user_id = $2`,
		meetingID, userID,
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
