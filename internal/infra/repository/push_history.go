package repository

import (
	"context"

	"health-push/internal/domain/push"
	"health-push/internal/infra"

	"github.com/google/uuid"
)

// PushHistoryRepository is the write side of the push ledger. Record identity
// and push_time are assigned by the database on insert; callers never set them.
type PushHistoryRepository struct {
	db infra.DBTX
}

func NewPushHistoryRepository(db infra.DBTX) *PushHistoryRepository {
	return &PushHistoryRepository{db: db}
}

func (r *PushHistoryRepository) Append(ctx context.Context, userID string, pushType push.Type, content string) (uuid.UUID, error) {
	const q = `
		INSERT INTO push_history (user_id, push_type, content)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, userID, string(pushType), content).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append push record", err)
	}
	return id, nil
}

// MarkRead flips is_read false->true for a record owned by userID. It reports
// whether a row actually changed: re-marking an already-read record, a record
// of another user, or a missing record all return false without error.
func (r *PushHistoryRepository) MarkRead(ctx context.Context, userID string, recordID uuid.UUID) (bool, error) {
	const q = `
		UPDATE push_history
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2 AND is_read = FALSE`

	tag, err := r.db.Exec(ctx, q, recordID, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark push record read", err)
	}
	return tag.RowsAffected() > 0, nil
}
