package readstore

import (
	"context"

	"health-push/internal/infra"
	"health-push/internal/usecase/queries"
)

type PushHistoryReadStore struct {
	db infra.DBTX
}

func NewPushHistoryReadStore(db infra.DBTX) *PushHistoryReadStore {
	return &PushHistoryReadStore{db: db}
}

// FindByUser returns the user's push records, most recent first. pushType
// filters when non-empty. The limit is validated upstream; the store applies
// it verbatim.
func (r *PushHistoryReadStore) FindByUser(ctx context.Context, userID string, pushType string, limit int32) ([]*queries.PushRecordView, error) {
	const q = `
		SELECT id, user_id, push_type, content, push_time, is_read
		FROM push_history
		WHERE user_id = $1
		  AND ($2 = '' OR push_type = $2)
		ORDER BY push_time DESC, id DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, q, userID, pushType, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query push history", err)
	}
	defer rows.Close()

	var records []*queries.PushRecordView
	for rows.Next() {
		var rec queries.PushRecordView
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.PushType, &rec.Content, &rec.PushTime, &rec.IsRead); err != nil {
			return nil, infra.WrapRepoErr("failed to scan push record", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate push history", err)
	}
	return records, nil
}

// CountUnread backs the frontend's unread badge.
func (r *PushHistoryReadStore) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM push_history WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread push records", err)
	}
	return n, nil
}
