package queries

import (
	"context"

	"health-push/internal/domain/push"
	"health-push/internal/pkg/errs"
)

type PushHistoryReadStore interface {
	FindByUser(ctx context.Context, userID string, pushType string, limit int32) ([]*PushRecordView, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type PushHistoryQueries interface {
	List(ctx context.Context, userID string, pushType string, limit int) ([]*PushRecordView, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type pushHistoryQueriesImpl struct {
	store PushHistoryReadStore
}

func NewPushHistoryQueries(store PushHistoryReadStore) PushHistoryQueries {
	return &pushHistoryQueriesImpl{store: store}
}

// List returns the user's push records, newest first. pushType filters when
// non-empty and must then be a known type. The limit is clamped into
// [1, MaxHistoryLimit] rather than rejected.
func (q *pushHistoryQueriesImpl) List(ctx context.Context, userID string, pushType string, limit int) ([]*PushRecordView, error) {
	if pushType != "" {
		if _, err := push.ParseType(pushType); err != nil {
			return nil, err
		}
	}

	records, err := q.store.FindByUser(ctx, userID, pushType, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if records == nil {
		records = []*PushRecordView{}
	}
	return records, nil
}

func (q *pushHistoryQueriesImpl) UnreadCount(ctx context.Context, userID string) (int64, error) {
	n, err := q.store.CountUnread(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return n, nil
}
