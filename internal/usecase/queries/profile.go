package queries

import (
	"context"

	"health-push/internal/infra"
	"health-push/internal/pkg/errs"
)

type ProfileReadStore interface {
	FindByUser(ctx context.Context, userID string) (*ProfileView, error)
}

type ProfileQueries interface {
	Get(ctx context.Context, userID string) (*ProfileView, error)
}

type profileQueriesImpl struct {
	store ProfileReadStore
}

func NewProfileQueries(store ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{store: store}
}

func (q *profileQueriesImpl) Get(ctx context.Context, userID string) (*ProfileView, error) {
	view, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProfileNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
