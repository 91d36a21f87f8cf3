package scheduler

import (
	"context"
	"log/slog"
	"time"

	"health-push/internal/domain/push"
	"health-push/internal/usecase/commands"

	"golang.org/x/sync/errgroup"
)

// Executor fans one notification kind out to every registered user over a
// bounded worker pool. One user's failure never aborts the run; every user in
// the snapshot produces exactly one Outcome.
type Executor struct {
	profiles        commands.ProfileRepo
	pusher          commands.PushCommands
	workers         int
	dispatchTimeout time.Duration
	log             *slog.Logger
}

func NewExecutor(
	profiles commands.ProfileRepo,
	pusher commands.PushCommands,
	workers int,
	dispatchTimeout time.Duration,
	log *slog.Logger,
) *Executor {
	if workers <= 0 {
		workers = 4
	}
	return &Executor{
		profiles:        profiles,
		pusher:          pusher,
		workers:         workers,
		dispatchTimeout: dispatchTimeout,
		log:             log,
	}
}

// Run snapshots the user list once, dispatches kind to each user with a
// per-user timeout, and returns the aggregated summary. Users registered
// after the snapshot are picked up by the next trigger.
func (e *Executor) Run(ctx context.Context, kind push.Kind) push.Summary {
	userIDs, err := e.profiles.ListUserIDs(ctx)
	if err != nil {
		e.log.Error("fan-out aborted, user snapshot failed", "kind", kind.String(), "error", err)
		return push.Summary{}
	}

	outcomes := make([]push.Outcome, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, userID := range userIDs {
		g.Go(func() error {
			outcomes[i] = e.dispatchOne(gctx, userID, kind)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures become outcomes

	var summary push.Summary
	for _, o := range outcomes {
		summary.Record(o)
		if o.Status != push.StatusSuccess {
			e.log.Warn("push not delivered",
				"kind", kind.String(), "user_id", o.UserID, "status", string(o.Status), "reason", o.Reason)
		}
	}

	e.log.Info("fan-out completed",
		"kind", kind.String(),
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary
}

func (e *Executor) dispatchOne(ctx context.Context, userID string, kind push.Kind) push.Outcome {
	dctx, cancel := context.WithTimeout(ctx, e.dispatchTimeout)
	defer cancel()

	out, err := e.pusher.Dispatch(dctx, userID, kind)
	if err != nil {
		return push.FailedOutcome(userID, kind, err.Error())
	}
	return out
}
