//go:build unit

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"health-push/internal/domain/profile"
	"health-push/internal/domain/push"
	"health-push/internal/infra/repository"
	"health-push/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserSource struct {
	ids []string
	err error
}

func (f *fakeUserSource) ListUserIDs(context.Context) ([]string, error) { return f.ids, f.err }

func (f *fakeUserSource) Create(context.Context, *profile.HealthProfile) error { return nil }
func (f *fakeUserSource) Get(context.Context, string) (*profile.HealthProfile, error) {
	return nil, nil
}
func (f *fakeUserSource) Update(context.Context, string, repository.UpdateProfileParams, time.Time) error {
	return nil
}
func (f *fakeUserSource) SetLocation(context.Context, string, profile.Location, time.Time) error {
	return nil
}
func (f *fakeUserSource) SetPersona(context.Context, string, string, time.Time) error { return nil }
func (f *fakeUserSource) Delete(context.Context, string) error                        { return nil }

type fakePusher struct {
	mu        sync.Mutex
	inFlight  atomic.Int32
	maxInUse  atomic.Int32
	seen      []string
	dispatch  func(ctx context.Context, userID string, kind push.Kind) (push.Outcome, error)
	blockEach time.Duration
}

func (f *fakePusher) Dispatch(ctx context.Context, userID string, kind push.Kind) (push.Outcome, error) {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxInUse.Load()
		if cur <= prev || f.maxInUse.CompareAndSwap(prev, cur) {
			break
		}
	}
	if f.blockEach > 0 {
		time.Sleep(f.blockEach)
	}

	f.mu.Lock()
	f.seen = append(f.seen, userID)
	f.mu.Unlock()

	if f.dispatch != nil {
		return f.dispatch(ctx, userID, kind)
	}
	return push.SuccessOutcome(userID, kind, "ok"), nil
}

func (f *fakePusher) MarkRead(context.Context, string, uuid.UUID) (bool, error) { return false, nil }

func userIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("u%03d", i)
	}
	return ids
}

func TestExecutorRun(t *testing.T) {
	ctx := context.Background()

	t.Run("every user yields exactly one outcome", func(t *testing.T) {
		users := &fakeUserSource{ids: userIDs(25)}
		pusher := &fakePusher{}
		ex := NewExecutor(users, pusher, 4, time.Second, testLogger())

		summary := ex.Run(ctx, push.HealthTipKind())

		assert.Equal(t, 25, summary.Total)
		assert.Equal(t, 25, summary.Succeeded)
		assert.Len(t, pusher.seen, 25)
	})

	t.Run("failures are isolated and counted", func(t *testing.T) {
		users := &fakeUserSource{ids: userIDs(10)}
		pusher := &fakePusher{
			dispatch: func(_ context.Context, userID string, kind push.Kind) (push.Outcome, error) {
				switch userID {
				case "u002", "u007":
					return push.Outcome{}, errs.New("ledger unavailable")
				case "u004":
					return push.SkippedOutcome(userID, kind, "no location set"), nil
				}
				return push.SuccessOutcome(userID, kind, "ok"), nil
			},
		}
		ex := NewExecutor(users, pusher, 4, time.Second, testLogger())

		summary := ex.Run(ctx, push.WeatherKind())

		assert.Equal(t, push.Summary{Total: 10, Succeeded: 7, Skipped: 1, Failed: 2}, summary)
	})

	t.Run("concurrency never exceeds the worker limit", func(t *testing.T) {
		users := &fakeUserSource{ids: userIDs(20)}
		pusher := &fakePusher{blockEach: 10 * time.Millisecond}
		ex := NewExecutor(users, pusher, 4, time.Second, testLogger())

		ex.Run(ctx, push.RestKind(push.SlotMorning))

		assert.LessOrEqual(t, pusher.maxInUse.Load(), int32(4))
	})

	t.Run("each dispatch carries a deadline", func(t *testing.T) {
		users := &fakeUserSource{ids: userIDs(1)}
		var hadDeadline bool
		pusher := &fakePusher{
			dispatch: func(dctx context.Context, userID string, kind push.Kind) (push.Outcome, error) {
				_, hadDeadline = dctx.Deadline()
				return push.SuccessOutcome(userID, kind, "ok"), nil
			},
		}
		ex := NewExecutor(users, pusher, 4, 45*time.Second, testLogger())

		ex.Run(ctx, push.HealthTipKind())
		assert.True(t, hadDeadline)
	})

	t.Run("snapshot failure yields an empty summary", func(t *testing.T) {
		users := &fakeUserSource{err: errs.New("connection refused")}
		pusher := &fakePusher{}
		ex := NewExecutor(users, pusher, 4, time.Second, testLogger())

		summary := ex.Run(ctx, push.HealthTipKind())

		assert.Equal(t, push.Summary{}, summary)
		assert.Empty(t, pusher.seen)
	})

	t.Run("empty user list completes with a zero summary", func(t *testing.T) {
		users := &fakeUserSource{}
		pusher := &fakePusher{}
		ex := NewExecutor(users, pusher, 4, time.Second, testLogger())

		summary := ex.Run(ctx, push.HealthTipKind())
		require.Equal(t, 0, summary.Total)
	})
}
