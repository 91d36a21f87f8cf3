package bootstrap

import (
	"context"
	"log/slog"

	"health-push/internal/pkg/config"
	"health-push/internal/scheduler"
	"health-push/internal/usecase/commands"

	"go.uber.org/fx"
)

// ExecutorModule is separate from SchedulerModule so the fan-out can be
// exercised through the HTTP surface without a running cron.
var ExecutorModule = fx.Module("executor",
	fx.Provide(
		NewExecutor,
		func(e *scheduler.Executor) commands.FanoutRunner { return e },
	),
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(runScheduler),
)

func NewExecutor(cfg config.Config, profiles commands.ProfileRepo, pusher commands.PushCommands, log *slog.Logger) *scheduler.Executor {
	return scheduler.NewExecutor(profiles, pusher, cfg.Schedule.Workers, cfg.Schedule.DispatchTimeout, log)
}

func NewScheduler(cfg config.Config, executor *scheduler.Executor, log *slog.Logger) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Schedule, executor, log)
}

func runScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop(ctx)
			return nil
		},
	})
}
