package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"health-push/internal/domain/push"
	"health-push/internal/pkg/config"
	"health-push/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// restSlots and mealSlots map configured wall-clock times to their slots.
// A configured time outside the table falls back to the first slot of its
// kind instead of failing registration; the mismatch is logged once at
// configuration time so an operator can fix the schedule.
var restSlots = map[string]push.Slot{
	"07:00": push.SlotMorning,
	"13:00": push.SlotNoon,
	"23:00": push.SlotNight,
}

var mealSlots = map[string]push.Slot{
	"07:30": push.SlotBreakfast,
	"12:00": push.SlotLunch,
	"18:00": push.SlotDinner,
}

// Trigger abstracts the time source so tests can fire jobs directly.
type Trigger interface {
	Start()
	Stop() context.Context
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
}

// Job is one registered daily firing.
type Job struct {
	ID   string
	Kind push.Kind
	At   string // HH:MM in the scheduler's timezone
}

// Scheduler registers the daily push schedule on a cron runner and fires
// fan-out runs. Start is idempotent; Stop waits for in-flight jobs.
type Scheduler struct {
	mu       sync.Mutex
	cron     Trigger
	executor *Executor
	jobs     []Job
	started  bool
	log      *slog.Logger
}

func New(cfg config.ScheduleConfig, executor *Executor, log *slog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid schedule timezone "+cfg.TimeZone)
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		executor: executor,
		log:      log,
	}
	if err := s.register(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) register(cfg config.ScheduleConfig) error {
	for _, at := range cfg.RestTimes {
		slot, ok := restSlots[at]
		if !ok {
			slot = push.SlotMorning
			s.log.Warn("unmapped rest time, defaulting slot", "at", at, "slot", string(slot))
		}
		if err := s.add(push.RestKind(slot), at); err != nil {
			return err
		}
	}

	for _, at := range cfg.MealTimes {
		slot, ok := mealSlots[at]
		if !ok {
			slot = push.SlotLunch
			s.log.Warn("unmapped meal time, defaulting slot", "at", at, "slot", string(slot))
		}
		if err := s.add(push.MealKind(slot), at); err != nil {
			return err
		}
	}

	if err := s.add(push.WeatherKind(), cfg.WeatherTime); err != nil {
		return err
	}
	return s.add(push.HealthTipKind(), cfg.HealthTipTime)
}

func (s *Scheduler) add(kind push.Kind, at string) error {
	spec, err := dailySpec(at)
	if err != nil {
		return err
	}

	job := Job{ID: fmt.Sprintf("%s_%s", kind.Type, at), Kind: kind, At: at}
	for _, existing := range s.jobs {
		if existing.ID == job.ID {
			s.log.Warn("duplicate schedule entry ignored", "job_id", job.ID)
			return nil
		}
	}
	if _, err := s.cron.AddFunc(spec, func() { s.fire(job) }); err != nil {
		return errs.Wrap(err, "failed to register job "+job.ID)
	}
	s.jobs = append(s.jobs, job)
	return nil
}

// fire runs one scheduled fan-out. A panicking run must not take down the
// cron goroutine, so it is recovered and logged here.
func (s *Scheduler) fire(job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("scheduled run panicked", "job_id", job.ID, "panic", fmt.Sprint(r))
		}
	}()

	s.log.Info("scheduled run starting", "job_id", job.ID, "kind", job.Kind.String())
	s.executor.Run(context.Background(), job.Kind)
}

// dailySpec converts "HH:MM" into a standard five-field cron spec.
func dailySpec(at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", errs.New(fmt.Sprintf("schedule time must be HH:MM, got %q", at))
	}
	t, err := time.Parse("15:04", at)
	if err != nil {
		return "", errs.Wrap(err, fmt.Sprintf("schedule time must be HH:MM, got %q", at))
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// Jobs returns the registered schedule in registration order.
func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
	s.log.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop halts triggering and blocks until running jobs finish or ctx expires.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	done := s.cron.Stop()
	s.mu.Unlock()

	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out with jobs still running")
	}
}
