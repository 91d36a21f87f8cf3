package commands

import (
	"context"

	"health-push/internal/domain/persona"
	"health-push/internal/domain/push"
	"health-push/internal/infra"
	"health-push/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	reasonProfileNotFound = "profile not found"
	reasonNoLocation      = "no location set"
)

// PushCommands delivers one notification to one user. The fan-out executor
// and the manual trigger endpoints both go through Dispatch.
type PushCommands interface {
	Dispatch(ctx context.Context, userID string, kind push.Kind) (push.Outcome, error)
	MarkRead(ctx context.Context, userID string, recordID uuid.UUID) (bool, error)
}

type pushUseCaseImpl struct {
	profileRepo ProfileRepo
	history     HistoryAppender
	generator   ContentGenerator
	weather     WeatherProvider
	personas    PersonaResolver
}

func NewPushUseCase(
	profileRepo ProfileRepo,
	history HistoryAppender,
	generator ContentGenerator,
	weather WeatherProvider,
	personas PersonaResolver,
) PushCommands {
	return &pushUseCaseImpl{
		profileRepo: profileRepo,
		history:     history,
		generator:   generator,
		weather:     weather,
		personas:    personas,
	}
}

// Dispatch runs the full pipeline for a single (user, kind) pair: load the
// profile, resolve the persona, produce content, and append to the ledger.
//
// A missing profile or precondition yields a failed/skipped Outcome with a
// nil error; only infrastructure failures (profile read, ledger append)
// surface as errors. Content generation cannot fail by contract, so a
// degraded message still counts as a delivered push.
func (u *pushUseCaseImpl) Dispatch(ctx context.Context, userID string, kind push.Kind) (push.Outcome, error) {
	prof, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return push.FailedOutcome(userID, kind, reasonProfileNotFound), nil
		}
		return push.Outcome{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	personaPrompt := u.personas.GetPrompt(styleName(prof.PersonaStyle))

	var content string
	switch kind.Type {
	case push.TypeWeather:
		if !prof.HasLocation() {
			return push.SkippedOutcome(userID, kind, reasonNoLocation), nil
		}
		report, err := u.weather.Fetch(ctx, prof.Location.Province, prof.Location.City)
		if err != nil {
			return push.FailedOutcome(userID, kind, "weather lookup failed: "+err.Error()), nil
		}
		advice := u.generator.Generate(ctx, kind, prof, personaPrompt, report)
		content = push.ComposeWeatherContent(*report, advice)
	default:
		content = u.generator.Generate(ctx, kind, prof, personaPrompt, nil)
	}

	if _, err := u.history.Append(ctx, userID, kind.Type, content); err != nil {
		return push.Outcome{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return push.SuccessOutcome(userID, kind, content), nil
}

// MarkRead reports whether the record actually transitioned to read.
// Re-marking an already-read record is a no-op, not an error.
func (u *pushUseCaseImpl) MarkRead(ctx context.Context, userID string, recordID uuid.UUID) (bool, error) {
	changed, err := u.history.MarkRead(ctx, userID, recordID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return changed, nil
}

func styleName(selected *string) string {
	if selected != nil && *selected != "" {
		return *selected
	}
	return persona.DefaultStyleName
}
