package commands

import (
	"context"
	"time"

	"health-push/internal/domain/persona"
	"health-push/internal/domain/profile"
	"health-push/internal/domain/push"
	"health-push/internal/infra/repository"

	"github.com/google/uuid"
)

// Write-side ports. The dispatch pipeline depends on these instead of the
// concrete infra types so the fan-out can be exercised without a database or
// a live model endpoint.

type ProfileRepo interface {
	Create(ctx context.Context, p *profile.HealthProfile) error
	Get(ctx context.Context, userID string) (*profile.HealthProfile, error)
	Update(ctx context.Context, userID string, params repository.UpdateProfileParams, now time.Time) error
	SetLocation(ctx context.Context, userID string, loc profile.Location, now time.Time) error
	SetPersona(ctx context.Context, userID string, styleName string, now time.Time) error
	Delete(ctx context.Context, userID string) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// FanoutRunner runs one notification kind against the whole user base. It is
// implemented by the scheduler's executor and shared with the manual
// run-everyone endpoint.
type FanoutRunner interface {
	Run(ctx context.Context, kind push.Kind) push.Summary
}

type HistoryAppender interface {
	Append(ctx context.Context, userID string, pushType push.Type, content string) (uuid.UUID, error)
	MarkRead(ctx context.Context, userID string, recordID uuid.UUID) (bool, error)
}

// ContentGenerator never fails: implementations degrade to a fallback
// message on any upstream error.
type ContentGenerator interface {
	Generate(ctx context.Context, kind push.Kind, prof *profile.HealthProfile, personaPrompt string, weather *push.WeatherReport) string
}

type WeatherProvider interface {
	Fetch(ctx context.Context, province, city string) (*push.WeatherReport, error)
}

type PersonaResolver interface {
	GetPrompt(styleName string) string
	Get(styleName string) (persona.Style, bool)
	All() []persona.Style
}
