package components

import (
	"log/slog"

	"health-push/internal/domain/persona"
	"health-push/internal/infra/gateway"
	"health-push/internal/pkg/config"
	"health-push/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewLLMGateway,
			fx.As(new(commands.ContentGenerator)),
		),
		fx.Annotate(
			NewWeatherGateway,
			fx.As(new(commands.WeatherProvider)),
		),
		fx.Annotate(
			persona.NewResolver,
			fx.As(new(commands.PersonaResolver)),
		),
	),
)

func NewLLMGateway(cfg config.Config, log *slog.Logger) *gateway.LLMGateway {
	return gateway.NewLLMGateway(cfg.LLM, log)
}

func NewWeatherGateway(cfg config.Config) *gateway.WeatherGateway {
	return gateway.NewWeatherGateway(cfg.Weather)
}
