package components

import (
	"health-push/internal/handler"
	"health-push/internal/handler/api"
	"health-push/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPushHandler,
		api.NewProfileHandler,
		api.NewPersonaHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
