package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"health-push/internal/handler/api"
	"health-push/internal/handler/middleware"
	"health-push/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pushHandler *api.PushHandler,
	profileHandler *api.ProfileHandler,
	personaHandler *api.PersonaHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pushHandler, profileHandler, personaHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	pushHandler *api.PushHandler,
	profileHandler *api.ProfileHandler,
	personaHandler *api.PersonaHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		pushGroup := apiGroup.Group("/push")
		{
			addRoutes(pushGroup, []route{
				{Method: http.MethodPost, Path: "/rest/:user_id", Handler: pushHandler.TriggerRest},
				{Method: http.MethodPost, Path: "/meal/:user_id", Handler: pushHandler.TriggerMeal},
				{Method: http.MethodPost, Path: "/weather/:user_id", Handler: pushHandler.TriggerWeather},
				{Method: http.MethodPost, Path: "/health-tip/:user_id", Handler: pushHandler.TriggerHealthTip},
				{Method: http.MethodPost, Path: "/run/:kind", Handler: pushHandler.RunAll},
				{Method: http.MethodGet, Path: "/history/:user_id", Handler: pushHandler.History},
				{Method: http.MethodGet, Path: "/history/:user_id/unread-count", Handler: pushHandler.UnreadCount},
				{Method: http.MethodPut, Path: "/history/:id/read", Handler: pushHandler.MarkRead},
			})
		}

		profileGroup := apiGroup.Group("/health-profile")
		{
			addRoutes(profileGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: profileHandler.Create},
				{Method: http.MethodGet, Path: "/:user_id", Handler: profileHandler.Get},
				{Method: http.MethodPut, Path: "/:user_id", Handler: profileHandler.Update},
				{Method: http.MethodDelete, Path: "/:user_id", Handler: profileHandler.Delete},
				{Method: http.MethodPost, Path: "/:user_id/location", Handler: profileHandler.SetLocation},
				{Method: http.MethodPost, Path: "/:user_id/persona", Handler: personaHandler.Select},
				{Method: http.MethodGet, Path: "/:user_id/persona", Handler: personaHandler.Current},
			})
		}

		personaGroup := apiGroup.Group("/persona-styles")
		{
			addRoutes(personaGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: personaHandler.List},
				{Method: http.MethodGet, Path: "/:style_name", Handler: personaHandler.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
