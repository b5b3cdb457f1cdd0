package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"boat-scheduler/internal/domain/operator"
	"boat-scheduler/internal/handler/api"
	"boat-scheduler/internal/handler/middleware"
	"boat-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Schedule  *api.ScheduleHandler
	Booking   *api.BookingHandler
	Passenger *api.PassengerHandler
	Confirm   *api.ConfirmHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// viewers may read; changing the schedule takes an operator
	write := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(operator.RoleOperator)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/schedule", Handler: h.Schedule.Schedule},
				{Method: http.MethodGet, Path: "/schedule/stats", Handler: h.Schedule.Stats},
				{Method: http.MethodPost, Path: "/schedule/sync", Handler: h.Schedule.Sync},
				{Method: http.MethodGet, Path: "/resources", Handler: h.Schedule.Resources},
			})

			addRoutes(protected.Group("/bookings"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: write},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id/slot", Handler: h.Booking.Move, Mw: write},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.ToggleCheckIn, Mw: write},
				{Method: http.MethodPost, Path: "/:id/passengers", Handler: h.Passenger.Add, Mw: write},
				{Method: http.MethodPatch, Path: "/:id/passengers/:pid", Handler: h.Passenger.Update, Mw: write},
				{Method: http.MethodPost, Path: "/:id/passengers/:pid/check-in", Handler: h.Passenger.ToggleCheckIn, Mw: write},
				{Method: http.MethodPost, Path: "/:id/passengers/:pid/move", Handler: h.Passenger.Move, Mw: write},
			})

			addRoutes(protected.Group("/confirmations"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Confirm.Invoke, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Confirm.Status},
				{Method: http.MethodDelete, Path: "", Handler: h.Confirm.Disarm, Mw: write},
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
