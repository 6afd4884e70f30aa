package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelops/internal/domain/user"
	"hotelops/internal/handler/api"
	"hotelops/internal/handler/middleware"
	"hotelops/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, bookingHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: availabilityHandler.Check},
				{Method: http.MethodPost, Path: "/search", Handler: availabilityHandler.Search},
			})
		}

		// Staff can read; admissions and edits need manager; hard delete is
		// admin territory (enforced per route below).
		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodGet, Path: "/by-code/:resId", Handler: bookingHandler.GetByCode},
				{
					Method: http.MethodPost, Path: "", Handler: bookingHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleManager)},
				},
				{
					Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleManager)},
				},
				{
					Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleManager)},
				},
				{
					Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete,
					Mw: []gin.HandlerFunc{deleteModeGuard(authMiddleware)},
				},
			})
		}
	}
}

// deleteModeGuard applies the role floor by delete mode: soft deletes need
// manager, hard deletes need admin.
func deleteModeGuard(authMiddleware *middleware.AuthMiddleware) gin.HandlerFunc {
	managerGuard := authMiddleware.RequireRoleAtLeast(user.RoleManager)
	adminGuard := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
	return func(c *gin.Context) {
		if c.DefaultQuery("mode", "soft") == "hard" {
			adminGuard(c)
			return
		}
		managerGuard(c)
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
