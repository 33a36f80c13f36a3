package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"renthub/internal/handler/api"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, bookingHandler *api.BookingHandler, itemHandler *api.ItemHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, itemHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, bookingHandler *api.BookingHandler, itemHandler *api.ItemHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me, Mw: requireAuth},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking, Mw: requireAuth},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookerBookings, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.ListOwnerBookings, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking, Mw: requireAuth},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.DecideBooking, Mw: requireAuth},
			})
		}

		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "", Handler: itemHandler.ListItems, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.GetItem, Mw: requireAuth},
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
