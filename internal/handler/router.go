package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookit/internal/handler/api"
	reqdto "bookit/internal/handler/dto/request"
	"bookit/internal/handler/middleware"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/config"
)

const apiVersion = "1.0.0"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking    *api.BookingHandler
	Promo      *api.PromoHandler
	Experience *api.ExperienceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, clk clock.Clock, h Handlers) {
	reqdto.RegisterValidations()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, clk, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, clk clock.Clock, h Handlers) {
	engine.GET("/", root)
	engine.GET("/health", healthCheck(clk))
	engine.NoRoute(middleware.NotFound())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/experiences"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Experience.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Experience.Get},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:reference", Handler: h.Booking.Get},
		})

		addRoutes(apiGroup.Group("/promo"), []route{
			{Method: http.MethodPost, Path: "/validate", Handler: h.Promo.Validate},
		})
	}
}

// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "BookIt API Server",
		"version": apiVersion,
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": clk.Now().Format(time.RFC3339Nano),
		})
	}
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
