// Package api assembles the HTTP surface.
package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/docs"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/api/handler"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/api/middleware"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/token"
)

// Options toggles the optional middleware.
type Options struct {
	Mode           string
	Swagger        bool
	TracingService string // empty disables otelgin
	Sentry         bool
	ScoringLimiter *middleware.IPRateLimiter
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(h *handler.Handler, tokens *token.Manager, opts Options) (*gin.Engine, error) {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logger())
	if opts.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if opts.TracingService != "" {
		r.Use(otelgin.Middleware(opts.TracingService))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", h.Health)
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/sims", h.ListSims)
		v1.POST("/orders", h.CreateOrder)
		v1.POST("/feng-shui/analyze", middleware.RateLimit(opts.ScoringLimiter), h.Analyze)
		v1.POST("/admin/login", h.Login)

		admin := v1.Group("/admin", middleware.AdminAuth(tokens))
		{
			admin.GET("/orders", h.ListOrders)
			admin.PATCH("/orders/:id/status", h.TransitionOrder)
		}
	}
	return r, nil
}
