package http

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/regdesk/regdesk/internal/config"
	"github.com/regdesk/regdesk/internal/http/handlers"
	"github.com/regdesk/regdesk/internal/http/middlewares"
	"github.com/regdesk/regdesk/internal/observability"
	"github.com/regdesk/regdesk/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterDeps struct {
	Repo        handlers.RegistrationStore
	Dispatcher  handlers.Dispatcher
	Metrics     *observability.DispatchMetrics
	Prom        *observability.Prom
	PromReg     *prometheus.Registry
	RedisClient *redisclient.Client
}

func NewRouter(log *slog.Logger, cfg config.Config, deps RouterDeps) *gin.Engine {
	cfgEnv := os.Getenv("APP_ENV")

	if cfgEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(otelgin.Middleware("regdesk"))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware([]string{"http://localhost:3000"}))
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(middlewares.RequireJSON())

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	var rdb *redis.Client
	if deps.RedisClient != nil {
		rdb = deps.RedisClient.Raw()
	}

	limiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, rdb)
	r.Use(limiter.RateLimiterMiddleware(middlewares.KeyByIP))

	// health
	ping := func(ctx context.Context) error {
		if deps.RedisClient == nil {
			return nil
		}

		return deps.RedisClient.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if deps.PromReg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.PromReg, promhttp.HandlerOpts{})))
	}

	// wire up handlers

	regHandler := handlers.NewRegistrationHandler(deps.Repo, deps.Dispatcher)

	r.POST("/registrations", regHandler.Submit)
	r.GET("/registrations", regHandler.List)
	r.GET("/registrations/stats", regHandler.Stats)
	r.GET("/registrations/:id", regHandler.Get)
	r.POST("/registrations/:id/dispatch", regHandler.Dispatch)
	r.POST("/registrations/:id/resend", regHandler.Resend)

	if deps.Metrics != nil {
		admin := handlers.NewAdminHandler(deps.Metrics)
		r.GET("/admin/dispatch/stats", admin.DispatchStats)
	}

	return r
}
