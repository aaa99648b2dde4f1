package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tweetsink/ingest-service/internal/config"
	"github.com/tweetsink/ingest-service/internal/service"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	AllowedOrigins []string
	// IngestSecret enables bearer JWT checks on POST /tweets when set.
	IngestSecret string
	RateLimit    config.RateLimitConfig
}

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	opts     Options
	limiter  *rate.Limiter
}

func New(services *service.Service, logger *zap.Logger, opts Options) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
		opts:     opts,
	}
	if opts.RateLimit.RPS > 0 {
		burst := opts.RateLimit.Burst
		if burst <= 0 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit.RPS), burst)
	}
	return h
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(h.requestIDMiddleware, h.loggingMiddleware, h.metricsMiddleware)
	r.Use(cors.New(corsConfig(h.opts.AllowedOrigins)))

	r.GET("/", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/tweets", h.rateLimitMiddleware, h.ingestAuthMiddleware, h.tweetsCreate)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
