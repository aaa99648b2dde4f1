package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tweetsink/ingest-service/internal/dto"
	"github.com/tweetsink/ingest-service/internal/metrics"
	"github.com/tweetsink/ingest-service/pkg/utils"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request-id"
	producerKey     = "producer"
)

func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)

	c.Next()
}

func (h *Handler) loggingMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := []zap.Field{
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	}
	if producer := c.GetString(producerKey); producer != "" {
		fields = append(fields, zap.String("producer", producer))
	}

	if c.Writer.Status() >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
		return
	}
	h.logger.Info("request", fields...)
}

func (h *Handler) metricsMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())

	metrics.RequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
}

func (h *Handler) rateLimitMiddleware(c *gin.Context) {
	if h.limiter == nil {
		c.Next()
		return
	}

	if !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, dto.NewBasicResponse(false, errTooManyRequests.Error()))
		c.Abort()
		return
	}

	c.Next()
}

func (h *Handler) ingestAuthMiddleware(c *gin.Context) {
	if h.opts.IngestSecret == "" {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(h.opts.IngestSecret))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		c.Set(producerKey, sub)
	}

	c.Next()
}
