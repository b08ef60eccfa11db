// Package middleware holds the gin middleware of the genvec server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key and RequestIDHeader the response
	// header carrying the request id.
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"

	sentryFlushTimeout = 2 * time.Second
)

// RequestTracking assigns a request id and logs one line per request.
func RequestTracking(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
			"status_code", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request failed with server error", attrs...)
		case status >= http.StatusBadRequest:
			log.Warn("request failed with client error", attrs...)
		default:
			log.Info("request completed", attrs...)
		}
	}
}

// SentryMiddleware returns the sentrygin middleware. It re-panics so that
// RecoverWithSentry answers the request.
func SentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})
}

// RecoverWithSentry recovers from handler panics, reports them to Sentry
// when a hub is attached and answers 500.
func RecoverWithSentry(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				if hub := sentrygin.GetHubFromContext(c); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						scope.SetRequest(c.Request)
						scope.SetContext("request", map[string]interface{}{
							"request_id": c.GetString(RequestIDKey),
							"method":     c.Request.Method,
							"path":       c.Request.URL.Path,
						})
						hub.RecoverWithContext(c.Request.Context(), err)
					})
				}

				log.Error("panic recovered",
					"request_id", c.GetString(RequestIDKey),
					"error", err,
					"path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "internal server error",
					"request_id": c.GetString(RequestIDKey),
				})
			}
		}()
		c.Next()
	}
}

// CaptureError reports err to the request's Sentry hub, if any.
func CaptureError(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", c.GetString(RequestIDKey))
			hub.CaptureException(err)
		})
	}
}
