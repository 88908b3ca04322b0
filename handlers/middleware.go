package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/clubsphere/backend/auth"
	"github.com/clubsphere/backend/response"
	"github.com/clubsphere/backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ContextEmail is the gin context key holding the verified principal email.
const ContextEmail = "principalEmail"

// RequireAuth verifies the bearer credential and attaches the principal email
// to the request context. Missing or invalid credentials get 401.
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Unauthorized Access!")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Unauthorized Access!")
			c.Abort()
			return
		}

		email, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			response.Unauthorized(c, "Unauthorized Access!")
			c.Abort()
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

// RequireRole gates a route on the principal's persisted role. An unknown
// user counts as a role mismatch, not a distinct error.
func RequireRole(userService *services.UserService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmail)

		persisted, err := userService.GetRole(c.Request.Context(), email)
		if err != nil {
			response.Internal(c, "Server Error")
			c.Abort()
			return
		}
		if persisted != role {
			response.Forbidden(c, "Forbidden Access!")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger logs one line per request with a generated request id.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("requestId", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Msg("request")
	}
}

// RateLimit applies a process-wide request budget.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.TooManyRequests(c, "Too Many Requests!")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORS allows the configured client origin.
func CORS(clientDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if clientDomain == "*" || origin == clientDomain {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
