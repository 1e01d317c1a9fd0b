package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/pkg/audit"
	"github.com/humanika/backoffice/pkg/log"
)

// DefaultActorHeaderKey identifies the acting user. The gateway in front of
// this service is trusted to set it after authentication.
const DefaultActorHeaderKey = "X-User-Id"

// ActorMiddleware copies the authenticated user id from the request header
// onto the context so audit logging and ownership checks can reach it.
func ActorMiddleware(headerKey string) gin.HandlerFunc {
	if headerKey == "" {
		headerKey = DefaultActorHeaderKey
	}
	return func(c *gin.Context) {
		if actor := c.GetHeader(headerKey); actor != "" {
			ctx := audit.WithActor(c.Request.Context(), actor)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func actorID(c *gin.Context) string {
	return audit.ActorFromContext(c.Request.Context())
}

func requireActor(c *gin.Context) (string, bool) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "authenticated user id is required"})
		return "", false
	}
	return actor, true
}
