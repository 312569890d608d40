package ratelimit

import (
	"strconv"
	"time"

	"dub-server/internal/apierrors"
	"dub-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// WorkspaceHeader identifies the workspace being limited
const WorkspaceHeader = "X-Workspace-ID"

// Middleware limits requests per workspace under the given scope.
// Requests without a workspace header pass through; the handler rejects them.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceID := c.GetHeader(WorkspaceHeader)
		if workspaceID == "" {
			c.Next()
			return
		}

		result := s.Check(c.Request.Context(), scope, workspaceID)
		if result.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		}

		if !result.Allowed {
			retryAfter := int(result.ResetAt.Sub(s.now()).Round(time.Second) / time.Second)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			s.logger.Warn(observability.WithFields(c.Request.Context(),
				observability.Field{Key: "workspace_id", Value: workspaceID},
				observability.Field{Key: "limit", Value: result.Limit},
			), "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}
