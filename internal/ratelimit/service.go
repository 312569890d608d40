package ratelimit

import (
	"context"
	"fmt"
	"time"

	"dub-server/internal/observability"
)

// Window is the length of a rate limit window
const Window = time.Minute

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Service limits requests per workspace with fixed one-minute windows in Redis
type Service struct {
	counter Counter
	limit   int
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a rate limiter allowing limit requests per workspace per minute.
// A limit of zero or less disables limiting.
func NewService(counter Counter, limit int, logger *observability.Logger) *Service {
	return &Service{
		counter: counter,
		limit:   limit,
		logger:  logger,
		now:     time.Now,
	}
}

// Key returns the counter key for a workspace in the window containing t
func Key(scope, workspaceID string, t time.Time) string {
	return fmt.Sprintf("rl:%s:%s:%d", scope, workspaceID, t.Truncate(Window).Unix())
}

// Check counts one request for the workspace and reports whether it is allowed.
// Counter failures allow the request so that tracking keeps working without Redis.
func (s *Service) Check(ctx context.Context, scope, workspaceID string) Result {
	now := s.now()
	resetAt := now.Truncate(Window).Add(Window)
	if s.limit <= 0 {
		return Result{Allowed: true, Limit: s.limit, ResetAt: resetAt}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID},
		observability.Field{Key: "rate_limit_scope", Value: scope},
	)

	count, err := s.counter.IncrWindow(ctx, Key(scope, workspaceID, now), Window)
	if err != nil {
		s.logger.Error(ctx, "rate limit check failed, allowing request", err)
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: resetAt}
	}

	remaining := s.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   int(count) <= s.limit,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
