package audit

import (
	"context"
	"time"

	"github.com/humanika/backoffice/domain"
)

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type actorContextKey struct{}

// WithActor returns a context carrying the acting user's id. The logger picks
// it up for every subsequent Log call.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorContextKey{}).(string); ok {
		return actor
	}
	return ""
}

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, l *domain.ActivityLog) error
}

// Logger writes activity log rows through the backing store.
type Logger struct {
	repo repository

	TimeNow func() time.Time
}

func NewLogger(repo repository) *Logger {
	return &Logger{repo: repo, TimeNow: time.Now}
}

func (l *Logger) Log(ctx context.Context, action string, data interface{}) error {
	record := &domain.ActivityLog{
		Actor:     ActorFromContext(ctx),
		Action:    action,
		Timestamp: l.TimeNow(),
	}
	if data != nil {
		if m, ok := data.(map[string]interface{}); ok {
			record.Data = m
		} else {
			record.Data = map[string]interface{}{"payload": data}
		}
	}

	return l.repo.Create(ctx, record)
}
