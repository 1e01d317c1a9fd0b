package workflow

import (
	"context"

	"github.com/humanika/backoffice/domain"
)

// EntityAdapter translates generic workflow calls into entity-specific
// persistence. Adapters are thin mappings; all transition rules live in the
// engine and the status transition table.
//
//go:generate mockery --name=EntityAdapter --with-expecter
type EntityAdapter interface {
	GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error)
	GetOwnerID(ctx context.Context, entityID string) (string, error)
	SetStatus(ctx context.Context, entityID string, status domain.Status) error

	// AllowsResubmission reports whether an already-approved entity may be
	// submitted again after an edit.
	AllowsResubmission() bool
}
