package workflow

import (
	"errors"
	"fmt"

	"github.com/humanika/backoffice/domain"
)

var (
	ErrEntityIDEmptyParam   = errors.New("entity id is required")
	ErrActorEmptyParam      = errors.New("actor id is required")
	ErrUnknownEntityType    = errors.New("no adapter registered for entity type")
	ErrNotOwner             = errors.New("submitter is not the owner of the entity")
	ErrNoPendingApproval    = errors.New("no pending approval exists for this entity")
	ErrUnauthorizedReviewer = errors.New("actor is not allowed to review approvals")
	ErrUnauthorizedArchiver = errors.New("actor is not allowed to archive entities")
)

// InvalidTransitionError reports an attempted status change that is not in
// the transition table.
type InvalidTransitionError struct {
	From domain.Status
	To   domain.Status
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition from %q to %q is not allowed", e.From, e.To)
}
