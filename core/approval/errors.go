package approval

import "errors"

var (
	ErrRecordIDEmptyParam = errors.New("approval record id is required")
	ErrEntityIDEmptyParam = errors.New("entity id is required")
	ErrInvalidEntityType  = errors.New("unrecognized entity type")
	ErrRecordNotFound     = errors.New("approval record not found")

	ErrDuplicatePending = errors.New("an approval is already pending for this entity")
	ErrAlreadyResolved  = errors.New("approval record has already been resolved")
	ErrNoteRequired     = errors.New("a note is required when rejecting or requesting revision")
	ErrInvalidDecision  = errors.New("decision must be one of approved, rejected, or revision")
	ErrEmptyReviewer    = errors.New("reviewer id is required to resolve an approval")
)
