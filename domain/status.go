package domain

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusArchived Status = "archived"
)

// statusTransitions is the single source of truth for legal status changes.
// Entity services must never mutate status outside of this table; the
// workflow engine is the only component allowed to consult it.
var statusTransitions = map[Status][]Status{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusArchived, StatusPending},
	StatusRejected: {StatusDraft, StatusPending},
	StatusArchived: nil,
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range statusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(statusTransitions[s]) == 0
}

// AllowedTransitions returns a copy of the legal targets for the given status.
func (s Status) AllowedTransitions() []Status {
	targets := statusTransitions[s]
	result := make([]Status, len(targets))
	copy(result, targets)
	return result
}
