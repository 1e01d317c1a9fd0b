package domain

import (
	"time"
)

type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionRevision Decision = "revision"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionPending, DecisionApproved, DecisionRejected, DecisionRevision:
		return true
	}
	return false
}

// IsResolution reports whether the decision closes a pending record.
func (d Decision) IsResolution() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionRevision:
		return true
	}
	return false
}

// RequiresNote reports whether a reviewer note is mandatory for the decision.
func (d Decision) RequiresNote() bool {
	return d == DecisionRejected || d == DecisionRevision
}

// ApprovalRecord represents one reviewer decision on one entity instance.
// The record holds a weak back-reference to the entity; it does not own the
// entity's lifecycle.
type ApprovalRecord struct {
	ID         string     `json:"id" yaml:"id"`
	EntityType EntityType `json:"entity_type" yaml:"entity_type"`
	EntityID   string     `json:"entity_id" yaml:"entity_id"`
	ReviewerID *string    `json:"reviewer_id" yaml:"reviewer_id"`
	Decision   Decision   `json:"decision" yaml:"decision"`
	Note       string     `json:"note,omitempty" yaml:"note,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (r *ApprovalRecord) IsResolved() bool {
	return r.Decision != DecisionPending
}

func (r *ApprovalRecord) Approve(reviewerID string) {
	r.Decision = DecisionApproved
	r.ReviewerID = &reviewerID
}

func (r *ApprovalRecord) Reject(reviewerID, note string) {
	r.Decision = DecisionRejected
	r.ReviewerID = &reviewerID
	r.Note = note
}

func (r *ApprovalRecord) RequestRevision(reviewerID, note string) {
	r.Decision = DecisionRevision
	r.ReviewerID = &reviewerID
	r.Note = note
}

type ListApprovalRecordsFilter struct {
	EntityType    string     `mapstructure:"entity_type" validate:"omitempty"`
	EntityID      string     `mapstructure:"entity_id" validate:"omitempty"`
	Decisions     []string   `mapstructure:"decisions" validate:"omitempty,min=1"`
	ReviewerID    string     `mapstructure:"reviewer_id" validate:"omitempty"`
	CreatedBefore *time.Time `mapstructure:"created_before" validate:"omitempty"`
	OrderBy       []string   `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size          int        `mapstructure:"size" validate:"omitempty"`
	Offset        int        `mapstructure:"offset" validate:"omitempty"`
}
