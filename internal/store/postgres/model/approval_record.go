package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/humanika/backoffice/domain"
)

// ApprovalRecord database model
type ApprovalRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EntityType string    `gorm:"index:idx_approval_records_entity"`
	EntityID   string    `gorm:"index:idx_approval_records_entity"`
	ReviewerID *string
	Decision   string
	Note       string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// FromDomain transforms *domain.ApprovalRecord values into the model
func (m *ApprovalRecord) FromDomain(r *domain.ApprovalRecord) error {
	var id uuid.UUID
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.EntityType = string(r.EntityType)
	m.EntityID = r.EntityID
	m.ReviewerID = r.ReviewerID
	m.Decision = string(r.Decision)
	m.Note = r.Note
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt

	return nil
}

// ToDomain transforms model into *domain.ApprovalRecord
func (m *ApprovalRecord) ToDomain() *domain.ApprovalRecord {
	return &domain.ApprovalRecord{
		ID:         m.ID.String(),
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		ReviewerID: m.ReviewerID,
		Decision:   domain.Decision(m.Decision),
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
