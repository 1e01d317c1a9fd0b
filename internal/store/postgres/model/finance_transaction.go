package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// FinanceTransaction database model
type FinanceTransaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Type            string
	Amount          int64
	Category        string
	Description     string
	ProofURL        string
	OwnerID         string
	Status          string `gorm:"index"`
	TransactionDate time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *FinanceTransaction) FromDomain(t *domain.FinanceTransaction) error {
	var id uuid.UUID
	if t.ID != "" {
		parsed, err := uuid.Parse(t.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Type = t.Type
	m.Amount = t.Amount
	m.Category = t.Category
	m.Description = t.Description
	m.ProofURL = t.ProofURL
	m.OwnerID = t.OwnerID
	m.Status = string(t.Status)
	m.TransactionDate = t.TransactionDate
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt

	return nil
}

func (m *FinanceTransaction) ToDomain() *domain.FinanceTransaction {
	return &domain.FinanceTransaction{
		ID:              m.ID.String(),
		Type:            m.Type,
		Amount:          m.Amount,
		Category:        m.Category,
		Description:     m.Description,
		ProofURL:        m.ProofURL,
		OwnerID:         m.OwnerID,
		Status:          domain.Status(m.Status),
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
