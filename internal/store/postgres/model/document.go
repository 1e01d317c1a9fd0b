package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// Document database model
type Document struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name     string
	Category string
	FileURL  string
	OwnerID  string
	Status   string `gorm:"index"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *Document) FromDomain(d *domain.Document) error {
	var id uuid.UUID
	if d.ID != "" {
		parsed, err := uuid.Parse(d.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Name = d.Name
	m.Category = d.Category
	m.FileURL = d.FileURL
	m.OwnerID = d.OwnerID
	m.Status = string(d.Status)
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt

	return nil
}

func (m *Document) ToDomain() *domain.Document {
	return &domain.Document{
		ID:        m.ID.String(),
		Name:      m.Name,
		Category:  m.Category,
		FileURL:   m.FileURL,
		OwnerID:   m.OwnerID,
		Status:    domain.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
