package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// WorkProgram database model
type WorkProgram struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string
	Description string
	Division    string
	Period      string
	Budget      int64
	OwnerID     string
	Status      string `gorm:"index"`
	StartDate   *time.Time
	EndDate     *time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *WorkProgram) FromDomain(wp *domain.WorkProgram) error {
	var id uuid.UUID
	if wp.ID != "" {
		parsed, err := uuid.Parse(wp.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Name = wp.Name
	m.Description = wp.Description
	m.Division = wp.Division
	m.Period = wp.Period
	m.Budget = wp.Budget
	m.OwnerID = wp.OwnerID
	m.Status = string(wp.Status)
	m.StartDate = wp.StartDate
	m.EndDate = wp.EndDate
	m.CreatedAt = wp.CreatedAt
	m.UpdatedAt = wp.UpdatedAt

	return nil
}

func (m *WorkProgram) ToDomain() *domain.WorkProgram {
	return &domain.WorkProgram{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Division:    m.Division,
		Period:      m.Period,
		Budget:      m.Budget,
		OwnerID:     m.OwnerID,
		Status:      domain.Status(m.Status),
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
