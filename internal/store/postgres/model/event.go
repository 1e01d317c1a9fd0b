package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// Event database model
type Event struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name          string
	Description   string
	Location      string
	WorkProgramID *string
	OwnerID       string
	Status        string `gorm:"index"`
	StartTime     time.Time
	EndTime       time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *Event) FromDomain(e *domain.Event) error {
	var id uuid.UUID
	if e.ID != "" {
		parsed, err := uuid.Parse(e.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Name = e.Name
	m.Description = e.Description
	m.Location = e.Location
	if e.WorkProgramID != "" {
		wpID := e.WorkProgramID
		m.WorkProgramID = &wpID
	} else {
		m.WorkProgramID = nil
	}
	m.OwnerID = e.OwnerID
	m.Status = string(e.Status)
	m.StartTime = e.StartTime
	m.EndTime = e.EndTime
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt

	return nil
}

func (m *Event) ToDomain() *domain.Event {
	e := &domain.Event{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		OwnerID:     m.OwnerID,
		Status:      domain.Status(m.Status),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.WorkProgramID != nil {
		e.WorkProgramID = *m.WorkProgramID
	}
	return e
}
