package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// Letter database model
type Letter struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Number     string    `gorm:"index"`
	Subject    string
	Direction  string
	Sender     string
	Recipient  string
	FileURL    string
	Visibility string
	OwnerID    string
	Status     string `gorm:"index"`
	LetterDate time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *Letter) FromDomain(l *domain.Letter) error {
	var id uuid.UUID
	if l.ID != "" {
		parsed, err := uuid.Parse(l.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Number = l.Number
	m.Subject = l.Subject
	m.Direction = l.Direction
	m.Sender = l.Sender
	m.Recipient = l.Recipient
	m.FileURL = l.FileURL
	m.Visibility = l.Visibility
	m.OwnerID = l.OwnerID
	m.Status = string(l.Status)
	m.LetterDate = l.LetterDate
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt

	return nil
}

func (m *Letter) ToDomain() *domain.Letter {
	return &domain.Letter{
		ID:         m.ID.String(),
		Number:     m.Number,
		Subject:    m.Subject,
		Direction:  m.Direction,
		Sender:     m.Sender,
		Recipient:  m.Recipient,
		FileURL:    m.FileURL,
		Visibility: m.Visibility,
		OwnerID:    m.OwnerID,
		Status:     domain.Status(m.Status),
		LetterDate: m.LetterDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
