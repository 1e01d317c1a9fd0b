package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// User database model
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name     string
	Email    string `gorm:"index"`
	Role     string
	Division string

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *User) FromDomain(u *domain.User) error {
	var id uuid.UUID
	if u.ID != "" {
		parsed, err := uuid.Parse(u.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Name = u.Name
	m.Email = u.Email
	m.Role = u.Role
	m.Division = u.Division
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt

	return nil
}

func (m *User) ToDomain() *domain.User {
	return &domain.User{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		Division:  m.Division,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
