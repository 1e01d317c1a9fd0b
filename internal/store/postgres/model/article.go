package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
)

// Article database model
type Article struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title        string
	Slug         string `gorm:"index"`
	Content      string
	ThumbnailURL string
	OwnerID      string
	Status       string `gorm:"index"`
	PublishedAt  *time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (m *Article) FromDomain(a *domain.Article) error {
	var id uuid.UUID
	if a.ID != "" {
		parsed, err := uuid.Parse(a.ID)
		if err != nil {
			return fmt.Errorf("parsing uuid: %w", err)
		}
		id = parsed
	}

	m.ID = id
	m.Title = a.Title
	m.Slug = a.Slug
	m.Content = a.Content
	m.ThumbnailURL = a.ThumbnailURL
	m.OwnerID = a.OwnerID
	m.Status = string(a.Status)
	m.PublishedAt = a.PublishedAt
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt

	return nil
}

func (m *Article) ToDomain() *domain.Article {
	return &domain.Article{
		ID:           m.ID.String(),
		Title:        m.Title,
		Slug:         m.Slug,
		Content:      m.Content,
		ThumbnailURL: m.ThumbnailURL,
		OwnerID:      m.OwnerID,
		Status:       domain.Status(m.Status),
		PublishedAt:  m.PublishedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
