package domain

import "time"

// Article is a public-facing write-up authored by a member.
type Article struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title" validate:"required"`
	Slug         string `json:"slug" yaml:"slug"`
	Content      string `json:"content" yaml:"content" validate:"required"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	OwnerID      string `json:"owner_id" yaml:"owner_id" validate:"required"`
	Status       Status `json:"status" yaml:"status"`

	PublishedAt *time.Time `json:"published_at,omitempty" yaml:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type ListArticlesFilter struct {
	Q        string   `mapstructure:"q" validate:"omitempty"`
	OwnerID  string   `mapstructure:"owner_id" validate:"omitempty"`
	Statuses []string `mapstructure:"statuses" validate:"omitempty,min=1"`
	OrderBy  []string `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size     int      `mapstructure:"size" validate:"omitempty"`
	Offset   int      `mapstructure:"offset" validate:"omitempty"`
}
