package domain

import "time"

// Document is an archived organizational file (proposals, reports, minutes).
type Document struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	FileURL  string `json:"file_url" yaml:"file_url" validate:"required,url"`
	OwnerID  string `json:"owner_id" yaml:"owner_id" validate:"required"`
	Status   Status `json:"status" yaml:"status"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type ListDocumentsFilter struct {
	Q        string   `mapstructure:"q" validate:"omitempty"`
	Category string   `mapstructure:"category" validate:"omitempty"`
	OwnerID  string   `mapstructure:"owner_id" validate:"omitempty"`
	Statuses []string `mapstructure:"statuses" validate:"omitempty,min=1"`
	OrderBy  []string `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size     int      `mapstructure:"size" validate:"omitempty"`
	Offset   int      `mapstructure:"offset" validate:"omitempty"`
}
