package domain

import "time"

// WorkProgram is a division-level program of work for one organizational period.
type WorkProgram struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Division    string `json:"division" yaml:"division" validate:"required"`
	Period      string `json:"period" yaml:"period"`
	Budget      int64  `json:"budget" yaml:"budget" validate:"omitempty,gte=0"`
	OwnerID     string `json:"owner_id" yaml:"owner_id" validate:"required"`
	Status      Status `json:"status" yaml:"status"`

	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type ListWorkProgramsFilter struct {
	Q        string   `mapstructure:"q" validate:"omitempty"`
	Division string   `mapstructure:"division" validate:"omitempty"`
	Period   string   `mapstructure:"period" validate:"omitempty"`
	OwnerID  string   `mapstructure:"owner_id" validate:"omitempty"`
	Statuses []string `mapstructure:"statuses" validate:"omitempty,min=1"`
	OrderBy  []string `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size     int      `mapstructure:"size" validate:"omitempty"`
	Offset   int      `mapstructure:"offset" validate:"omitempty"`
}
