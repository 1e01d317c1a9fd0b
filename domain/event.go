package domain

import "time"

// Event is a scheduled organizational activity, optionally derived from a
// work program.
type Event struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name" validate:"required"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Location      string `json:"location,omitempty" yaml:"location,omitempty"`
	WorkProgramID string `json:"work_program_id,omitempty" yaml:"work_program_id,omitempty"`
	OwnerID       string `json:"owner_id" yaml:"owner_id" validate:"required"`
	Status        Status `json:"status" yaml:"status"`

	StartTime time.Time `json:"start_time" yaml:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" yaml:"end_time" validate:"required"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type ListEventsFilter struct {
	Q             string     `mapstructure:"q" validate:"omitempty"`
	WorkProgramID string     `mapstructure:"work_program_id" validate:"omitempty"`
	OwnerID       string     `mapstructure:"owner_id" validate:"omitempty"`
	Statuses      []string   `mapstructure:"statuses" validate:"omitempty,min=1"`
	StartsAfter   *time.Time `mapstructure:"starts_after" validate:"omitempty"`
	StartsBefore  *time.Time `mapstructure:"starts_before" validate:"omitempty"`
	OrderBy       []string   `mapstructure:"order_by" validate:"omitempty,min=1"`
	Size          int        `mapstructure:"size" validate:"omitempty"`
	Offset        int        `mapstructure:"offset" validate:"omitempty"`
}
