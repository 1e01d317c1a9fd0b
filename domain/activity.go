package domain

import "time"

// ActivityLog records who changed what and when. One row is written for every
// audited action across the system.
type ActivityLog struct {
	ID        string                 `json:"id" yaml:"id"`
	Actor     string                 `json:"actor" yaml:"actor"`
	Action    string                 `json:"action" yaml:"action"`
	Data      map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
}

type ListActivityLogsFilter struct {
	Actions    []string `mapstructure:"actions" validate:"omitempty,min=1"`
	Actor      string   `mapstructure:"actor" validate:"omitempty"`
	EntityType string   `mapstructure:"entity_type" validate:"omitempty"`
	EntityID   string   `mapstructure:"entity_id" validate:"omitempty"`
	Size       int      `mapstructure:"size" validate:"omitempty"`
	Offset     int      `mapstructure:"offset" validate:"omitempty"`
}
