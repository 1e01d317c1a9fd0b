package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/humanika/backoffice/domain"
)

// ActivityLog database model
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Actor     string
	Action    string `gorm:"index"`
	Data      datatypes.JSON
	Timestamp time.Time
}

func (m *ActivityLog) FromDomain(l *domain.ActivityLog) error {
	data, err := json.Marshal(l.Data)
	if err != nil {
		return err
	}

	m.Actor = l.Actor
	m.Action = l.Action
	m.Data = data
	m.Timestamp = l.Timestamp

	return nil
}

func (m *ActivityLog) ToDomain() (*domain.ActivityLog, error) {
	var data map[string]interface{}
	if m.Data != nil {
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return nil, err
		}
	}

	return &domain.ActivityLog{
		ID:        m.ID.String(),
		Actor:     m.Actor,
		Action:    m.Action,
		Data:      data,
		Timestamp: m.Timestamp,
	}, nil
}
