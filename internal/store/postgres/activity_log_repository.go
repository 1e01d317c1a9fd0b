package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

// ActivityLogRepository persists audit trail rows. Rows are append-only.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, l *domain.ActivityLog) error {
	m := new(model.ActivityLog)
	if err := m.FromDomain(l); err != nil {
		return fmt.Errorf("parsing activity log: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		return fmt.Errorf("inserting activity log: %w", err)
	}

	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, filter *domain.ListActivityLogsFilter) ([]*domain.ActivityLog, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Actions != nil {
		db = db.Where(`"action" IN ?`, filter.Actions)
	}
	if filter.Actor != "" {
		db = db.Where(`"actor" = ?`, filter.Actor)
	}
	if filter.EntityType != "" {
		db = db.Where(`"data" ->> 'entity_type' = ?`, filter.EntityType)
	}
	if filter.EntityID != "" {
		db = db.Where(`"data" ->> 'entity_id' = ?`, filter.EntityID)
	}
	db = db.Order(`"timestamp" DESC`)
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.ActivityLog
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*domain.ActivityLog, len(models))
	for i, m := range models {
		l, err := m.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("decoding activity log %s: %w", m.ID, err)
		}
		logs[i] = l
	}

	return logs, nil
}
