package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/event"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

// EventRepository talks to the store to read or update events.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := new(model.Event)
	if err := m.FromDomain(e); err != nil {
		return fmt.Errorf("parsing event: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	*e = *m.ToDomain()
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !utils.IsValidUUID(id) {
		return nil, event.ErrNotFound
	}

	m := new(model.Event)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *EventRepository) Find(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Q != "" {
		db = db.Where(`"name" ILIKE ?`, fmt.Sprintf("%%%s%%", filter.Q))
	}
	if filter.WorkProgramID != "" {
		db = db.Where(`"work_program_id" = ?`, filter.WorkProgramID)
	}
	if filter.OwnerID != "" {
		db = db.Where(`"owner_id" = ?`, filter.OwnerID)
	}
	if filter.Statuses != nil {
		db = db.Where(`"status" IN ?`, filter.Statuses)
	}
	if filter.StartsAfter != nil {
		db = db.Where(`"start_time" > ?`, *filter.StartsAfter)
	}
	if filter.StartsBefore != nil {
		db = db.Where(`"start_time" < ?`, *filter.StartsBefore)
	}
	if len(filter.OrderBy) > 0 {
		var err error
		db, err = addOrderByClause(db, filter.OrderBy, addOrderByClauseOptions{
			statusColumnName: `"status"`,
			statusesOrder:    EntityStatusDefaultSort,
		}, []string{"name", "start_time", "created_at", "updated_at"})
		if err != nil {
			return nil, err
		}
	}
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.Event
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	events := make([]*domain.Event, len(models))
	for i, m := range models {
		events[i] = m.ToDomain()
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := new(model.Event)
	if err := m.FromDomain(e); err != nil {
		return fmt.Errorf("parsing event: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Event{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":            m.Name,
			"description":     m.Description,
			"location":        m.Location,
			"work_program_id": m.WorkProgramID,
			"start_time":      m.StartTime,
			"end_time":        m.EndTime,
		})
	if result.Error != nil {
		return fmt.Errorf("updating event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return event.ErrNotFound
	}

	return nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !utils.IsValidUUID(id) {
		return event.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Event{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating event status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return event.ErrNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return event.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.Event{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return event.ErrNotFound
	}

	return nil
}
