package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/workprogram"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

// WorkProgramRepository talks to the store to read or update work programs.
type WorkProgramRepository struct {
	db *gorm.DB
}

func NewWorkProgramRepository(db *gorm.DB) *WorkProgramRepository {
	return &WorkProgramRepository{db}
}

func (r *WorkProgramRepository) Create(ctx context.Context, wp *domain.WorkProgram) error {
	m := new(model.WorkProgram)
	if err := m.FromDomain(wp); err != nil {
		return fmt.Errorf("parsing work program: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		return fmt.Errorf("inserting work program: %w", err)
	}

	*wp = *m.ToDomain()
	return nil
}

func (r *WorkProgramRepository) GetByID(ctx context.Context, id string) (*domain.WorkProgram, error) {
	if !utils.IsValidUUID(id) {
		return nil, workprogram.ErrNotFound
	}

	m := new(model.WorkProgram)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workprogram.ErrNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *WorkProgramRepository) Find(ctx context.Context, filter *domain.ListWorkProgramsFilter) ([]*domain.WorkProgram, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Q != "" {
		db = db.Where(`"name" ILIKE ?`, fmt.Sprintf("%%%s%%", filter.Q))
	}
	if filter.Division != "" {
		db = db.Where(`"division" = ?`, filter.Division)
	}
	if filter.Period != "" {
		db = db.Where(`"period" = ?`, filter.Period)
	}
	if filter.OwnerID != "" {
		db = db.Where(`"owner_id" = ?`, filter.OwnerID)
	}
	if filter.Statuses != nil {
		db = db.Where(`"status" IN ?`, filter.Statuses)
	}
	if len(filter.OrderBy) > 0 {
		var err error
		db, err = addOrderByClause(db, filter.OrderBy, addOrderByClauseOptions{
			statusColumnName: `"status"`,
			statusesOrder:    EntityStatusDefaultSort,
		}, []string{"name", "created_at", "updated_at"})
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

	var models []*model.WorkProgram
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	programs := make([]*domain.WorkProgram, len(models))
	for i, m := range models {
		programs[i] = m.ToDomain()
	}

	return programs, nil
}

func (r *WorkProgramRepository) Update(ctx context.Context, wp *domain.WorkProgram) error {
	m := new(model.WorkProgram)
	if err := m.FromDomain(wp); err != nil {
		return fmt.Errorf("parsing work program: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.WorkProgram{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"division":    m.Division,
			"period":      m.Period,
			"budget":      m.Budget,
			"start_date":  m.StartDate,
			"end_date":    m.EndDate,
		})
	if result.Error != nil {
		return fmt.Errorf("updating work program: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workprogram.ErrNotFound
	}

	return nil
}

func (r *WorkProgramRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !utils.IsValidUUID(id) {
		return workprogram.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.WorkProgram{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating work program status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workprogram.ErrNotFound
	}

	return nil
}

func (r *WorkProgramRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return workprogram.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.WorkProgram{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting work program: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workprogram.ErrNotFound
	}

	return nil
}
