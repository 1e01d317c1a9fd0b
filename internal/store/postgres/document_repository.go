package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/document"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

// DocumentRepository talks to the store to read or update documents.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	m := new(model.Document)
	if err := m.FromDomain(d); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}

	*d = *m.ToDomain()
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	if !utils.IsValidUUID(id) {
		return nil, document.ErrNotFound
	}

	m := new(model.Document)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, document.ErrNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *DocumentRepository) Find(ctx context.Context, filter *domain.ListDocumentsFilter) ([]*domain.Document, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Q != "" {
		db = db.Where(`"name" ILIKE ?`, fmt.Sprintf("%%%s%%", filter.Q))
	}
	if filter.Category != "" {
		db = db.Where(`"category" = ?`, filter.Category)
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

	var models []*model.Document
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	documents := make([]*domain.Document, len(models))
	for i, m := range models {
		documents[i] = m.ToDomain()
	}

	return documents, nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *domain.Document) error {
	m := new(model.Document)
	if err := m.FromDomain(d); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Document{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":     m.Name,
			"category": m.Category,
			"file_url": m.FileURL,
		})
	if result.Error != nil {
		return fmt.Errorf("updating document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return document.ErrNotFound
	}

	return nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !utils.IsValidUUID(id) {
		return document.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Document{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating document status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return document.ErrNotFound
	}

	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return document.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.Document{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return document.ErrNotFound
	}

	return nil
}
