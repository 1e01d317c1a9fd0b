package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/letter"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

const letterNumberUniqueIndexName = "idx_letters_number"

var ErrDuplicateLetterNumber = errors.New("a letter with this number already exists")

// LetterRepository talks to the store to read or update letters.
type LetterRepository struct {
	db *gorm.DB
}

func NewLetterRepository(db *gorm.DB) *LetterRepository {
	return &LetterRepository{db}
}

func (r *LetterRepository) Create(ctx context.Context, l *domain.Letter) error {
	m := new(model.Letter)
	if err := m.FromDomain(l); err != nil {
		return fmt.Errorf("parsing letter: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err, letterNumberUniqueIndexName) {
			return ErrDuplicateLetterNumber
		}
		return fmt.Errorf("inserting letter: %w", err)
	}

	*l = *m.ToDomain()
	return nil
}

func (r *LetterRepository) GetByID(ctx context.Context, id string) (*domain.Letter, error) {
	if !utils.IsValidUUID(id) {
		return nil, letter.ErrNotFound
	}

	m := new(model.Letter)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, letter.ErrNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *LetterRepository) Find(ctx context.Context, filter *domain.ListLettersFilter) ([]*domain.Letter, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Q != "" {
		q := fmt.Sprintf("%%%s%%", filter.Q)
		db = db.Where(`"subject" ILIKE ? OR "number" ILIKE ?`, q, q)
	}
	if filter.Direction != "" {
		db = db.Where(`"direction" = ?`, filter.Direction)
	}
	if filter.Visibility != "" {
		db = db.Where(`"visibility" = ?`, filter.Visibility)
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
		}, []string{"number", "letter_date", "created_at", "updated_at"})
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

	var models []*model.Letter
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	letters := make([]*domain.Letter, len(models))
	for i, m := range models {
		letters[i] = m.ToDomain()
	}

	return letters, nil
}

func (r *LetterRepository) Update(ctx context.Context, l *domain.Letter) error {
	m := new(model.Letter)
	if err := m.FromDomain(l); err != nil {
		return fmt.Errorf("parsing letter: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Letter{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"number":      m.Number,
			"subject":     m.Subject,
			"direction":   m.Direction,
			"sender":      m.Sender,
			"recipient":   m.Recipient,
			"file_url":    m.FileURL,
			"letter_date": m.LetterDate,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, letterNumberUniqueIndexName) {
			return ErrDuplicateLetterNumber
		}
		return fmt.Errorf("updating letter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return letter.ErrNotFound
	}

	return nil
}

func (r *LetterRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !utils.IsValidUUID(id) {
		return letter.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Letter{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating letter status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return letter.ErrNotFound
	}

	return nil
}

func (r *LetterRepository) UpdateVisibility(ctx context.Context, id, visibility string) error {
	if !utils.IsValidUUID(id) {
		return letter.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Letter{}).
		Where("id = ?", id).
		Update("visibility", visibility)
	if result.Error != nil {
		return fmt.Errorf("updating letter visibility: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return letter.ErrNotFound
	}

	return nil
}

func (r *LetterRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return letter.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.Letter{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting letter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return letter.ErrNotFound
	}

	return nil
}
