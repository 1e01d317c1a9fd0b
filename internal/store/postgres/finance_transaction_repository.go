package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/finance"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

// FinanceTransactionRepository talks to the store to read or update finance
// transactions.
type FinanceTransactionRepository struct {
	db *gorm.DB
}

func NewFinanceTransactionRepository(db *gorm.DB) *FinanceTransactionRepository {
	return &FinanceTransactionRepository{db}
}

func (r *FinanceTransactionRepository) Create(ctx context.Context, t *domain.FinanceTransaction) error {
	m := new(model.FinanceTransaction)
	if err := m.FromDomain(t); err != nil {
		return fmt.Errorf("parsing finance transaction: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		return fmt.Errorf("inserting finance transaction: %w", err)
	}

	*t = *m.ToDomain()
	return nil
}

func (r *FinanceTransactionRepository) GetByID(ctx context.Context, id string) (*domain.FinanceTransaction, error) {
	if !utils.IsValidUUID(id) {
		return nil, finance.ErrNotFound
	}

	m := new(model.FinanceTransaction)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, finance.ErrNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *FinanceTransactionRepository) Find(ctx context.Context, filter *domain.ListFinanceTransactionsFilter) ([]*domain.FinanceTransaction, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Type != "" {
		db = db.Where(`"type" = ?`, filter.Type)
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
		}, []string{"amount", "transaction_date", "created_at", "updated_at"})
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

	var models []*model.FinanceTransaction
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.FinanceTransaction, len(models))
	for i, m := range models {
		transactions[i] = m.ToDomain()
	}

	return transactions, nil
}

func (r *FinanceTransactionRepository) Update(ctx context.Context, t *domain.FinanceTransaction) error {
	m := new(model.FinanceTransaction)
	if err := m.FromDomain(t); err != nil {
		return fmt.Errorf("parsing finance transaction: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.FinanceTransaction{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"type":             m.Type,
			"amount":           m.Amount,
			"category":         m.Category,
			"description":      m.Description,
			"proof_url":        m.ProofURL,
			"transaction_date": m.TransactionDate,
		})
	if result.Error != nil {
		return fmt.Errorf("updating finance transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrNotFound
	}

	return nil
}

func (r *FinanceTransactionRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !utils.IsValidUUID(id) {
		return finance.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.FinanceTransaction{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating finance transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrNotFound
	}

	return nil
}

func (r *FinanceTransactionRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return finance.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.FinanceTransaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting finance transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return finance.ErrNotFound
	}

	return nil
}
