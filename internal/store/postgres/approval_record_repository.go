package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

const (
	pgUniqueViolationErrorCode     = "23505"
	pendingApprovalUniqueIndexName = "unique_pending_approval_index"
)

var ApprovalDecisionDefaultSort = []string{
	string(domain.DecisionPending),
	string(domain.DecisionApproved),
	string(domain.DecisionRejected),
	string(domain.DecisionRevision),
}

// ApprovalRecordRepository talks to the store to read or insert approval
// records.
type ApprovalRecordRepository struct {
	db *gorm.DB
}

func NewApprovalRecordRepository(db *gorm.DB) *ApprovalRecordRepository {
	return &ApprovalRecordRepository{db}
}

// Create inserts a new approval record. The partial unique index on pending
// records serializes concurrent submissions; the loser of the race gets
// ErrDuplicatePending.
func (r *ApprovalRecordRepository) Create(ctx context.Context, record *domain.ApprovalRecord) error {
	m := new(model.ApprovalRecord)
	if err := m.FromDomain(record); err != nil {
		return fmt.Errorf("parsing approval record: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err, pendingApprovalUniqueIndexName) {
			return approval.ErrDuplicatePending
		}
		return fmt.Errorf("inserting approval record: %w", err)
	}

	*record = *m.ToDomain()
	return nil
}

func (r *ApprovalRecordRepository) GetByID(ctx context.Context, id string) (*domain.ApprovalRecord, error) {
	if !utils.IsValidUUID(id) {
		return nil, approval.ErrRecordNotFound
	}

	m := new(model.ApprovalRecord)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, approval.ErrRecordNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *ApprovalRecordRepository) FindPending(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.ApprovalRecord, error) {
	m := new(model.ApprovalRecord)
	err := dbFromContext(ctx, r.db).
		Where("entity_type = ?", string(entityType)).
		Where("entity_id = ?", entityID).
		Where("decision = ?", string(domain.DecisionPending)).
		First(m).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, approval.ErrRecordNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

// UpdateResolution closes a pending record. The decision guard makes
// concurrent reviews race-safe: only the first resolution matches the WHERE
// clause, the second gets ErrAlreadyResolved.
func (r *ApprovalRecordRepository) UpdateResolution(ctx context.Context, record *domain.ApprovalRecord) error {
	m := new(model.ApprovalRecord)
	if err := m.FromDomain(record); err != nil {
		return fmt.Errorf("parsing approval record: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.ApprovalRecord{}).
		Where("id = ?", m.ID).
		Where("decision = ?", string(domain.DecisionPending)).
		Updates(map[string]interface{}{
			"decision":    m.Decision,
			"reviewer_id": m.ReviewerID,
			"note":        m.Note,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("updating approval record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return approval.ErrAlreadyResolved
	}

	return nil
}

func (r *ApprovalRecordRepository) List(ctx context.Context, filter *domain.ListApprovalRecordsFilter) ([]*domain.ApprovalRecord, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.EntityType != "" {
		db = db.Where(`"entity_type" = ?`, filter.EntityType)
	}
	if filter.EntityID != "" {
		db = db.Where(`"entity_id" = ?`, filter.EntityID)
	}
	if filter.Decisions != nil {
		db = db.Where(`"decision" IN ?`, filter.Decisions)
	}
	if filter.ReviewerID != "" {
		db = db.Where(`"reviewer_id" = ?`, filter.ReviewerID)
	}
	if filter.CreatedBefore != nil {
		db = db.Where(`"created_at" < ?`, *filter.CreatedBefore)
	}
	if len(filter.OrderBy) > 0 {
		var err error
		db, err = addOrderByClause(db, filter.OrderBy, addOrderByClauseOptions{
			statusColumnName: `"decision"`,
			statusesOrder:    ApprovalDecisionDefaultSort,
		}, []string{"created_at", "updated_at"})
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

	var models []*model.ApprovalRecord
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.ApprovalRecord, len(models))
	for i, m := range models {
		records[i] = m.ToDomain()
	}

	return records, nil
}

func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationErrorCode && pgErr.ConstraintName == constraintName
	}
	return false
}
