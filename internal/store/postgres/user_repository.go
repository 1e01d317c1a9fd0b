package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/user"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

const userEmailUniqueIndexName = "idx_users_email"

// UserRepository talks to the store to read or update user accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := new(model.User)
	if err := m.FromDomain(u); err != nil {
		return fmt.Errorf("parsing user: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err, userEmailUniqueIndexName) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	*u = *m.ToDomain()
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !utils.IsValidUUID(id) {
		return nil, user.ErrUserNotFound
	}

	m := new(model.User)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *UserRepository) Find(ctx context.Context, filter *domain.ListUsersFilter) ([]*domain.User, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Q != "" {
		q := fmt.Sprintf("%%%s%%", filter.Q)
		db = db.Where(`"name" ILIKE ? OR "email" ILIKE ?`, q, q)
	}
	if filter.Role != "" {
		db = db.Where(`"role" = ?`, filter.Role)
	}
	if filter.Division != "" {
		db = db.Where(`"division" = ?`, filter.Division)
	}
	if len(filter.OrderBy) > 0 {
		var err error
		db, err = addOrderByClause(db, filter.OrderBy, addOrderByClauseOptions{},
			[]string{"name", "email", "created_at", "updated_at"})
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

	var models []*model.User
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, len(models))
	for i, m := range models {
		users[i] = m.ToDomain()
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := new(model.User)
	if err := m.FromDomain(u); err != nil {
		return fmt.Errorf("parsing user: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.User{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":     m.Name,
			"email":    m.Email,
			"role":     m.Role,
			"division": m.Division,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, userEmailUniqueIndexName) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("updating user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return user.ErrUserNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
