package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/humanika/backoffice/core/article"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres/model"
	"github.com/humanika/backoffice/utils"
)

const articleSlugUniqueIndexName = "idx_articles_slug"

var ErrDuplicateArticleSlug = errors.New("an article with this slug already exists")

// ArticleRepository talks to the store to read or update articles.
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db}
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	m := new(model.Article)
	if err := m.FromDomain(a); err != nil {
		return fmt.Errorf("parsing article: %w", err)
	}

	if err := dbFromContext(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err, articleSlugUniqueIndexName) {
			return ErrDuplicateArticleSlug
		}
		return fmt.Errorf("inserting article: %w", err)
	}

	*a = *m.ToDomain()
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	if !utils.IsValidUUID(id) {
		return nil, article.ErrNotFound
	}

	m := new(model.Article)
	if err := dbFromContext(ctx, r.db).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, article.ErrNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

func (r *ArticleRepository) Find(ctx context.Context, filter *domain.ListArticlesFilter) ([]*domain.Article, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, err
	}

	db := dbFromContext(ctx, r.db)
	if filter.Q != "" {
		db = db.Where(`"title" ILIKE ?`, fmt.Sprintf("%%%s%%", filter.Q))
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
		}, []string{"title", "published_at", "created_at", "updated_at"})
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

	var models []*model.Article
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	articles := make([]*domain.Article, len(models))
	for i, m := range models {
		articles[i] = m.ToDomain()
	}

	return articles, nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	m := new(model.Article)
	if err := m.FromDomain(a); err != nil {
		return fmt.Errorf("parsing article: %w", err)
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Article{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"title":         m.Title,
			"slug":          m.Slug,
			"content":       m.Content,
			"thumbnail_url": m.ThumbnailURL,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, articleSlugUniqueIndexName) {
			return ErrDuplicateArticleSlug
		}
		return fmt.Errorf("updating article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	return nil
}

func (r *ArticleRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !utils.IsValidUUID(id) {
		return article.ErrNotFound
	}

	updates := map[string]interface{}{"status": string(status)}
	if status == domain.StatusApproved {
		updates["published_at"] = gorm.Expr("NOW()")
	}

	result := dbFromContext(ctx, r.db).
		Model(&model.Article{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("updating article status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return article.ErrNotFound
	}

	result := dbFromContext(ctx, r.db).Delete(&model.Article{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return article.ErrNotFound
	}

	return nil
}
