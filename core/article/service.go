package article

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate = "article.create"
	AuditKeyUpdate = "article.update"
	AuditKeyDelete = "article.delete"
)

var (
	ErrIDEmptyParam  = errors.New("article id is required")
	ErrNotFound      = errors.New("article not found")
	ErrNotEditable   = errors.New("article can only be edited while in draft or rejected status")
	ErrPendingDelete = errors.New("article cannot be deleted while an approval is pending")
)

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, a *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Find(ctx context.Context, filter *domain.ListArticlesFilter) ([]*domain.Article, error)
	Update(ctx context.Context, a *domain.Article) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type Service struct {
	repo        repository
	validator   *validator.Validate
	logger      log.Logger
	auditLogger auditLogger
}

type ServiceDeps struct {
	Repository  repository
	Validator   *validator.Validate
	Logger      log.Logger
	AuditLogger auditLogger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:        deps.Repository,
		validator:   deps.Validator,
		logger:      deps.Logger,
		auditLogger: deps.AuditLogger,
	}
}

func (s *Service) Create(ctx context.Context, a *domain.Article) error {
	a.Status = domain.StatusDraft
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if err := s.validator.Struct(a); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, a); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "article_id", a.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	if id == "" {
		return nil, ErrIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListArticlesFilter) ([]*domain.Article, error) {
	return s.repo.Find(ctx, filter)
}

func (s *Service) Update(ctx context.Context, a *domain.Article) error {
	if a.ID == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusDraft && existing.Status != domain.StatusRejected {
		return ErrNotEditable
	}

	a.Status = existing.Status
	a.OwnerID = existing.OwnerID
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if err := s.validator.Struct(a); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, a); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "article_id", a.ID)
		}
	}()

	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == domain.StatusPending {
		return ErrPendingDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"article_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "article_id", id)
		}
	}()

	return nil
}

func (s *Service) GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error) {
	a, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return a.Status, nil
}

func (s *Service) GetOwnerID(ctx context.Context, entityID string) (string, error) {
	a, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return a.OwnerID, nil
}

func (s *Service) SetStatus(ctx context.Context, entityID string, status domain.Status) error {
	if entityID == "" {
		return ErrIDEmptyParam
	}
	return s.repo.UpdateStatus(ctx, entityID, status)
}

// AllowsResubmission always returns true; published write-ups get edited and
// re-reviewed regularly.
func (s *Service) AllowsResubmission() bool {
	return true
}

// Slugify builds a URL-safe slug from a title.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugUnsafe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
