package letter

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate    = "letter.create"
	AuditKeyUpdate    = "letter.update"
	AuditKeyDelete    = "letter.delete"
	AuditKeyPublish   = "letter.publish"
	AuditKeyUnpublish = "letter.unpublish"
)

var (
	ErrIDEmptyParam  = errors.New("letter id is required")
	ErrNotFound      = errors.New("letter not found")
	ErrNotEditable   = errors.New("letter can only be edited while in draft or rejected status")
	ErrPendingDelete = errors.New("letter cannot be deleted while an approval is pending")
	ErrNotApproved   = errors.New("letter visibility can only be changed after approval")
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, l *domain.Letter) error
	GetByID(ctx context.Context, id string) (*domain.Letter, error)
	Find(ctx context.Context, filter *domain.ListLettersFilter) ([]*domain.Letter, error)
	Update(ctx context.Context, l *domain.Letter) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	UpdateVisibility(ctx context.Context, id, visibility string) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// Service handles letter CRUD, the letter workflow adapter, and the
// published/private visibility toggle. Visibility sits outside the approval
// lifecycle and is only reachable once a letter has been approved.
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

func (s *Service) Create(ctx context.Context, l *domain.Letter) error {
	l.Status = domain.StatusDraft
	l.Visibility = domain.LetterVisibilityPrivate
	if err := s.validator.Struct(l); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, l); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "letter_id", l.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Letter, error) {
	if id == "" {
		return nil, ErrIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListLettersFilter) ([]*domain.Letter, error) {
	return s.repo.Find(ctx, filter)
}

func (s *Service) Update(ctx context.Context, l *domain.Letter) error {
	if l.ID == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusDraft && existing.Status != domain.StatusRejected {
		return ErrNotEditable
	}

	l.Status = existing.Status
	l.OwnerID = existing.OwnerID
	l.Visibility = existing.Visibility
	if err := s.validator.Struct(l); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, l); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "letter_id", l.ID)
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
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"letter_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "letter_id", id)
		}
	}()

	return nil
}

// Publish makes an approved letter publicly visible.
func (s *Service) Publish(ctx context.Context, id string) error {
	return s.setVisibility(ctx, id, domain.LetterVisibilityPublished, AuditKeyPublish)
}

// Unpublish returns an approved letter to private visibility.
func (s *Service) Unpublish(ctx context.Context, id string) error {
	return s.setVisibility(ctx, id, domain.LetterVisibilityPrivate, AuditKeyUnpublish)
}

func (s *Service) setVisibility(ctx context.Context, id, visibility, auditKey string) error {
	if id == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusApproved {
		return ErrNotApproved
	}
	if existing.Visibility == visibility {
		return nil
	}

	if err := s.repo.UpdateVisibility(ctx, id, visibility); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, auditKey, map[string]interface{}{"letter_id": id, "visibility": visibility}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "letter_id", id)
		}
	}()

	return nil
}

func (s *Service) GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error) {
	l, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return l.Status, nil
}

func (s *Service) GetOwnerID(ctx context.Context, entityID string) (string, error) {
	l, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return l.OwnerID, nil
}

func (s *Service) SetStatus(ctx context.Context, entityID string, status domain.Status) error {
	if entityID == "" {
		return ErrIDEmptyParam
	}
	return s.repo.UpdateStatus(ctx, entityID, status)
}

// AllowsResubmission always returns false. Issued letter numbers are final;
// a correction means a new letter with a new number.
func (s *Service) AllowsResubmission() bool {
	return false
}
