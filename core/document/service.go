package document

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate = "document.create"
	AuditKeyUpdate = "document.update"
	AuditKeyDelete = "document.delete"
)

var (
	ErrIDEmptyParam  = errors.New("document id is required")
	ErrNotFound      = errors.New("document not found")
	ErrNotEditable   = errors.New("document can only be edited while in draft or rejected status")
	ErrPendingDelete = errors.New("document cannot be deleted while an approval is pending")
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Find(ctx context.Context, filter *domain.ListDocumentsFilter) ([]*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
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

func (s *Service) Create(ctx context.Context, d *domain.Document) error {
	d.Status = domain.StatusDraft
	if err := s.validator.Struct(d); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, d); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "document_id", d.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, ErrIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListDocumentsFilter) ([]*domain.Document, error) {
	return s.repo.Find(ctx, filter)
}

func (s *Service) Update(ctx context.Context, d *domain.Document) error {
	if d.ID == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusDraft && existing.Status != domain.StatusRejected {
		return ErrNotEditable
	}

	d.Status = existing.Status
	d.OwnerID = existing.OwnerID
	if err := s.validator.Struct(d); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, d); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "document_id", d.ID)
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
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"document_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "document_id", id)
		}
	}()

	return nil
}

func (s *Service) GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error) {
	d, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return d.Status, nil
}

func (s *Service) GetOwnerID(ctx context.Context, entityID string) (string, error) {
	d, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return d.OwnerID, nil
}

func (s *Service) SetStatus(ctx context.Context, entityID string, status domain.Status) error {
	if entityID == "" {
		return ErrIDEmptyParam
	}
	return s.repo.UpdateStatus(ctx, entityID, status)
}

func (s *Service) AllowsResubmission() bool {
	return false
}
