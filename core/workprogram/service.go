package workprogram

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate = "workprogram.create"
	AuditKeyUpdate = "workprogram.update"
	AuditKeyDelete = "workprogram.delete"
)

var (
	ErrIDEmptyParam  = errors.New("work program id is required")
	ErrNotFound      = errors.New("work program not found")
	ErrNotEditable   = errors.New("work program can only be edited while in draft or rejected status")
	ErrPendingDelete = errors.New("work program cannot be deleted while an approval is pending")
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, wp *domain.WorkProgram) error
	GetByID(ctx context.Context, id string) (*domain.WorkProgram, error)
	Find(ctx context.Context, filter *domain.ListWorkProgramsFilter) ([]*domain.WorkProgram, error)
	Update(ctx context.Context, wp *domain.WorkProgram) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// Service handles work program CRUD and acts as the workflow engine's
// adapter for the work_program entity type. It carries no transition rules
// of its own.
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

// Create stores a new work program in draft status.
func (s *Service) Create(ctx context.Context, wp *domain.WorkProgram) error {
	wp.Status = domain.StatusDraft
	if err := s.validator.Struct(wp); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, wp); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, wp); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "work_program_id", wp.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.WorkProgram, error) {
	if id == "" {
		return nil, ErrIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListWorkProgramsFilter) ([]*domain.WorkProgram, error) {
	return s.repo.Find(ctx, filter)
}

// Update replaces the editable fields of a work program. Programs under
// review or already resolved are immutable until the workflow moves them
// back to draft.
func (s *Service) Update(ctx context.Context, wp *domain.WorkProgram) error {
	if wp.ID == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, wp.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusDraft && existing.Status != domain.StatusRejected {
		return ErrNotEditable
	}

	wp.Status = existing.Status
	wp.OwnerID = existing.OwnerID
	if err := s.validator.Struct(wp); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, wp); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, wp); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "work_program_id", wp.ID)
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
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"work_program_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "work_program_id", id)
		}
	}()

	return nil
}

// GetCurrentStatus implements the workflow adapter contract.
func (s *Service) GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error) {
	wp, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return wp.Status, nil
}

// GetOwnerID implements the workflow adapter contract.
func (s *Service) GetOwnerID(ctx context.Context, entityID string) (string, error) {
	wp, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return wp.OwnerID, nil
}

// SetStatus implements the workflow adapter contract.
func (s *Service) SetStatus(ctx context.Context, entityID string, status domain.Status) error {
	if entityID == "" {
		return ErrIDEmptyParam
	}
	return s.repo.UpdateStatus(ctx, entityID, status)
}

// AllowsResubmission implements the workflow adapter contract. Approved work
// programs may be revised and submitted again within the same period.
func (s *Service) AllowsResubmission() bool {
	return true
}
