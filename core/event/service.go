package event

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate = "event.create"
	AuditKeyUpdate = "event.update"
	AuditKeyDelete = "event.delete"
)

var (
	ErrIDEmptyParam  = errors.New("event id is required")
	ErrNotFound      = errors.New("event not found")
	ErrNotEditable   = errors.New("event can only be edited while in draft or rejected status")
	ErrPendingDelete = errors.New("event cannot be deleted while an approval is pending")
	ErrInvalidPeriod = errors.New("event end time must be after start time")
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Find(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
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

func (s *Service) Create(ctx context.Context, e *domain.Event) error {
	e.Status = domain.StatusDraft
	if err := s.validator.Struct(e); err != nil {
		return err
	}
	if !e.EndTime.After(e.StartTime) {
		return ErrInvalidPeriod
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, e); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "event_id", e.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, ErrIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error) {
	return s.repo.Find(ctx, filter)
}

func (s *Service) Update(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusDraft && existing.Status != domain.StatusRejected {
		return ErrNotEditable
	}

	e.Status = existing.Status
	e.OwnerID = existing.OwnerID
	if err := s.validator.Struct(e); err != nil {
		return err
	}
	if !e.EndTime.After(e.StartTime) {
		return ErrInvalidPeriod
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, e); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "event_id", e.ID)
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
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"event_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "event_id", id)
		}
	}()

	return nil
}

func (s *Service) GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error) {
	e, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return e.Status, nil
}

func (s *Service) GetOwnerID(ctx context.Context, entityID string) (string, error) {
	e, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return e.OwnerID, nil
}

func (s *Service) SetStatus(ctx context.Context, entityID string, status domain.Status) error {
	if entityID == "" {
		return ErrIDEmptyParam
	}
	return s.repo.UpdateStatus(ctx, entityID, status)
}

// AllowsResubmission always returns false; a held event has to be recreated
// for a new schedule rather than edited after approval.
func (s *Service) AllowsResubmission() bool {
	return false
}
