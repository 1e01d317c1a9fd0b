package finance

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate = "finance.create"
	AuditKeyUpdate = "finance.update"
	AuditKeyDelete = "finance.delete"
)

var (
	ErrIDEmptyParam  = errors.New("transaction id is required")
	ErrNotFound      = errors.New("finance transaction not found")
	ErrNotEditable   = errors.New("transaction can only be edited while in draft or rejected status")
	ErrPendingDelete = errors.New("transaction cannot be deleted while an approval is pending")
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, t *domain.FinanceTransaction) error
	GetByID(ctx context.Context, id string) (*domain.FinanceTransaction, error)
	Find(ctx context.Context, filter *domain.ListFinanceTransactionsFilter) ([]*domain.FinanceTransaction, error)
	Update(ctx context.Context, t *domain.FinanceTransaction) error
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

func (s *Service) Create(ctx context.Context, t *domain.FinanceTransaction) error {
	t.Status = domain.StatusDraft
	if err := s.validator.Struct(t); err != nil {
		return err
	}
	if err := t.ValidateType(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, t); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "transaction_id", t.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.FinanceTransaction, error) {
	if id == "" {
		return nil, ErrIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListFinanceTransactionsFilter) ([]*domain.FinanceTransaction, error) {
	return s.repo.Find(ctx, filter)
}

func (s *Service) Update(ctx context.Context, t *domain.FinanceTransaction) error {
	if t.ID == "" {
		return ErrIDEmptyParam
	}

	existing, err := s.repo.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if existing.Status != domain.StatusDraft && existing.Status != domain.StatusRejected {
		return ErrNotEditable
	}

	t.Status = existing.Status
	t.OwnerID = existing.OwnerID
	if err := s.validator.Struct(t); err != nil {
		return err
	}
	if err := t.ValidateType(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, t); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "transaction_id", t.ID)
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
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"transaction_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "transaction_id", id)
		}
	}()

	return nil
}

func (s *Service) GetCurrentStatus(ctx context.Context, entityID string) (domain.Status, error) {
	t, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return t.Status, nil
}

func (s *Service) GetOwnerID(ctx context.Context, entityID string) (string, error) {
	t, err := s.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return t.OwnerID, nil
}

func (s *Service) SetStatus(ctx context.Context, entityID string, status domain.Status) error {
	if entityID == "" {
		return ErrIDEmptyParam
	}
	return s.repo.UpdateStatus(ctx, entityID, status)
}

// AllowsResubmission always returns false. Approved cash movements are part
// of the bookkeeping trail; corrections go through a new transaction.
func (s *Service) AllowsResubmission() bool {
	return false
}
