package user

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate = "user.create"
	AuditKeyUpdate = "user.update"
	AuditKeyDelete = "user.delete"
)

var (
	ErrUserIDEmptyParam = errors.New("user id is required")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateEmail   = errors.New("a user with this email already exists")
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Find(ctx context.Context, filter *domain.ListUsersFilter) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
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

func (s *Service) Create(ctx context.Context, u *domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleMember
	}
	if err := s.validator.Struct(u); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, u); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "user_id", u.ID)
		}
	}()

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, ErrUserIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Find(ctx context.Context, filter *domain.ListUsersFilter) ([]*domain.User, error) {
	return s.repo.Find(ctx, filter)
}

func (s *Service) Update(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		return ErrUserIDEmptyParam
	}
	if err := s.validator.Struct(u); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyUpdate, u); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "user_id", u.ID)
		}
	}()

	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrUserIDEmptyParam
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyDelete, map[string]interface{}{"user_id": id}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "user_id", id)
		}
	}()

	return nil
}
