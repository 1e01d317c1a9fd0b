package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeyCreate  = "approval.create"
	AuditKeyResolve = "approval.resolve"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(ctx context.Context, record *domain.ApprovalRecord) error
	GetByID(ctx context.Context, id string) (*domain.ApprovalRecord, error)
	FindPending(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.ApprovalRecord, error)
	UpdateResolution(ctx context.Context, record *domain.ApprovalRecord) error
	List(ctx context.Context, filter *domain.ListApprovalRecordsFilter) ([]*domain.ApprovalRecord, error)
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// Service manages approval records. It never touches the owning entity's
// status; keeping the two consistent is the workflow engine's job.
type Service struct {
	repo        repository
	logger      log.Logger
	auditLogger auditLogger

	TimeNow func() time.Time
}

type ServiceDeps struct {
	Repository  repository
	Logger      log.Logger
	AuditLogger auditLogger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:        deps.Repository,
		logger:      deps.Logger,
		auditLogger: deps.AuditLogger,
		TimeNow:     time.Now,
	}
}

// Create opens a new pending approval record for the given entity. At most
// one pending record may exist per entity at a time; a second create returns
// ErrDuplicatePending.
func (s *Service) Create(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.ApprovalRecord, error) {
	if !entityType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
	}
	if entityID == "" {
		return nil, ErrEntityIDEmptyParam
	}

	record := &domain.ApprovalRecord{
		EntityType: entityType,
		EntityID:   entityID,
		Decision:   domain.DecisionPending,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyCreate, record); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "record_id", record.ID)
		}
	}()

	return record, nil
}

// Resolve closes a pending approval record with the reviewer's decision.
func (s *Service) Resolve(ctx context.Context, recordID, reviewerID string, decision domain.Decision, note string) (*domain.ApprovalRecord, error) {
	if recordID == "" {
		return nil, ErrRecordIDEmptyParam
	}
	if reviewerID == "" {
		return nil, ErrEmptyReviewer
	}
	if !decision.IsResolution() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	if decision.RequiresNote() && note == "" {
		return nil, ErrNoteRequired
	}

	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("getting approval record: %w", err)
	}
	if record.IsResolved() {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyResolved, recordID)
	}

	switch decision {
	case domain.DecisionApproved:
		record.Approve(reviewerID)
		record.Note = note
	case domain.DecisionRejected:
		record.Reject(reviewerID, note)
	case domain.DecisionRevision:
		record.RequestRevision(reviewerID, note)
	}
	record.UpdatedAt = s.TimeNow()

	if err := s.repo.UpdateResolution(ctx, record); err != nil {
		return nil, err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyResolve, record); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "record_id", record.ID)
		}
	}()

	return record, nil
}

// FindPending returns the unresolved record for the entity, if any.
func (s *Service) FindPending(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.ApprovalRecord, error) {
	if !entityType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
	}
	if entityID == "" {
		return nil, ErrEntityIDEmptyParam
	}

	return s.repo.FindPending(ctx, entityType, entityID)
}

// ListByEntity returns the full decision history for an entity in
// chronological order.
func (s *Service) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.ApprovalRecord, error) {
	if !entityType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
	}
	if entityID == "" {
		return nil, ErrEntityIDEmptyParam
	}

	return s.repo.List(ctx, &domain.ListApprovalRecordsFilter{
		EntityType: string(entityType),
		EntityID:   entityID,
		OrderBy:    []string{"created_at"},
	})
}

// List returns approval records matching the filter.
func (s *Service) List(ctx context.Context, filter *domain.ListApprovalRecordsFilter) ([]*domain.ApprovalRecord, error) {
	return s.repo.List(ctx, filter)
}
