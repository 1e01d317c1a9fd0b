package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

const (
	AuditKeySubmit  = "workflow.submit"
	AuditKeyReview  = "workflow.review"
	AuditKeyArchive = "workflow.archive"
)

//go:generate mockery --name=approvalService --exported --with-expecter
type approvalService interface {
	Create(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.ApprovalRecord, error)
	Resolve(ctx context.Context, recordID, reviewerID string, decision domain.Decision, note string) (*domain.ApprovalRecord, error)
	FindPending(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.ApprovalRecord, error)
}

//go:generate mockery --name=authorizer --exported --with-expecter
type authorizer interface {
	CanReview(ctx context.Context, actorID string, entityType domain.EntityType) (bool, error)
	CanArchive(ctx context.Context, actorID string, entityType domain.EntityType) (bool, error)
}

//go:generate mockery --name=transactor --exported --with-expecter
type transactor interface {
	// Within runs fn inside one storage transaction. Writes made through the
	// context-aware repositories commit or roll back together.
	Within(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// Result is the outcome of a workflow operation.
type Result struct {
	EntityStatus   domain.Status          `json:"entity_status"`
	ApprovalRecord *domain.ApprovalRecord `json:"approval_record,omitempty"`
}

// Service is the workflow engine. It is the only component permitted to
// change an entity's status, and it does so by consulting the transition
// table and keeping the approval record store and the entity adapters
// consistent within a single transaction.
type Service struct {
	adapters        map[domain.EntityType]EntityAdapter
	approvalService approvalService
	authorizer      authorizer
	transactor      transactor

	logger      log.Logger
	auditLogger auditLogger

	TimeNow func() time.Time
}

type ServiceDeps struct {
	Adapters        map[domain.EntityType]EntityAdapter
	ApprovalService approvalService
	Authorizer      authorizer
	Transactor      transactor

	Logger      log.Logger
	AuditLogger auditLogger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		adapters:        deps.Adapters,
		approvalService: deps.ApprovalService,
		authorizer:      deps.Authorizer,
		transactor:      deps.Transactor,
		logger:          deps.Logger,
		auditLogger:     deps.AuditLogger,
		TimeNow:         time.Now,
	}
}

// Submit moves an entity into review. The entity's current status must allow
// a transition to pending, the submitter must own the entity, and no other
// approval may be pending. The approval record and the status update are
// written in one transaction.
func (s *Service) Submit(ctx context.Context, entityType domain.EntityType, entityID, submitterID string) (*Result, error) {
	adapter, err := s.adapter(entityType)
	if err != nil {
		return nil, err
	}
	if entityID == "" {
		return nil, ErrEntityIDEmptyParam
	}
	if submitterID == "" {
		return nil, ErrActorEmptyParam
	}

	var result *Result
	err = s.transactor.Within(ctx, func(ctx context.Context) error {
		current, err := adapter.GetCurrentStatus(ctx, entityID)
		if err != nil {
			return fmt.Errorf("getting current status: %w", err)
		}

		owner, err := adapter.GetOwnerID(ctx, entityID)
		if err != nil {
			return fmt.Errorf("getting entity owner: %w", err)
		}
		if owner != submitterID {
			return ErrNotOwner
		}

		if !current.CanTransitionTo(domain.StatusPending) {
			return InvalidTransitionError{From: current, To: domain.StatusPending}
		}
		if current == domain.StatusApproved && !adapter.AllowsResubmission() {
			return InvalidTransitionError{From: current, To: domain.StatusPending}
		}

		record, err := s.approvalService.Create(ctx, entityType, entityID)
		if err != nil {
			return err
		}

		if err := adapter.SetStatus(ctx, entityID, domain.StatusPending); err != nil {
			return fmt.Errorf("updating entity status: %w", err)
		}

		result = &Result{EntityStatus: domain.StatusPending, ApprovalRecord: record}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "entity submitted for approval", "entity_type", entityType, "entity_id", entityID, "submitter", submitterID)
	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeySubmit, map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityID,
			"submitter":   submitterID,
		}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "entity_id", entityID)
		}
	}()

	return result, nil
}

// Review resolves the pending approval for an entity and synchronizes the
// entity's status with the reviewer's decision.
func (s *Service) Review(ctx context.Context, entityType domain.EntityType, entityID, reviewerID string, decision domain.Decision, note string) (*Result, error) {
	adapter, err := s.adapter(entityType)
	if err != nil {
		return nil, err
	}
	if entityID == "" {
		return nil, ErrEntityIDEmptyParam
	}
	if reviewerID == "" {
		return nil, ErrActorEmptyParam
	}

	allowed, err := s.authorizer.CanReview(ctx, reviewerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("checking reviewer authorization: %w", err)
	}
	if !allowed {
		return nil, ErrUnauthorizedReviewer
	}

	newStatus, err := statusForDecision(decision)
	if err != nil {
		return nil, err
	}

	var result *Result
	err = s.transactor.Within(ctx, func(ctx context.Context) error {
		pending, err := s.approvalService.FindPending(ctx, entityType, entityID)
		if err != nil {
			if errors.Is(err, approval.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s %q", ErrNoPendingApproval, entityType, entityID)
			}
			return fmt.Errorf("finding pending approval: %w", err)
		}

		current, err := adapter.GetCurrentStatus(ctx, entityID)
		if err != nil {
			return fmt.Errorf("getting current status: %w", err)
		}
		if current != domain.StatusPending {
			return InvalidTransitionError{From: current, To: newStatus}
		}

		record, err := s.approvalService.Resolve(ctx, pending.ID, reviewerID, decision, note)
		if err != nil {
			return err
		}

		if err := adapter.SetStatus(ctx, entityID, newStatus); err != nil {
			return fmt.Errorf("updating entity status: %w", err)
		}

		result = &Result{EntityStatus: newStatus, ApprovalRecord: record}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "approval resolved", "entity_type", entityType, "entity_id", entityID, "reviewer", reviewerID, "decision", decision)
	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyReview, map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityID,
			"reviewer":    reviewerID,
			"decision":    decision,
			"note":        note,
		}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "entity_id", entityID)
		}
	}()

	return result, nil
}

// Archive moves an approved entity into its terminal state.
func (s *Service) Archive(ctx context.Context, entityType domain.EntityType, entityID, actorID string) (*Result, error) {
	adapter, err := s.adapter(entityType)
	if err != nil {
		return nil, err
	}
	if entityID == "" {
		return nil, ErrEntityIDEmptyParam
	}
	if actorID == "" {
		return nil, ErrActorEmptyParam
	}

	allowed, err := s.authorizer.CanArchive(ctx, actorID, entityType)
	if err != nil {
		return nil, fmt.Errorf("checking archive authorization: %w", err)
	}
	if !allowed {
		return nil, ErrUnauthorizedArchiver
	}

	var result *Result
	err = s.transactor.Within(ctx, func(ctx context.Context) error {
		current, err := adapter.GetCurrentStatus(ctx, entityID)
		if err != nil {
			return fmt.Errorf("getting current status: %w", err)
		}
		if !current.CanTransitionTo(domain.StatusArchived) {
			return InvalidTransitionError{From: current, To: domain.StatusArchived}
		}

		if err := adapter.SetStatus(ctx, entityID, domain.StatusArchived); err != nil {
			return fmt.Errorf("updating entity status: %w", err)
		}

		result = &Result{EntityStatus: domain.StatusArchived}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "entity archived", "entity_type", entityType, "entity_id", entityID, "actor", actorID)
	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyArchive, map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityID,
			"actor":       actorID,
		}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "entity_id", entityID)
		}
	}()

	return result, nil
}

func (s *Service) adapter(entityType domain.EntityType) (EntityAdapter, error) {
	adapter, ok := s.adapters[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	return adapter, nil
}

// statusForDecision maps a resolution decision to the entity status it
// implies. A revision request sends the entity back to draft.
func statusForDecision(decision domain.Decision) (domain.Status, error) {
	switch decision {
	case domain.DecisionApproved:
		return domain.StatusApproved, nil
	case domain.DecisionRejected:
		return domain.StatusRejected, nil
	case domain.DecisionRevision:
		return domain.StatusDraft, nil
	default:
		return "", fmt.Errorf("%w: %q", approval.ErrInvalidDecision, decision)
	}
}
