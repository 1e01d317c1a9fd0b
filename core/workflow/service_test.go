package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/core/workflow/mocks"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockAdapter         *mocks.EntityAdapter
	mockApprovalService *mocks.ApprovalService
	mockAuthorizer      *mocks.Authorizer
	mockTransactor      *mocks.Transactor
	mockAuditLogger     *mocks.AuditLogger
	service             *workflow.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockAdapter = &mocks.EntityAdapter{}
	s.mockApprovalService = &mocks.ApprovalService{}
	s.mockAuthorizer = &mocks.Authorizer{}
	s.mockTransactor = &mocks.Transactor{}
	s.mockAuditLogger = &mocks.AuditLogger{}
	s.service = workflow.NewService(workflow.ServiceDeps{
		Adapters: map[domain.EntityType]workflow.EntityAdapter{
			domain.EntityTypeWorkProgram: s.mockAdapter,
		},
		ApprovalService: s.mockApprovalService,
		Authorizer:      s.mockAuthorizer,
		Transactor:      s.mockTransactor,
		Logger:          log.NewNoop(),
		AuditLogger:     s.mockAuditLogger,
	})

	// the engine runs its body inside one transaction; execute it directly
	s.mockTransactor.EXPECT().
		Within(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()
	s.mockAuditLogger.EXPECT().
		Log(mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Maybe()
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSubmit() {
	entityID := uuid.New().String()
	ownerID := uuid.New().String()

	s.Run("should create a pending approval and move the entity to pending", func() {
		s.SetupTest()
		expectedRecord := &domain.ApprovalRecord{
			ID:         uuid.New().String(),
			EntityType: domain.EntityTypeWorkProgram,
			EntityID:   entityID,
			Decision:   domain.DecisionPending,
		}
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusDraft, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)
		s.mockApprovalService.EXPECT().Create(mock.Anything, domain.EntityTypeWorkProgram, entityID).Return(expectedRecord, nil)
		s.mockAdapter.EXPECT().SetStatus(mock.Anything, entityID, domain.StatusPending).Return(nil)

		result, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, ownerID)

		s.NoError(err)
		s.Equal(domain.StatusPending, result.EntityStatus)
		s.Equal(expectedRecord, result.ApprovalRecord)
	})

	s.Run("should allow resubmission after rejection", func() {
		s.SetupTest()
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusRejected, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)
		s.mockApprovalService.EXPECT().Create(mock.Anything, domain.EntityTypeWorkProgram, entityID).
			Return(&domain.ApprovalRecord{Decision: domain.DecisionPending}, nil)
		s.mockAdapter.EXPECT().SetStatus(mock.Anything, entityID, domain.StatusPending).Return(nil)

		result, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, ownerID)

		s.NoError(err)
		s.Equal(domain.StatusPending, result.EntityStatus)
	})

	s.Run("should return not owner error when submitter does not own the entity", func() {
		s.SetupTest()
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusDraft, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)

		result, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, uuid.New().String())

		s.ErrorIs(err, workflow.ErrNotOwner)
		s.Nil(result)
		s.mockAdapter.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should return invalid transition error when the entity is already pending", func() {
		s.SetupTest()
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusPending, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)

		result, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, ownerID)

		var invalidTransition workflow.InvalidTransitionError
		s.ErrorAs(err, &invalidTransition)
		s.Equal(domain.StatusPending, invalidTransition.From)
		s.Nil(result)
	})

	s.Run("should return invalid transition error when submitting an archived entity", func() {
		s.SetupTest()
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusArchived, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)

		_, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, ownerID)

		var invalidTransition workflow.InvalidTransitionError
		s.ErrorAs(err, &invalidTransition)
	})

	s.Run("should reject resubmission of an approved entity when the adapter forbids it", func() {
		s.SetupTest()
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusApproved, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)
		s.mockAdapter.EXPECT().AllowsResubmission().Return(false)

		_, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, ownerID)

		var invalidTransition workflow.InvalidTransitionError
		s.ErrorAs(err, &invalidTransition)
		s.mockApprovalService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should propagate duplicate pending error without touching the entity", func() {
		s.SetupTest()
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusDraft, nil)
		s.mockAdapter.EXPECT().GetOwnerID(mock.Anything, entityID).Return(ownerID, nil)
		s.mockApprovalService.EXPECT().Create(mock.Anything, domain.EntityTypeWorkProgram, entityID).
			Return(nil, approval.ErrDuplicatePending)

		result, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, entityID, ownerID)

		s.ErrorIs(err, approval.ErrDuplicatePending)
		s.Nil(result)
		s.mockAdapter.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should return error for an unregistered entity type", func() {
		s.SetupTest()
		_, err := s.service.Submit(context.Background(), domain.EntityTypeFinance, entityID, ownerID)
		s.ErrorIs(err, workflow.ErrUnknownEntityType)
	})

	s.Run("should return error when entity id is empty", func() {
		s.SetupTest()
		_, err := s.service.Submit(context.Background(), domain.EntityTypeWorkProgram, "", ownerID)
		s.ErrorIs(err, workflow.ErrEntityIDEmptyParam)
	})
}

func (s *ServiceTestSuite) TestReview() {
	entityID := uuid.New().String()
	reviewerID := uuid.New().String()
	recordID := uuid.New().String()

	pendingRecord := func() *domain.ApprovalRecord {
		return &domain.ApprovalRecord{
			ID:         recordID,
			EntityType: domain.EntityTypeWorkProgram,
			EntityID:   entityID,
			Decision:   domain.DecisionPending,
		}
	}

	s.Run("should approve the entity", func() {
		s.SetupTest()
		resolved := pendingRecord()
		resolved.Decision = domain.DecisionApproved
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockApprovalService.EXPECT().FindPending(mock.Anything, domain.EntityTypeWorkProgram, entityID).Return(pendingRecord(), nil)
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusPending, nil)
		s.mockApprovalService.EXPECT().Resolve(mock.Anything, recordID, reviewerID, domain.DecisionApproved, "").Return(resolved, nil)
		s.mockAdapter.EXPECT().SetStatus(mock.Anything, entityID, domain.StatusApproved).Return(nil)

		result, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.DecisionApproved, "")

		s.NoError(err)
		s.Equal(domain.StatusApproved, result.EntityStatus)
		s.Equal(resolved, result.ApprovalRecord)
	})

	s.Run("should move the entity back to draft on a revision request", func() {
		s.SetupTest()
		resolved := pendingRecord()
		resolved.Decision = domain.DecisionRevision
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockApprovalService.EXPECT().FindPending(mock.Anything, domain.EntityTypeWorkProgram, entityID).Return(pendingRecord(), nil)
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusPending, nil)
		s.mockApprovalService.EXPECT().Resolve(mock.Anything, recordID, reviewerID, domain.DecisionRevision, "needs detail").Return(resolved, nil)
		s.mockAdapter.EXPECT().SetStatus(mock.Anything, entityID, domain.StatusDraft).Return(nil)

		result, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.DecisionRevision, "needs detail")

		s.NoError(err)
		s.Equal(domain.StatusDraft, result.EntityStatus)
	})

	s.Run("should return unauthorized error for a non-reviewer", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(false, nil)

		_, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.DecisionApproved, "")

		s.ErrorIs(err, workflow.ErrUnauthorizedReviewer)
	})

	s.Run("should return no pending approval error when nothing is pending", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockApprovalService.EXPECT().FindPending(mock.Anything, domain.EntityTypeWorkProgram, entityID).
			Return(nil, approval.ErrRecordNotFound)

		_, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.DecisionApproved, "")

		s.ErrorIs(err, workflow.ErrNoPendingApproval)
		s.mockAdapter.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should not mutate anything when the note is missing on a rejection", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockApprovalService.EXPECT().FindPending(mock.Anything, domain.EntityTypeWorkProgram, entityID).Return(pendingRecord(), nil)
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusPending, nil)
		s.mockApprovalService.EXPECT().Resolve(mock.Anything, recordID, reviewerID, domain.DecisionRejected, "").
			Return(nil, approval.ErrNoteRequired)

		_, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.DecisionRejected, "")

		s.ErrorIs(err, approval.ErrNoteRequired)
		s.mockAdapter.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should return invalid decision error for an unknown decision", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(true, nil)

		_, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.Decision("maybe"), "")

		s.ErrorIs(err, approval.ErrInvalidDecision)
	})

	s.Run("should propagate already resolved error from a concurrent review", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanReview(mock.Anything, reviewerID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockApprovalService.EXPECT().FindPending(mock.Anything, domain.EntityTypeWorkProgram, entityID).Return(pendingRecord(), nil)
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusPending, nil)
		s.mockApprovalService.EXPECT().Resolve(mock.Anything, recordID, reviewerID, domain.DecisionApproved, "").
			Return(nil, approval.ErrAlreadyResolved)

		_, err := s.service.Review(context.Background(), domain.EntityTypeWorkProgram, entityID, reviewerID, domain.DecisionApproved, "")

		s.ErrorIs(err, approval.ErrAlreadyResolved)
		s.mockAdapter.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestArchive() {
	entityID := uuid.New().String()
	adminID := uuid.New().String()

	s.Run("should archive an approved entity", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanArchive(mock.Anything, adminID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusApproved, nil)
		s.mockAdapter.EXPECT().SetStatus(mock.Anything, entityID, domain.StatusArchived).Return(nil)

		result, err := s.service.Archive(context.Background(), domain.EntityTypeWorkProgram, entityID, adminID)

		s.NoError(err)
		s.Equal(domain.StatusArchived, result.EntityStatus)
	})

	s.Run("should refuse to archive a pending entity", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanArchive(mock.Anything, adminID, domain.EntityTypeWorkProgram).Return(true, nil)
		s.mockAdapter.EXPECT().GetCurrentStatus(mock.Anything, entityID).Return(domain.StatusPending, nil)

		_, err := s.service.Archive(context.Background(), domain.EntityTypeWorkProgram, entityID, adminID)

		var invalidTransition workflow.InvalidTransitionError
		s.ErrorAs(err, &invalidTransition)
		s.Equal(domain.StatusPending, invalidTransition.From)
		s.Equal(domain.StatusArchived, invalidTransition.To)
		s.mockAdapter.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should return unauthorized error for a non-admin", func() {
		s.SetupTest()
		s.mockAuthorizer.EXPECT().CanArchive(mock.Anything, adminID, domain.EntityTypeWorkProgram).Return(false, nil)

		_, err := s.service.Archive(context.Background(), domain.EntityTypeWorkProgram, entityID, adminID)

		s.ErrorIs(err, workflow.ErrUnauthorizedArchiver)
	})

	s.Run("should propagate authorizer failures", func() {
		s.SetupTest()
		expectedError := errors.New("user lookup failed")
		s.mockAuthorizer.EXPECT().CanArchive(mock.Anything, adminID, domain.EntityTypeWorkProgram).Return(false, expectedError)

		_, err := s.service.Archive(context.Background(), domain.EntityTypeWorkProgram, entityID, adminID)

		s.ErrorIs(err, expectedError)
	})
}
