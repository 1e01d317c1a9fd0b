package approval_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/core/approval/mocks"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockAuditLogger *mocks.AuditLogger
	service         *approval.Service
	now             time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepo = &mocks.Repository{}
	s.mockAuditLogger = &mocks.AuditLogger{}
	s.service = approval.NewService(approval.ServiceDeps{
		Repository:  s.mockRepo,
		Logger:      log.NewNoop(),
		AuditLogger: s.mockAuditLogger,
	})
	s.now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s.service.TimeNow = func() time.Time { return s.now }

	// audit runs async; never fail a test on it
	s.mockAuditLogger.EXPECT().
		Log(mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Maybe()
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestCreate() {
	entityID := uuid.New().String()

	s.Run("should create a pending record", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(record *domain.ApprovalRecord) bool {
				return record.EntityType == domain.EntityTypeEvent &&
					record.EntityID == entityID &&
					record.Decision == domain.DecisionPending
			})).
			Return(nil)

		record, err := s.service.Create(context.Background(), domain.EntityTypeEvent, entityID)

		s.NoError(err)
		s.Equal(domain.DecisionPending, record.Decision)
		s.Nil(record.ReviewerID)
	})

	s.Run("should surface duplicate pending from the store", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ApprovalRecord")).
			Return(approval.ErrDuplicatePending)

		record, err := s.service.Create(context.Background(), domain.EntityTypeEvent, entityID)

		s.ErrorIs(err, approval.ErrDuplicatePending)
		s.Nil(record)
	})

	s.Run("should reject an unknown entity type", func() {
		s.SetupTest()
		_, err := s.service.Create(context.Background(), domain.EntityType("invoice"), entityID)
		s.ErrorIs(err, approval.ErrInvalidEntityType)
	})

	s.Run("should reject an empty entity id", func() {
		s.SetupTest()
		_, err := s.service.Create(context.Background(), domain.EntityTypeEvent, "")
		s.ErrorIs(err, approval.ErrEntityIDEmptyParam)
	})
}

func (s *ServiceTestSuite) TestResolve() {
	recordID := uuid.New().String()
	reviewerID := uuid.New().String()

	pendingRecord := func() *domain.ApprovalRecord {
		return &domain.ApprovalRecord{
			ID:         recordID,
			EntityType: domain.EntityTypeDocument,
			EntityID:   uuid.New().String(),
			Decision:   domain.DecisionPending,
		}
	}

	s.Run("should approve without a note", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, recordID).Return(pendingRecord(), nil)
		s.mockRepo.EXPECT().
			UpdateResolution(mock.Anything, mock.MatchedBy(func(record *domain.ApprovalRecord) bool {
				return record.Decision == domain.DecisionApproved &&
					record.ReviewerID != nil && *record.ReviewerID == reviewerID &&
					record.UpdatedAt.Equal(s.now)
			})).
			Return(nil)

		record, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionApproved, "")

		s.NoError(err)
		s.Equal(domain.DecisionApproved, record.Decision)
	})

	s.Run("should store the note on a rejection", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, recordID).Return(pendingRecord(), nil)
		s.mockRepo.EXPECT().
			UpdateResolution(mock.Anything, mock.MatchedBy(func(record *domain.ApprovalRecord) bool {
				return record.Decision == domain.DecisionRejected && record.Note == "missing budget breakdown"
			})).
			Return(nil)

		record, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionRejected, "missing budget breakdown")

		s.NoError(err)
		s.Equal(domain.DecisionRejected, record.Decision)
		s.Equal("missing budget breakdown", record.Note)
	})

	s.Run("should require a note when rejecting", func() {
		s.SetupTest()
		_, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionRejected, "")
		s.ErrorIs(err, approval.ErrNoteRequired)
		s.mockRepo.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
	})

	s.Run("should require a note when requesting revision", func() {
		s.SetupTest()
		_, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionRevision, "")
		s.ErrorIs(err, approval.ErrNoteRequired)
	})

	s.Run("should refuse to resolve a record twice", func() {
		s.SetupTest()
		resolved := pendingRecord()
		resolved.Approve(uuid.New().String())
		s.mockRepo.EXPECT().GetByID(mock.Anything, recordID).Return(resolved, nil)

		_, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionRejected, "too late")

		s.ErrorIs(err, approval.ErrAlreadyResolved)
		s.mockRepo.AssertNotCalled(s.T(), "UpdateResolution", mock.Anything, mock.Anything)
	})

	s.Run("should surface a concurrent resolution from the store", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, recordID).Return(pendingRecord(), nil)
		s.mockRepo.EXPECT().
			UpdateResolution(mock.Anything, mock.AnythingOfType("*domain.ApprovalRecord")).
			Return(approval.ErrAlreadyResolved)

		_, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionApproved, "")

		s.ErrorIs(err, approval.ErrAlreadyResolved)
	})

	s.Run("should reject pending as a resolution decision", func() {
		s.SetupTest()
		_, err := s.service.Resolve(context.Background(), recordID, reviewerID, domain.DecisionPending, "")
		s.ErrorIs(err, approval.ErrInvalidDecision)
	})

	s.Run("should require a reviewer id", func() {
		s.SetupTest()
		_, err := s.service.Resolve(context.Background(), recordID, "", domain.DecisionApproved, "")
		s.ErrorIs(err, approval.ErrEmptyReviewer)
	})
}

func (s *ServiceTestSuite) TestListByEntity() {
	entityID := uuid.New().String()

	s.Run("should list history in chronological order", func() {
		s.SetupTest()
		expected := []*domain.ApprovalRecord{
			{ID: uuid.New().String(), Decision: domain.DecisionRejected},
			{ID: uuid.New().String(), Decision: domain.DecisionApproved},
		}
		s.mockRepo.EXPECT().
			List(mock.Anything, &domain.ListApprovalRecordsFilter{
				EntityType: string(domain.EntityTypeArticle),
				EntityID:   entityID,
				OrderBy:    []string{"created_at"},
			}).
			Return(expected, nil)

		records, err := s.service.ListByEntity(context.Background(), domain.EntityTypeArticle, entityID)

		s.NoError(err)
		s.Equal(expected, records)
	})

	s.Run("should reject an unknown entity type", func() {
		s.SetupTest()
		_, err := s.service.ListByEntity(context.Background(), domain.EntityType("invoice"), entityID)
		s.ErrorIs(err, approval.ErrInvalidEntityType)
	})
}
