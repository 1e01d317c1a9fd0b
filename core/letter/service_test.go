package letter_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/humanika/backoffice/core/letter"
	"github.com/humanika/backoffice/core/letter/mocks"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockAuditLogger *mocks.AuditLogger
	service         *letter.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepo = &mocks.Repository{}
	s.mockAuditLogger = &mocks.AuditLogger{}
	s.service = letter.NewService(letter.ServiceDeps{
		Repository:  s.mockRepo,
		Validator:   validator.New(),
		Logger:      log.NewNoop(),
		AuditLogger: s.mockAuditLogger,
	})

	s.mockAuditLogger.EXPECT().
		Log(mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Maybe()
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func validLetter() *domain.Letter {
	return &domain.Letter{
		Number:     "001/HMK/IX/2024",
		Subject:    "Invitation to the annual congress",
		Direction:  domain.LetterDirectionOutgoing,
		Recipient:  "Faculty of Engineering",
		OwnerID:    uuid.New().String(),
		LetterDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ServiceTestSuite) TestCreate() {
	s.Run("should create a private draft letter", func() {
		s.SetupTest()
		l := validLetter()
		l.Status = domain.StatusApproved
		l.Visibility = domain.LetterVisibilityPublished // callers cannot pre-publish
		s.mockRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(created *domain.Letter) bool {
				return created.Status == domain.StatusDraft &&
					created.Visibility == domain.LetterVisibilityPrivate
			})).
			Return(nil)

		s.NoError(s.service.Create(context.Background(), l))
	})

	s.Run("should reject an invalid direction", func() {
		s.SetupTest()
		l := validLetter()
		l.Direction = "internal"

		err := s.service.Create(context.Background(), l)

		var validationErrs validator.ValidationErrors
		s.ErrorAs(err, &validationErrs)
		s.mockRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestPublish() {
	letterID := uuid.New().String()

	s.Run("should publish an approved letter", func() {
		s.SetupTest()
		existing := validLetter()
		existing.ID = letterID
		existing.Status = domain.StatusApproved
		existing.Visibility = domain.LetterVisibilityPrivate
		s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil)
		s.mockRepo.EXPECT().UpdateVisibility(mock.Anything, letterID, domain.LetterVisibilityPublished).Return(nil)

		s.NoError(s.service.Publish(context.Background(), letterID))
	})

	s.Run("should refuse to publish a letter that is not approved", func() {
		s.SetupTest()
		for _, status := range []domain.Status{
			domain.StatusDraft,
			domain.StatusPending,
			domain.StatusRejected,
			domain.StatusArchived,
		} {
			existing := validLetter()
			existing.ID = letterID
			existing.Status = status
			existing.Visibility = domain.LetterVisibilityPrivate
			s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil).Once()

			s.ErrorIs(s.service.Publish(context.Background(), letterID), letter.ErrNotApproved)
		}
		s.mockRepo.AssertNotCalled(s.T(), "UpdateVisibility", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should be a no-op when already published", func() {
		s.SetupTest()
		existing := validLetter()
		existing.ID = letterID
		existing.Status = domain.StatusApproved
		existing.Visibility = domain.LetterVisibilityPublished
		s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil)

		s.NoError(s.service.Publish(context.Background(), letterID))
		s.mockRepo.AssertNotCalled(s.T(), "UpdateVisibility", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestUnpublish() {
	letterID := uuid.New().String()

	s.Run("should return a published letter to private", func() {
		s.SetupTest()
		existing := validLetter()
		existing.ID = letterID
		existing.Status = domain.StatusApproved
		existing.Visibility = domain.LetterVisibilityPublished
		s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil)
		s.mockRepo.EXPECT().UpdateVisibility(mock.Anything, letterID, domain.LetterVisibilityPrivate).Return(nil)

		s.NoError(s.service.Unpublish(context.Background(), letterID))
	})

	s.Run("should require an id", func() {
		s.SetupTest()
		s.ErrorIs(s.service.Unpublish(context.Background(), ""), letter.ErrIDEmptyParam)
	})
}

func (s *ServiceTestSuite) TestUpdate() {
	letterID := uuid.New().String()

	s.Run("should keep visibility when updating a draft", func() {
		s.SetupTest()
		existing := validLetter()
		existing.ID = letterID
		existing.Status = domain.StatusDraft
		existing.Visibility = domain.LetterVisibilityPrivate
		s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil)
		s.mockRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(updated *domain.Letter) bool {
				return updated.Visibility == domain.LetterVisibilityPrivate &&
					updated.OwnerID == existing.OwnerID
			})).
			Return(nil)

		updated := validLetter()
		updated.ID = letterID
		updated.Subject = "Revised invitation"
		updated.Visibility = domain.LetterVisibilityPublished

		s.NoError(s.service.Update(context.Background(), updated))
	})

	s.Run("should refuse to edit a pending letter", func() {
		s.SetupTest()
		existing := validLetter()
		existing.ID = letterID
		existing.Status = domain.StatusPending
		s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil)

		updated := validLetter()
		updated.ID = letterID

		s.ErrorIs(s.service.Update(context.Background(), updated), letter.ErrNotEditable)
	})
}

func (s *ServiceTestSuite) TestDelete() {
	letterID := uuid.New().String()

	s.Run("should refuse to delete while an approval is pending", func() {
		s.SetupTest()
		existing := validLetter()
		existing.ID = letterID
		existing.Status = domain.StatusPending
		s.mockRepo.EXPECT().GetByID(mock.Anything, letterID).Return(existing, nil)

		s.ErrorIs(s.service.Delete(context.Background(), letterID), letter.ErrPendingDelete)
	})
}

func (s *ServiceTestSuite) TestWorkflowAdapter() {
	s.Run("should not allow resubmission after approval", func() {
		s.SetupTest()
		s.False(s.service.AllowsResubmission())
	})

	s.Run("should write status changes straight through", func() {
		s.SetupTest()
		letterID := uuid.New().String()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, letterID, domain.StatusArchived).Return(nil)

		s.NoError(s.service.SetStatus(context.Background(), letterID, domain.StatusArchived))
	})
}
