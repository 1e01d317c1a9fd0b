package workprogram_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/humanika/backoffice/core/workprogram"
	"github.com/humanika/backoffice/core/workprogram/mocks"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockAuditLogger *mocks.AuditLogger
	service         *workprogram.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepo = &mocks.Repository{}
	s.mockAuditLogger = &mocks.AuditLogger{}
	s.service = workprogram.NewService(workprogram.ServiceDeps{
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

func validWorkProgram() *domain.WorkProgram {
	return &domain.WorkProgram{
		Name:     "Mentorship Bootcamp",
		Division: "education",
		Period:   "2024",
		Budget:   1500000,
		OwnerID:  uuid.New().String(),
	}
}

func (s *ServiceTestSuite) TestCreate() {
	s.Run("should create a work program in draft status", func() {
		s.SetupTest()
		wp := validWorkProgram()
		wp.Status = domain.StatusApproved // callers cannot pick a status
		s.mockRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(created *domain.WorkProgram) bool {
				return created.Status == domain.StatusDraft
			})).
			Return(nil)

		err := s.service.Create(context.Background(), wp)

		s.NoError(err)
		s.Equal(domain.StatusDraft, wp.Status)
	})

	s.Run("should reject a work program without a name", func() {
		s.SetupTest()
		wp := validWorkProgram()
		wp.Name = ""

		err := s.service.Create(context.Background(), wp)

		s.Error(err)
		var validationErrs validator.ValidationErrors
		s.ErrorAs(err, &validationErrs)
		s.mockRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("should reject a negative budget", func() {
		s.SetupTest()
		wp := validWorkProgram()
		wp.Budget = -500

		err := s.service.Create(context.Background(), wp)

		var validationErrs validator.ValidationErrors
		s.ErrorAs(err, &validationErrs)
	})
}

func (s *ServiceTestSuite) TestUpdate() {
	wpID := uuid.New().String()

	s.Run("should update a draft work program", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusDraft
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)
		s.mockRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.WorkProgram")).Return(nil)

		updated := validWorkProgram()
		updated.ID = wpID
		updated.Name = "Mentorship Bootcamp v2"

		err := s.service.Update(context.Background(), updated)

		s.NoError(err)
		s.Equal(existing.OwnerID, updated.OwnerID)
	})

	s.Run("should update a rejected work program", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusRejected
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)
		s.mockRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.WorkProgram")).Return(nil)

		updated := validWorkProgram()
		updated.ID = wpID

		s.NoError(s.service.Update(context.Background(), updated))
	})

	s.Run("should refuse to edit a pending work program", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusPending
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)

		updated := validWorkProgram()
		updated.ID = wpID

		err := s.service.Update(context.Background(), updated)

		s.ErrorIs(err, workprogram.ErrNotEditable)
		s.mockRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("should refuse to edit an approved work program", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusApproved
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)

		updated := validWorkProgram()
		updated.ID = wpID

		s.ErrorIs(s.service.Update(context.Background(), updated), workprogram.ErrNotEditable)
	})

	s.Run("should require an id", func() {
		s.SetupTest()
		err := s.service.Update(context.Background(), validWorkProgram())
		s.ErrorIs(err, workprogram.ErrIDEmptyParam)
	})
}

func (s *ServiceTestSuite) TestDelete() {
	wpID := uuid.New().String()

	s.Run("should delete a draft work program", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusDraft
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)
		s.mockRepo.EXPECT().Delete(mock.Anything, wpID).Return(nil)

		s.NoError(s.service.Delete(context.Background(), wpID))
	})

	s.Run("should refuse to delete while an approval is pending", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusPending
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)

		err := s.service.Delete(context.Background(), wpID)

		s.ErrorIs(err, workprogram.ErrPendingDelete)
		s.mockRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	})

	s.Run("should propagate not found", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(nil, workprogram.ErrNotFound)

		s.ErrorIs(s.service.Delete(context.Background(), wpID), workprogram.ErrNotFound)
	})
}

func (s *ServiceTestSuite) TestWorkflowAdapter() {
	wpID := uuid.New().String()

	s.Run("should expose the current status", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		existing.Status = domain.StatusPending
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)

		status, err := s.service.GetCurrentStatus(context.Background(), wpID)

		s.NoError(err)
		s.Equal(domain.StatusPending, status)
	})

	s.Run("should expose the owner", func() {
		s.SetupTest()
		existing := validWorkProgram()
		existing.ID = wpID
		s.mockRepo.EXPECT().GetByID(mock.Anything, wpID).Return(existing, nil)

		owner, err := s.service.GetOwnerID(context.Background(), wpID)

		s.NoError(err)
		s.Equal(existing.OwnerID, owner)
	})

	s.Run("should write status changes straight through", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, wpID, domain.StatusApproved).Return(nil)

		s.NoError(s.service.SetStatus(context.Background(), wpID, domain.StatusApproved))
	})

	s.Run("should allow resubmission after approval", func() {
		s.SetupTest()
		s.True(s.service.AllowsResubmission())
	})
}
