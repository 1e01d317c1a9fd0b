package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres"
)

type ApprovalRecordRepositoryTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	repo *postgres.ApprovalRecordRepository
}

func (s *ApprovalRecordRepositoryTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)

	s.mock = mock
	s.repo = postgres.NewApprovalRecordRepository(gormDB)
}

func TestApprovalRecordRepository(t *testing.T) {
	suite.Run(t, new(ApprovalRecordRepositoryTestSuite))
}

func (s *ApprovalRecordRepositoryTestSuite) TestCreate() {
	entityID := uuid.New().String()

	s.Run("should insert a pending record and read back the generated id", func() {
		s.SetupTest()
		generatedID := uuid.New()
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "approval_records"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID.String()))
		s.mock.ExpectCommit()

		record := &domain.ApprovalRecord{
			EntityType: domain.EntityTypeWorkProgram,
			EntityID:   entityID,
			Decision:   domain.DecisionPending,
		}
		err := s.repo.Create(context.Background(), record)

		s.NoError(err)
		s.Equal(generatedID.String(), record.ID)
		s.NoError(s.mock.ExpectationsWereMet())
	})

	s.Run("should translate the partial unique index violation", func() {
		s.SetupTest()
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "approval_records"`)).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "unique_pending_approval_index",
			})
		s.mock.ExpectRollback()

		record := &domain.ApprovalRecord{
			EntityType: domain.EntityTypeWorkProgram,
			EntityID:   entityID,
			Decision:   domain.DecisionPending,
		}
		err := s.repo.Create(context.Background(), record)

		s.ErrorIs(err, approval.ErrDuplicatePending)
		s.NoError(s.mock.ExpectationsWereMet())
	})

	s.Run("should not translate unrelated unique violations", func() {
		s.SetupTest()
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "approval_records"`)).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "some_other_index",
			})
		s.mock.ExpectRollback()

		record := &domain.ApprovalRecord{
			EntityType: domain.EntityTypeWorkProgram,
			EntityID:   entityID,
			Decision:   domain.DecisionPending,
		}
		err := s.repo.Create(context.Background(), record)

		s.Error(err)
		s.NotErrorIs(err, approval.ErrDuplicatePending)
	})
}

func (s *ApprovalRecordRepositoryTestSuite) TestFindPending() {
	entityID := uuid.New().String()

	s.Run("should return the pending record", func() {
		s.SetupTest()
		recordID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "reviewer_id", "decision", "note", "created_at", "updated_at"}).
			AddRow(recordID.String(), "event", entityID, nil, "pending", "", time.Now(), time.Now())
		s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "approval_records"`)).
			WithArgs("event", entityID, "pending", 1).
			WillReturnRows(rows)

		record, err := s.repo.FindPending(context.Background(), domain.EntityTypeEvent, entityID)

		s.NoError(err)
		s.Equal(recordID.String(), record.ID)
		s.Equal(domain.DecisionPending, record.Decision)
		s.NoError(s.mock.ExpectationsWereMet())
	})

	s.Run("should map an empty result to record not found", func() {
		s.SetupTest()
		s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "approval_records"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		record, err := s.repo.FindPending(context.Background(), domain.EntityTypeEvent, entityID)

		s.ErrorIs(err, approval.ErrRecordNotFound)
		s.Nil(record)
	})
}

func (s *ApprovalRecordRepositoryTestSuite) TestGetByID() {
	s.Run("should treat a malformed id as not found without hitting the store", func() {
		s.SetupTest()
		record, err := s.repo.GetByID(context.Background(), "not-a-uuid")

		s.ErrorIs(err, approval.ErrRecordNotFound)
		s.Nil(record)
		s.NoError(s.mock.ExpectationsWereMet())
	})
}

func (s *ApprovalRecordRepositoryTestSuite) TestUpdateResolution() {
	reviewerID := uuid.New().String()

	resolvedRecord := func() *domain.ApprovalRecord {
		return &domain.ApprovalRecord{
			ID:         uuid.New().String(),
			EntityType: domain.EntityTypeDocument,
			EntityID:   uuid.New().String(),
			ReviewerID: &reviewerID,
			Decision:   domain.DecisionApproved,
			UpdatedAt:  time.Now(),
		}
	}

	s.Run("should close the pending record", func() {
		s.SetupTest()
		s.mock.ExpectBegin()
		s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "approval_records"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectCommit()

		err := s.repo.UpdateResolution(context.Background(), resolvedRecord())

		s.NoError(err)
		s.NoError(s.mock.ExpectationsWereMet())
	})

	s.Run("should report already resolved when the pending guard matches no rows", func() {
		s.SetupTest()
		s.mock.ExpectBegin()
		s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "approval_records"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		s.mock.ExpectCommit()

		err := s.repo.UpdateResolution(context.Background(), resolvedRecord())

		s.ErrorIs(err, approval.ErrAlreadyResolved)
	})
}
