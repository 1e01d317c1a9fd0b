package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanika/backoffice/api/handler"
	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type stubWorkflowService struct {
	submit  func(ctx context.Context, entityType domain.EntityType, entityID, submitterID string) (*workflow.Result, error)
	review  func(ctx context.Context, entityType domain.EntityType, entityID, reviewerID string, decision domain.Decision, note string) (*workflow.Result, error)
	archive func(ctx context.Context, entityType domain.EntityType, entityID, actorID string) (*workflow.Result, error)
}

func (s *stubWorkflowService) Submit(ctx context.Context, entityType domain.EntityType, entityID, submitterID string) (*workflow.Result, error) {
	return s.submit(ctx, entityType, entityID, submitterID)
}

func (s *stubWorkflowService) Review(ctx context.Context, entityType domain.EntityType, entityID, reviewerID string, decision domain.Decision, note string) (*workflow.Result, error) {
	return s.review(ctx, entityType, entityID, reviewerID, decision, note)
}

func (s *stubWorkflowService) Archive(ctx context.Context, entityType domain.EntityType, entityID, actorID string) (*workflow.Result, error) {
	return s.archive(ctx, entityType, entityID, actorID)
}

func newWorkflowRouter(svc *stubWorkflowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handler.ActorMiddleware(handler.DefaultActorHeaderKey))
	h := handler.NewHandler(handler.Deps{
		WorkflowService: svc,
		Logger:          log.NewNoop(),
	})
	h.RegisterRoutes(r)
	return r
}

func TestSubmitEntity(t *testing.T) {
	entityID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("should return the pending result", func(t *testing.T) {
		svc := &stubWorkflowService{
			submit: func(_ context.Context, entityType domain.EntityType, id, submitter string) (*workflow.Result, error) {
				assert.Equal(t, domain.EntityTypeWorkProgram, entityType)
				assert.Equal(t, entityID, id)
				assert.Equal(t, actorID, submitter)
				return &workflow.Result{EntityStatus: domain.StatusPending}, nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/work_program/"+entityID+"/submit", nil)
		req.Header.Set(handler.DefaultActorHeaderKey, actorID)
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var result workflow.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, domain.StatusPending, result.EntityStatus)
	})

	t.Run("should reject a request without an authenticated user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/work_program/"+entityID+"/submit", nil)
		w := httptest.NewRecorder()

		newWorkflowRouter(&stubWorkflowService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject an unknown entity type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/invoice/"+entityID+"/submit", nil)
		req.Header.Set(handler.DefaultActorHeaderKey, actorID)
		w := httptest.NewRecorder()

		newWorkflowRouter(&stubWorkflowService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map not owner to forbidden", func(t *testing.T) {
		svc := &stubWorkflowService{
			submit: func(context.Context, domain.EntityType, string, string) (*workflow.Result, error) {
				return nil, workflow.ErrNotOwner
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/work_program/"+entityID+"/submit", nil)
		req.Header.Set(handler.DefaultActorHeaderKey, actorID)
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("should map duplicate pending to conflict", func(t *testing.T) {
		svc := &stubWorkflowService{
			submit: func(context.Context, domain.EntityType, string, string) (*workflow.Result, error) {
				return nil, approval.ErrDuplicatePending
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/work_program/"+entityID+"/submit", nil)
		req.Header.Set(handler.DefaultActorHeaderKey, actorID)
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestReviewEntity(t *testing.T) {
	entityID := uuid.New().String()
	reviewerID := uuid.New().String()

	reviewReq := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/event/"+entityID+"/review", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(handler.DefaultActorHeaderKey, reviewerID)
		return req
	}

	t.Run("should pass the decision and note through", func(t *testing.T) {
		svc := &stubWorkflowService{
			review: func(_ context.Context, _ domain.EntityType, _, _ string, decision domain.Decision, note string) (*workflow.Result, error) {
				assert.Equal(t, domain.DecisionRejected, decision)
				assert.Equal(t, "missing attachments", note)
				return &workflow.Result{EntityStatus: domain.StatusRejected}, nil
			},
		}
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, reviewReq(`{"decision":"rejected","note":"missing attachments"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should reject a body without a decision", func(t *testing.T) {
		w := httptest.NewRecorder()

		newWorkflowRouter(&stubWorkflowService{}).ServeHTTP(w, reviewReq(`{"note":"no decision"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map a missing note to bad request", func(t *testing.T) {
		svc := &stubWorkflowService{
			review: func(context.Context, domain.EntityType, string, string, domain.Decision, string) (*workflow.Result, error) {
				return nil, approval.ErrNoteRequired
			},
		}
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, reviewReq(`{"decision":"rejected"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map no pending approval to not found", func(t *testing.T) {
		svc := &stubWorkflowService{
			review: func(context.Context, domain.EntityType, string, string, domain.Decision, string) (*workflow.Result, error) {
				return nil, workflow.ErrNoPendingApproval
			},
		}
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, reviewReq(`{"decision":"approved"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArchiveEntity(t *testing.T) {
	entityID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("should map an invalid transition to conflict", func(t *testing.T) {
		svc := &stubWorkflowService{
			archive: func(context.Context, domain.EntityType, string, string) (*workflow.Result, error) {
				return nil, workflow.InvalidTransitionError{From: domain.StatusPending, To: domain.StatusArchived}
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/letter/"+entityID+"/archive", nil)
		req.Header.Set(handler.DefaultActorHeaderKey, actorID)
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("should archive an approved entity", func(t *testing.T) {
		svc := &stubWorkflowService{
			archive: func(context.Context, domain.EntityType, string, string) (*workflow.Result, error) {
				return &workflow.Result{EntityStatus: domain.StatusArchived}, nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/workflow/letter/"+entityID+"/archive", nil)
		req.Header.Set(handler.DefaultActorHeaderKey, actorID)
		w := httptest.NewRecorder()

		newWorkflowRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var result workflow.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, domain.StatusArchived, result.EntityStatus)
	})
}
