package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/core/article"
	"github.com/humanika/backoffice/core/document"
	"github.com/humanika/backoffice/core/event"
	"github.com/humanika/backoffice/core/finance"
	"github.com/humanika/backoffice/core/letter"
	"github.com/humanika/backoffice/core/user"
	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/core/workprogram"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates service errors into HTTP status codes. Unrecognized
// errors become a 500 with a generic message so internals never leak.
func writeError(c *gin.Context, err error) {
	var invalidTransition workflow.InvalidTransitionError
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &invalidTransition),
		errors.Is(err, approval.ErrDuplicatePending),
		errors.Is(err, approval.ErrAlreadyResolved),
		errors.Is(err, postgres.ErrDuplicateLetterNumber),
		errors.Is(err, postgres.ErrDuplicateArticleSlug),
		errors.Is(err, user.ErrDuplicateEmail),
		errors.Is(err, workprogram.ErrNotEditable),
		errors.Is(err, event.ErrNotEditable),
		errors.Is(err, finance.ErrNotEditable),
		errors.Is(err, document.ErrNotEditable),
		errors.Is(err, letter.ErrNotEditable),
		errors.Is(err, article.ErrNotEditable),
		errors.Is(err, workprogram.ErrPendingDelete),
		errors.Is(err, event.ErrPendingDelete),
		errors.Is(err, finance.ErrPendingDelete),
		errors.Is(err, document.ErrPendingDelete),
		errors.Is(err, letter.ErrPendingDelete),
		errors.Is(err, article.ErrPendingDelete),
		errors.Is(err, letter.ErrNotApproved):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, workflow.ErrNotOwner),
		errors.Is(err, workflow.ErrUnauthorizedReviewer),
		errors.Is(err, workflow.ErrUnauthorizedArchiver):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})

	case errors.Is(err, workflow.ErrNoPendingApproval),
		errors.Is(err, approval.ErrRecordNotFound),
		errors.Is(err, workprogram.ErrNotFound),
		errors.Is(err, event.ErrNotFound),
		errors.Is(err, finance.ErrNotFound),
		errors.Is(err, document.ErrNotFound),
		errors.Is(err, letter.ErrNotFound),
		errors.Is(err, article.ErrNotFound),
		errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.As(err, &validationErrors),
		errors.Is(err, workflow.ErrUnknownEntityType),
		errors.Is(err, workflow.ErrEntityIDEmptyParam),
		errors.Is(err, workflow.ErrActorEmptyParam),
		errors.Is(err, approval.ErrInvalidEntityType),
		errors.Is(err, approval.ErrInvalidDecision),
		errors.Is(err, approval.ErrNoteRequired),
		errors.Is(err, approval.ErrEmptyReviewer),
		errors.Is(err, approval.ErrEntityIDEmptyParam),
		errors.Is(err, event.ErrInvalidPeriod),
		errors.Is(err, workprogram.ErrIDEmptyParam),
		errors.Is(err, event.ErrIDEmptyParam),
		errors.Is(err, finance.ErrIDEmptyParam),
		errors.Is(err, document.ErrIDEmptyParam),
		errors.Is(err, letter.ErrIDEmptyParam),
		errors.Is(err, article.ErrIDEmptyParam),
		errors.Is(err, user.ErrUserIDEmptyParam),
		errors.Is(err, domain.ErrInvalidTransactionType):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
