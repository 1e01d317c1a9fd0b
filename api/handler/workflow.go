package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/domain"
)

type reviewRequest struct {
	Decision string `json:"decision" binding:"required"`
	Note     string `json:"note"`
}

func entityTypeParam(c *gin.Context) (domain.EntityType, bool) {
	entityType := domain.EntityType(c.Param("entity_type"))
	if !entityType.IsValid() {
		writeError(c, workflow.ErrUnknownEntityType)
		return "", false
	}
	return entityType, true
}

// SubmitEntity moves an entity into review on behalf of its owner.
func (h *Handler) SubmitEntity(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.workflowService.Submit(c.Request.Context(), entityType, c.Param("id"), actor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReviewEntity resolves the pending approval for an entity.
func (h *Handler) ReviewEntity(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.workflowService.Review(c.Request.Context(), entityType, c.Param("id"), actor, domain.Decision(req.Decision), req.Note)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ArchiveEntity moves an approved entity into its terminal state.
func (h *Handler) ArchiveEntity(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.workflowService.Archive(c.Request.Context(), entityType, c.Param("id"), actor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListEntityApprovals returns the full approval history of one entity.
func (h *Handler) ListEntityApprovals(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}

	records, err := h.approvalService.ListByEntity(c.Request.Context(), entityType, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approvals": records})
}

// ListApprovals returns approval records across all entities, typically used
// by reviewers to find work waiting on them.
func (h *Handler) ListApprovals(c *gin.Context) {
	var filter domain.ListApprovalRecordsFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	records, err := h.approvalService.List(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approvals": records})
}
