package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

func (h *Handler) CreateDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var d domain.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	d.OwnerID = actor

	if err := h.documentService.Create(c.Request.Context(), &d); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, d)
}

func (h *Handler) GetDocument(c *gin.Context) {
	d, err := h.documentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDocuments(c *gin.Context) {
	var filter domain.ListDocumentsFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	documents, err := h.documentService.Find(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

func (h *Handler) UpdateDocument(c *gin.Context) {
	var d domain.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	d.ID = c.Param("id")

	if err := h.documentService.Update(c.Request.Context(), &d); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
