package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

func (h *Handler) CreateLetter(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var l domain.Letter
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	l.OwnerID = actor

	if err := h.letterService.Create(c.Request.Context(), &l); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

func (h *Handler) GetLetter(c *gin.Context) {
	l, err := h.letterService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

func (h *Handler) ListLetters(c *gin.Context) {
	var filter domain.ListLettersFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	letters, err := h.letterService.Find(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"letters": letters})
}

func (h *Handler) UpdateLetter(c *gin.Context) {
	var l domain.Letter
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	l.ID = c.Param("id")

	if err := h.letterService.Update(c.Request.Context(), &l); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

func (h *Handler) DeleteLetter(c *gin.Context) {
	if err := h.letterService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) PublishLetter(c *gin.Context) {
	if err := h.letterService.Publish(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UnpublishLetter(c *gin.Context) {
	if err := h.letterService.Unpublish(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
