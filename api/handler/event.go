package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

func (h *Handler) CreateEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var e domain.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	e.OwnerID = actor

	if err := h.eventService.Create(c.Request.Context(), &e); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

func (h *Handler) GetEvent(c *gin.Context) {
	e, err := h.eventService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *Handler) ListEvents(c *gin.Context) {
	var filter domain.ListEventsFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	events, err := h.eventService.Find(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	var e domain.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	e.ID = c.Param("id")

	if err := h.eventService.Update(c.Request.Context(), &e); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
