package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

func (h *Handler) CreateWorkProgram(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var wp domain.WorkProgram
	if err := c.ShouldBindJSON(&wp); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	wp.OwnerID = actor

	if err := h.workProgramService.Create(c.Request.Context(), &wp); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wp)
}

func (h *Handler) GetWorkProgram(c *gin.Context) {
	wp, err := h.workProgramService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wp)
}

func (h *Handler) ListWorkPrograms(c *gin.Context) {
	var filter domain.ListWorkProgramsFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	programs, err := h.workProgramService.Find(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_programs": programs})
}

func (h *Handler) UpdateWorkProgram(c *gin.Context) {
	var wp domain.WorkProgram
	if err := c.ShouldBindJSON(&wp); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	wp.ID = c.Param("id")

	if err := h.workProgramService.Update(c.Request.Context(), &wp); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wp)
}

func (h *Handler) DeleteWorkProgram(c *gin.Context) {
	if err := h.workProgramService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
