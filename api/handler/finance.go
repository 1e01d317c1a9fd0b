package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

func (h *Handler) CreateFinanceTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var t domain.FinanceTransaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	t.OwnerID = actor

	if err := h.financeService.Create(c.Request.Context(), &t); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetFinanceTransaction(c *gin.Context) {
	t, err := h.financeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) ListFinanceTransactions(c *gin.Context) {
	var filter domain.ListFinanceTransactionsFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	transactions, err := h.financeService.Find(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

func (h *Handler) UpdateFinanceTransaction(c *gin.Context) {
	var t domain.FinanceTransaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	t.ID = c.Param("id")

	if err := h.financeService.Update(c.Request.Context(), &t); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteFinanceTransaction(c *gin.Context) {
	if err := h.financeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
