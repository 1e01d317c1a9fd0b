package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/domain"
)

func (h *Handler) CreateArticle(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var a domain.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	a.OwnerID = actor

	if err := h.articleService.Create(c.Request.Context(), &a); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetArticle(c *gin.Context) {
	a, err := h.articleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) ListArticles(c *gin.Context) {
	var filter domain.ListArticlesFilter
	if err := bindQueryFilter(c, &filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	articles, err := h.articleService.Find(c.Request.Context(), &filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	var a domain.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	a.ID = c.Param("id")

	if err := h.articleService.Update(c.Request.Context(), &a); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
