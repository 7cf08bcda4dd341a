package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "aureus/internal/errors"
	"aureus/internal/services"
)

// CategoryHandler handles category registry requests. Categories are
// identified by name in the URL; there are no surrogate keys.
type CategoryHandler struct {
	categories services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// CategoryRequest carries a category name for create and rename.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,not_blank,max=100"`
}

// List returns the registry in display order
// @Summary     List categories
// @Description Get the ordered category list
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} string "Category names"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categories.List()})
}

// Create appends a new category
// @Summary     Create a category
// @Description Add a category to the end of the registry
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category name"
// @Success     201 {array} string "Updated category list"
// @Failure     400 {object} ErrorResponse "Blank or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	categories, err := h.categories.Add(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categories": categories})
}

// Rename replaces a category name in place
// @Summary     Rename a category
// @Description Rename a category and rewrite every ledger entry referencing it
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name    path string          true "Current category name"
// @Param       request body CategoryRequest true "New category name"
// @Success     200 {array} string "Updated category list"
// @Failure     400 {object} ErrorResponse "Blank or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories/{name} [put]
func (h *CategoryHandler) Rename(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	categories, err := h.categories.Rename(c.Param("name"), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Delete removes a category
// @Summary     Delete a category
// @Description Remove a category and reassign its ledger entries to the default category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Success     200 {array} string "Updated category list"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories/{name} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	categories, err := h.categories.Remove(c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
