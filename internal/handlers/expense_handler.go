package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "aureus/internal/errors"
	"aureus/internal/pagination"
	"aureus/internal/services"
)

// ExpenseHandler handles ledger requests for the active account.
type ExpenseHandler struct {
	ledger services.LedgerServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(ledger services.LedgerServicer) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// ExpenseRequest represents the payload for creating or amending an entry.
// The identifier and date are server-assigned and immutable.
type ExpenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required,not_blank,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// ReportQuery represents the report filter parameters.
type ReportQuery struct {
	Start    string `form:"start" binding:"required,iso_date"`
	End      string `form:"end" binding:"required,iso_date"`
	Category string `form:"category"`
}

// Create appends a new ledger entry
// @Summary     Create an expense
// @Description Add an expense entry to the active account's ledger, dated today
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	expense, err := h.ledger.Add(req.Category, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if expense == nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// List returns a page of the active account's ledger
// @Summary     List expenses
// @Description Get the active account's expenses in insertion order
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       category  query string false "Exact category name filter"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	expenses, err := h.ledger.List(c.Query("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Page(expenses, page))
}

// Update amends an existing ledger entry
// @Summary     Amend an expense
// @Description Rewrite the category, description, and amount of an entry; unknown identifiers are a no-op
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Expense identifier"
// @Param       request body ExpenseRequest true "New expense details"
// @Success     200 {object} models.Expense "Amended expense, or null when the identifier is unknown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	expense, err := h.ledger.Amend(c.Param("id"), req.Category, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// Delete removes a ledger entry
// @Summary     Delete an expense
// @Description Remove an entry from the active account's ledger; unknown identifiers are a no-op
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense identifier"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.ledger.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// Report returns the export projection for a date range
// @Summary     Expense report
// @Description Get a date-range- and category-filtered expense list with its total
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       start    query string true  "Range start (inclusive, YYYY-MM-DD)"
// @Param       end      query string true  "Range end (inclusive, YYYY-MM-DD)"
// @Param       category query string false "Exact category name filter"
// @Success     200 {object} services.Report "Filtered expenses and total"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/report [get]
func (h *ExpenseHandler) Report(c *gin.Context) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	report, err := h.ledger.Report(query.Start, query.End, query.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
