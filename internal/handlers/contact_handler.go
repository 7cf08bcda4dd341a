package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "aureus/internal/errors"
	"aureus/internal/pagination"
	"aureus/internal/services"
)

// ContactHandler handles contact intake. Submission is public; the log view
// is restricted to the administrator by middleware.
type ContactHandler struct {
	contacts services.ContactServicer
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts services.ContactServicer) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ContactRequest represents the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,not_blank,max=100"`
	Email   string `json:"email" binding:"required,not_blank,max=255"`
	Phone   string `json:"phone" binding:"required,not_blank,max=50"`
	Purpose string `json:"purpose" binding:"required,not_blank,max=500"`
}

// Submit appends a contact message
// @Summary     Submit a contact request
// @Description Append a contact message to the intake log; no authentication required
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       request body ContactRequest true "Contact details"
// @Success     201 {object} models.ContactMessage "Message recorded"
// @Failure     400 {object} ErrorResponse "Blank field"
// @Router      /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	msg, err := h.contacts.Submit(req.Name, req.Email, req.Phone, req.Purpose)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// List returns the contact log
// @Summary     List contact requests
// @Description Get the contact intake log, newest first (administrator only)
// @Tags        contact
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.ContactMessage] "Contact messages"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the administrator"
// @Router      /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	result, err := h.contacts.List(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
