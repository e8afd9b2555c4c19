package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/service"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
	"github.com/noah-isme/ta-portal-api/pkg/response"
)

// StudentHandler serves the student group's application intake endpoint.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// ApplyToSlot godoc
// @Summary Submit an application to a slot
// @Tags Students
// @Accept json
// @Produce json
// @Router /applyToSlot [post]
func (h *StudentHandler) ApplyToSlot(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.students.Apply(c.Request.Context(), claims.Email, req); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "APPLICATION SUBMITTED"})
}
