package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/service"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
	"github.com/noah-isme/ta-portal-api/pkg/response"
)

// ApplicationHandler serves the teacher group's application review
// endpoints.
type ApplicationHandler struct {
	apps     *service.ApplicationService
	students *service.StudentService
}

// NewApplicationHandler creates a new handler.
func NewApplicationHandler(apps *service.ApplicationService, students *service.StudentService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, students: students}
}

// ViewApplications godoc
// @Summary List applications against the caller's slots
// @Tags Applications
// @Produce json
// @Router /viewApplications [get]
func (h *ApplicationHandler) ViewApplications(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	views, err := h.apps.ListByTeacher(c.Request.Context(), claims.Email)
	if err != nil {
		legacyMessage(c, err, serverErrorBody, "Teacher not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"apps": views})
}

// ViewStudentProfile godoc
// @Summary Look up an applicant's profile
// @Tags Applications
// @Accept json
// @Produce json
// @Router /viewStudentProfile [post]
func (h *ApplicationHandler) ViewStudentProfile(c *gin.Context) {
	var req struct {
		StudentEmail string `json:"studentEmail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	profile, err := h.students.Profile(c.Request.Context(), req.StudentEmail)
	if err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stv": profile})
}

// AcceptApplication godoc
// @Summary Accept a pending application
// @Tags Applications
// @Produce json
// @Router /acceptApplication/{slotId}/{studentEmail} [patch]
func (h *ApplicationHandler) AcceptApplication(c *gin.Context) {
	if err := h.apps.Accept(c.Request.Context(), c.Param("slotId"), c.Param("studentEmail")); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Application accepted"})
}

// RejectApplication godoc
// @Summary Reject an application
// @Tags Applications
// @Produce json
// @Router /rejectApplication/{slotId}/{studentEmail} [patch]
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	if err := h.apps.Reject(c.Request.Context(), c.Param("slotId"), c.Param("studentEmail")); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Application rejected"})
}

// MakeFavourite godoc
// @Summary Mark a pending application as favourite
// @Tags Applications
// @Produce json
// @Router /makeFavourite/{sectionId}/{studentEmail} [patch]
func (h *ApplicationHandler) MakeFavourite(c *gin.Context) {
	if err := h.apps.Favourite(c.Request.Context(), c.Param("sectionId"), c.Param("studentEmail"), true); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Application marked favourite"})
}

// RemoveFavourite godoc
// @Summary Clear the favourite flag on a pending application
// @Tags Applications
// @Produce json
// @Router /removeFavourite/{sectionId}/{studentEmail} [patch]
func (h *ApplicationHandler) RemoveFavourite(c *gin.Context) {
	if err := h.apps.Favourite(c.Request.Context(), c.Param("sectionId"), c.Param("studentEmail"), false); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Favourite removed"})
}

// ViewFavourites godoc
// @Summary List the caller's favourited applications
// @Tags Applications
// @Produce json
// @Router /viewFavourites [get]
func (h *ApplicationHandler) ViewFavourites(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	views, err := h.apps.ListFavourites(c.Request.Context(), claims.Email)
	if err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Apps": views})
}
