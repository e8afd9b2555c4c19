package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/service"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
	"github.com/noah-isme/ta-portal-api/pkg/response"
)

// createSlotErrorBody is the historical internal-failure payload of the
// slot creation endpoint, distinct from the rest of the portal.
var createSlotErrorBody = gin.H{"error": "Internal Server Error"}

// SlotHandler serves the teacher group's slot lifecycle endpoints.
type SlotHandler struct {
	slots    *service.SlotService
	teachers *service.TeacherService
}

// NewSlotHandler creates a new handler.
func NewSlotHandler(slots *service.SlotService, teachers *service.TeacherService) *SlotHandler {
	return &SlotHandler{slots: slots, teachers: teachers}
}

// GetSlotBySection godoc
// @Summary List slots posted under a section
// @Tags Slots
// @Accept json
// @Produce json
// @Router /getSlotbySectionId [post]
func (h *SlotHandler) GetSlotBySection(c *gin.Context) {
	var req struct {
		SectionID string `json:"sectionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	views, err := h.slots.BySection(c.Request.Context(), req.SectionID)
	if err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sv": views})
}

// CreateSlot godoc
// @Summary Post a TA slot for an assigned course
// @Tags Slots
// @Accept json
// @Produce json
// @Router /createSlot [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.slots.Create(c.Request.Context(), claims.Email, req); err != nil {
		legacyMessage(c, err, createSlotErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "SLOT CREATED"})
}

// DeleteSlot godoc
// @Summary Delete an owned slot by section
// @Tags Slots
// @Accept json
// @Produce json
// @Router /deleteSlot [post]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req struct {
		SectionID string `json:"sectionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.slots.Delete(c.Request.Context(), claims.Email, req.SectionID); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Slot deleted successfully"})
}

// UpdateSlot godoc
// @Summary Update an owned slot's description and requirements
// @Tags Slots
// @Accept json
// @Produce json
// @Router /updateSlot/{sectionId} [patch]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.slots.UpdateDetails(c.Request.Context(), claims.Email, c.Param("sectionId"), req); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Slot updated successfully"})
}

// GetCoursesByTeacher godoc
// @Summary List the caller's assigned courses
// @Tags Slots
// @Produce json
// @Router /getCoursesByTeacher [get]
func (h *SlotHandler) GetCoursesByTeacher(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.teachers.CoursesByTeacher(c.Request.Context(), claims.Email)
	if err != nil {
		legacyMessage(c, err, serverErrorBody, "Teacher not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
