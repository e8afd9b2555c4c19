package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/service"
)

// AdminHandler serves the admin group: course directory maintenance, the
// teacher roster, and teacher-course assignment.
type AdminHandler struct {
	courses     *service.CourseService
	assignments *service.AssignmentService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(courses *service.CourseService, assignments *service.AssignmentService) *AdminHandler {
	return &AdminHandler{courses: courses, assignments: assignments}
}

// AddCourse godoc
// @Summary Add a course
// @Tags Admin
// @Accept json
// @Produce json
// @Router /addCourse [post]
func (h *AdminHandler) AddCourse(c *gin.Context) {
	var req service.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.courses.Add(c.Request.Context(), req); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "COURSE ADDED"})
}

// DeleteCourse godoc
// @Summary Delete a course by its human identifier
// @Tags Admin
// @Accept json
// @Produce json
// @Router /deleteCourse [post]
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	var req struct {
		CourseID string `json:"courseID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.courses.Delete(c.Request.Context(), req.CourseID); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "COURSE DELETED"})
}

// GetCourses godoc
// @Summary List all courses with their assigned teachers
// @Tags Admin
// @Produce json
// @Router /getCourses [get]
func (h *AdminHandler) GetCourses(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cv": courses})
}

// GetTeachers godoc
// @Summary List the teacher roster
// @Tags Admin
// @Produce json
// @Router /getTeachers [get]
func (h *AdminHandler) GetTeachers(c *gin.Context) {
	teachers, err := h.courses.Teachers(c.Request.Context())
	if err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tv": teachers})
}

// UpdateCourse godoc
// @Summary Merge a partial update into a course
// @Tags Admin
// @Accept json
// @Produce json
// @Router /updateCourse [post]
func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	course, err := h.courses.Update(c.Request.Context(), req)
	if err != nil {
		legacyMessage(c, err, serverErrorBody, "Course not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Course updated", "updatedCourse": course})
}

// AssignCourseToTeacher godoc
// @Summary Assign a course to a teacher
// @Tags Admin
// @Accept json
// @Produce json
// @Router /assignCourseToTeacher [post]
func (h *AdminHandler) AssignCourseToTeacher(c *gin.Context) {
	var req service.AssignCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.assignments.Assign(c.Request.Context(), req); err != nil {
		legacyMessage(c, err, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "COURSE ASSIGNED TO TEACHER"})
}
