package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ta-portal-api/internal/middleware"
	"github.com/noah-isme/ta-portal-api/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Admin       *AdminHandler
	Slot        *SlotHandler
	Application *ApplicationHandler
	Student     *StudentHandler
	Export      *ExportHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts the portal's route groups. The legacy paths keep
// their historical flat shape under role-gated groups; supplemented
// endpoints live under /auth and the observability roots.
func RegisterRoutes(r *gin.Engine, h Handlers, auth *service.AuthService) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", middleware.JWT(auth), h.Auth.Logout)
	}

	admin := r.Group("/", middleware.JWT(auth), middleware.RequireAdmin())
	{
		admin.POST("/addCourse", h.Admin.AddCourse)
		admin.POST("/deleteCourse", h.Admin.DeleteCourse)
		admin.GET("/getCourses", h.Admin.GetCourses)
		admin.GET("/getTeachers", h.Admin.GetTeachers)
		admin.POST("/updateCourse", h.Admin.UpdateCourse)
		admin.POST("/assignCourseToTeacher", h.Admin.AssignCourseToTeacher)
	}

	teacher := r.Group("/", middleware.JWT(auth), middleware.RequireTeacher())
	{
		teacher.POST("/getSlotbySectionId", h.Slot.GetSlotBySection)
		teacher.POST("/createSlot", h.Slot.CreateSlot)
		teacher.POST("/deleteSlot", h.Slot.DeleteSlot)
		teacher.PATCH("/updateSlot/:sectionId", h.Slot.UpdateSlot)
		teacher.GET("/getCoursesByTeacher", h.Slot.GetCoursesByTeacher)

		teacher.GET("/viewApplications", h.Application.ViewApplications)
		teacher.POST("/viewStudentProfile", h.Application.ViewStudentProfile)
		teacher.PATCH("/acceptApplication/:slotId/:studentEmail", h.Application.AcceptApplication)
		teacher.PATCH("/rejectApplication/:slotId/:studentEmail", h.Application.RejectApplication)
		teacher.PATCH("/makeFavourite/:sectionId/:studentEmail", h.Application.MakeFavourite)
		teacher.PATCH("/removeFavourite/:sectionId/:studentEmail", h.Application.RemoveFavourite)
		teacher.GET("/viewFavourites", h.Application.ViewFavourites)
		teacher.GET("/exportApplications", h.Export.ExportApplications)
	}

	student := r.Group("/", middleware.JWT(auth), middleware.RequireStudent())
	{
		student.POST("/applyToSlot", h.Student.ApplyToSlot)
	}
}
