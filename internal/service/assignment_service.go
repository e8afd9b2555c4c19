package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

type assignmentTeacherRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

type assignmentCourseRepository interface {
	FindByCourseID(ctx context.Context, courseID string) (*models.Course, error)
}

type teacherCourseRepository interface {
	Exists(ctx context.Context, teacherID, courseID string) (bool, error)
	Create(ctx context.Context, tc *models.TeacherCourse) error
}

// AssignCourseRequest links a teacher to a course by their human identifiers.
type AssignCourseRequest struct {
	TeacherEmail string `json:"teacherEmail" validate:"required,email"`
	CourseID     string `json:"courseID" validate:"required"`
}

// AssignmentService manages teacher-to-course assignments.
type AssignmentService struct {
	teachers  assignmentTeacherRepository
	courses   assignmentCourseRepository
	joins     teacherCourseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService constructs an AssignmentService instance.
func NewAssignmentService(teachers assignmentTeacherRepository, courses assignmentCourseRepository, joins teacherCourseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AssignmentService{teachers: teachers, courses: courses, joins: joins, cache: cache, validator: validate, logger: logger}
}

// Assign creates the teacher-course link. The duplicate check and the
// insert are separate round-trips, so a concurrent duplicate is possible.
func (s *AssignmentService) Assign(ctx context.Context, req AssignCourseRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	teacher, err := s.teachers.FindByEmail(ctx, req.TeacherEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return fmt.Errorf("find teacher: %w", err)
	}

	course, err := s.courses.FindByCourseID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return fmt.Errorf("find course: %w", err)
	}

	exists, err := s.joins.Exists(ctx, teacher.ID, course.ID)
	if err != nil {
		return fmt.Errorf("check assignment: %w", err)
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "The teacher is already assigned to this course")
	}

	if err := s.joins.Create(ctx, &models.TeacherCourse{TeacherID: teacher.ID, CourseID: course.ID}); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}

	if s.cache != nil && s.cache.Enabled() {
		if err := s.cache.Invalidate(ctx, courseCachePattern); err != nil {
			s.logger.Warn("course cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}
