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

const (
	courseCacheKey     = "courses:all"
	courseCachePattern = "courses:*"
)

type courseRepository interface {
	FindByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	ExistsByCourseID(ctx context.Context, courseID string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	DeleteByCourseID(ctx context.Context, courseID string) error
	ListWithTeachers(ctx context.Context) ([]models.CourseDetail, error)
}

type courseTeacherRoster interface {
	ListSummaries(ctx context.Context) ([]models.TeacherSummary, error)
}

// AddCourseRequest is the admin payload for creating a catalogue entry.
type AddCourseRequest struct {
	CourseID   string  `json:"courseID" validate:"required"`
	CourseName string  `json:"courseName" validate:"required"`
	Department *string `json:"department"`
	Credits    *int    `json:"credits"`
}

// UpdateCourseRequest carries a partial update; nil fields are left alone.
type UpdateCourseRequest struct {
	CourseID   string  `json:"courseID" validate:"required"`
	CourseName *string `json:"courseName"`
	Department *string `json:"department"`
	Credits    *int    `json:"credits"`
}

// CourseService manages the course directory and the admin teacher roster.
type CourseService struct {
	repo      courseRepository
	teachers  courseTeacherRoster
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(repo courseRepository, teachers courseTeacherRoster, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, teachers: teachers, cache: cache, validator: validate, logger: logger}
}

// Add creates a course after checking the human courseID is unused. The
// check and the insert are separate round-trips; a concurrent duplicate can
// slip through, matching the historical behavior.
func (s *CourseService) Add(ctx context.Context, req AddCourseRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	exists, err := s.repo.ExistsByCourseID(ctx, req.CourseID)
	if err != nil {
		return fmt.Errorf("check course existence: %w", err)
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "Course already exists")
	}

	course := &models.Course{
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Department: req.Department,
		Credits:    req.Credits,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	s.invalidateDirectory(ctx)
	return nil
}

// Delete removes a course by its human identifier.
func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	if err := s.repo.DeleteByCourseID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return fmt.Errorf("delete course: %w", err)
	}

	s.invalidateDirectory(ctx)
	return nil
}

// List returns every course with its assigned teachers expanded, served
// from Redis when the cache is enabled.
func (s *CourseService) List(ctx context.Context) ([]models.CourseDetail, error) {
	if s.cache != nil && s.cache.Enabled() {
		var cached []models.CourseDetail
		hit, err := s.cache.Get(ctx, courseCacheKey, &cached)
		if err != nil {
			s.logger.Warn("course cache read failed", zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	courses, err := s.repo.ListWithTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	if s.cache != nil && s.cache.Enabled() {
		if err := s.cache.Set(ctx, courseCacheKey, courses, 0); err != nil {
			s.logger.Warn("course cache write failed", zap.Error(err))
		}
	}
	return courses, nil
}

// Update merges the provided fields into an existing course.
func (s *CourseService) Update(ctx context.Context, req UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course, err := s.repo.FindByCourseID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if req.CourseName != nil {
		course.CourseName = *req.CourseName
	}
	if req.Department != nil {
		course.Department = req.Department
	}
	if req.Credits != nil {
		course.Credits = req.Credits
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.invalidateDirectory(ctx)
	return course, nil
}

// Teachers returns the admin roster of non-deleted teachers.
func (s *CourseService) Teachers(ctx context.Context) ([]models.TeacherSummary, error) {
	summaries, err := s.teachers.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return summaries, nil
}

func (s *CourseService) invalidateDirectory(ctx context.Context) {
	if s.cache == nil || !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, courseCachePattern); err != nil {
		s.logger.Warn("course cache invalidation failed", zap.Error(err))
	}
}
