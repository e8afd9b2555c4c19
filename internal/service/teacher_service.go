package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

type teacherLookupRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

type teacherCourseListRepository interface {
	ListCoursesByTeacher(ctx context.Context, teacherID string) ([]models.Course, error)
}

// TeacherService serves teacher-facing reads against their own record.
type TeacherService struct {
	teachers teacherLookupRepository
	joins    teacherCourseListRepository
	logger   *zap.Logger
}

// NewTeacherService constructs a TeacherService instance.
func NewTeacherService(teachers teacherLookupRepository, joins teacherCourseListRepository, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{teachers: teachers, joins: joins, logger: logger}
}

// CoursesByTeacher returns the courses assigned to the calling teacher,
// resolved by the email carried in their token.
func (s *TeacherService) CoursesByTeacher(ctx context.Context, email string) ([]models.Course, error) {
	teacher, err := s.teachers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}

	courses, err := s.joins.ListCoursesByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("list assigned courses: %w", err)
	}
	return courses, nil
}
