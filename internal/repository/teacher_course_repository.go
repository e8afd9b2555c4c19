package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ta-portal-api/internal/models"
)

// TeacherCourseRepository persists teacher-course join records.
type TeacherCourseRepository struct {
	db *sqlx.DB
}

// NewTeacherCourseRepository constructs the repository.
func NewTeacherCourseRepository(db *sqlx.DB) *TeacherCourseRepository {
	return &TeacherCourseRepository{db: db}
}

// Exists checks if the teacher is already assigned to the course.
func (r *TeacherCourseRepository) Exists(ctx context.Context, teacherID, courseID string) (bool, error) {
	const query = `SELECT 1 FROM teacher_courses WHERE teacher_id = $1 AND course_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID, courseID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher course: %w", err)
	}
	return true, nil
}

// Create inserts a new join record.
func (r *TeacherCourseRepository) Create(ctx context.Context, tc *models.TeacherCourse) error {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}
	if tc.CreatedAt.IsZero() {
		tc.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO teacher_courses (id, teacher_id, course_id, created_at)
		VALUES (:id, :teacher_id, :course_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tc); err != nil {
		return fmt.Errorf("create teacher course: %w", err)
	}
	return nil
}

// ListCoursesByTeacher returns all courses the teacher is assigned to.
func (r *TeacherCourseRepository) ListCoursesByTeacher(ctx context.Context, teacherID string) ([]models.Course, error) {
	const query = `
SELECT c.id, c.course_id, c.course_name, c.department, c.credits, c.created_at
FROM teacher_courses tc
JOIN courses c ON c.id = tc.course_id
WHERE tc.teacher_id = $1
ORDER BY c.course_id ASC`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, teacherID); err != nil {
		return nil, fmt.Errorf("list courses by teacher: %w", err)
	}
	return courses, nil
}
