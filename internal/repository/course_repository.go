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

// CourseRepository manages persistence for catalogue courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// FindByCourseID fetches a course by its human-assigned identifier.
func (r *CourseRepository) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	const query = `SELECT id, course_id, course_name, department, credits, created_at FROM courses WHERE course_id = $1 LIMIT 1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, courseID); err != nil {
		return nil, err
	}
	return &course, nil
}

// ExistsByCourseID checks whether a course already uses the identifier.
func (r *CourseRepository) ExistsByCourseID(ctx context.Context, courseID string) (bool, error) {
	const query = `SELECT 1 FROM courses WHERE course_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, courseID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check course id: %w", err)
	}
	return true, nil
}

// Create inserts a new course record.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (id, course_id, course_name, department, credits, created_at)
		VALUES (:id, :course_id, :course_name, :department, :credits, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update rewrites the mutable course fields.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET course_name = :course_name, department = :department, credits = :credits WHERE course_id = :course_id`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// DeleteByCourseID removes the course with the given identifier.
func (r *CourseRepository) DeleteByCourseID(ctx context.Context, courseID string) error {
	const query = `DELETE FROM courses WHERE course_id = $1`
	result, err := r.db.ExecContext(ctx, query, courseID)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted course rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListWithTeachers returns every course with its assigned teachers expanded.
func (r *CourseRepository) ListWithTeachers(ctx context.Context) ([]models.CourseDetail, error) {
	const courseQuery = `SELECT id, course_id, course_name, department, credits, created_at FROM courses ORDER BY created_at DESC`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, courseQuery); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	const teacherQuery = `
SELECT tc.course_id AS course_ref, t.id, t.email, t.first_name, t.last_name
FROM teacher_courses tc
JOIN teachers t ON t.id = tc.teacher_id
WHERE t.is_deleted = FALSE
ORDER BY t.last_name ASC, t.first_name ASC`
	var rows []struct {
		CourseRef string `db:"course_ref"`
		models.TeacherSummary
	}
	if err := r.db.SelectContext(ctx, &rows, teacherQuery); err != nil {
		return nil, fmt.Errorf("list course teachers: %w", err)
	}

	byCourse := make(map[string][]models.TeacherSummary, len(courses))
	for _, row := range rows {
		byCourse[row.CourseRef] = append(byCourse[row.CourseRef], row.TeacherSummary)
	}

	details := make([]models.CourseDetail, 0, len(courses))
	for _, course := range courses {
		teachers := byCourse[course.ID]
		if teachers == nil {
			teachers = []models.TeacherSummary{}
		}
		details = append(details, models.CourseDetail{Course: course, Teachers: teachers})
	}
	return details, nil
}
