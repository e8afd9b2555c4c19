package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ta-portal-api/internal/models"
)

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindByEmail fetches a teacher by email.
func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	const query = `SELECT id, email, password_hash, first_name, last_name, role, department, is_deleted, active, created_by, updated_by, created_at, updated_at
		FROM teachers WHERE LOWER(email) = LOWER($1) AND is_deleted = FALSE`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, email); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListSummaries returns the trimmed roster projection for every teacher
// that has not been soft-deleted.
func (r *TeacherRepository) ListSummaries(ctx context.Context) ([]models.TeacherSummary, error) {
	const query = `SELECT id, email, first_name, last_name FROM teachers WHERE is_deleted = FALSE ORDER BY last_name ASC, first_name ASC`
	var teachers []models.TeacherSummary
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teacher summaries: %w", err)
	}
	return teachers, nil
}
