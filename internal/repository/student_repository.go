package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ta-portal-api/internal/models"
)

// StudentRepository manages persistence for student accounts.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByEmail fetches a student by email.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	const query = `SELECT id, email, first_name, last_name, degree_program, semester, created_at, updated_at
		FROM students WHERE LOWER(email) = LOWER($1)`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, email); err != nil {
		return nil, err
	}
	return &student, nil
}

// ProfileByEmail fetches the public projection teachers may view.
func (r *StudentRepository) ProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error) {
	const query = `SELECT email, first_name, last_name, degree_program, semester
		FROM students WHERE LOWER(email) = LOWER($1)`
	var profile models.StudentProfile
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		return nil, err
	}
	return &profile, nil
}
