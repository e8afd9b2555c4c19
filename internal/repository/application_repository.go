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

// ApplicationRepository manages persistence for slot applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs an ApplicationRepository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, slot_id, course_id, student_name, student_email, student_statement, status, favourite, created_at`

// FindBySlotAndEmail fetches the application a student filed for a slot.
func (r *ApplicationRepository) FindBySlotAndEmail(ctx context.Context, slotID, studentEmail string) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE slot_id = $1 AND LOWER(student_email) = LOWER($2) LIMIT 1`, applicationColumns)
	var app models.Application
	if err := r.db.GetContext(ctx, &app, query, slotID, studentEmail); err != nil {
		return nil, err
	}
	return &app, nil
}

// ExistsBySlotAndEmail checks for a prior application by the student.
func (r *ApplicationRepository) ExistsBySlotAndEmail(ctx context.Context, slotID, studentEmail string) (bool, error) {
	const query = `SELECT 1 FROM applications WHERE slot_id = $1 AND LOWER(student_email) = LOWER($2) LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, slotID, studentEmail); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check application: %w", err)
	}
	return true, nil
}

// Create inserts a new application record.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO applications (id, slot_id, course_id, student_name, student_email, student_statement, status, favourite, created_at)
		VALUES (:id, :slot_id, :course_id, :student_name, :student_email, :student_statement, :status, :favourite, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// UpdateStatus writes the lifecycle status.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE applications SET status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// UpdateFavourite writes the favourite flag.
func (r *ApplicationRepository) UpdateFavourite(ctx context.Context, id string, favourite bool) error {
	const query = `UPDATE applications SET favourite = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, favourite); err != nil {
		return fmt.Errorf("update application favourite: %w", err)
	}
	return nil
}

// ListViewsByTeacher returns the public projection of every application
// filed against the teacher's slots.
func (r *ApplicationRepository) ListViewsByTeacher(ctx context.Context, teacherID string) ([]models.ApplicationView, error) {
	const query = `
SELECT a.student_name, a.student_email, a.slot_id, a.status, a.student_statement, a.favourite
FROM applications a
JOIN slots s ON s.id = a.slot_id
WHERE s.teacher_id = $1
ORDER BY a.created_at ASC`
	var views []models.ApplicationView
	if err := r.db.SelectContext(ctx, &views, query, teacherID); err != nil {
		return nil, fmt.Errorf("list applications by teacher: %w", err)
	}
	return views, nil
}
