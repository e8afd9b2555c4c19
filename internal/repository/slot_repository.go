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

// SlotRepository manages persistence for TA slots.
type SlotRepository struct {
	db *sqlx.DB
}

// NewSlotRepository constructs a SlotRepository.
func NewSlotRepository(db *sqlx.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

const slotColumns = `id, section_id, teacher_id, course_id, teacher_name, teacher_email, requirements, duration, work_hours, application_deadline, description, created_at`

// FindByID fetches a slot by primary key.
func (r *SlotRepository) FindByID(ctx context.Context, id string) (*models.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM slots WHERE id = $1`, slotColumns)
	var slot models.Slot
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, err
	}
	return &slot, nil
}

// FindBySectionID fetches a slot by its section identifier.
func (r *SlotRepository) FindBySectionID(ctx context.Context, sectionID string) (*models.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM slots WHERE section_id = $1 LIMIT 1`, slotColumns)
	var slot models.Slot
	if err := r.db.GetContext(ctx, &slot, query, sectionID); err != nil {
		return nil, err
	}
	return &slot, nil
}

// FindBySectionAndTeacher fetches a slot owned by the teacher.
func (r *SlotRepository) FindBySectionAndTeacher(ctx context.Context, sectionID, teacherID string) (*models.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM slots WHERE section_id = $1 AND teacher_id = $2 LIMIT 1`, slotColumns)
	var slot models.Slot
	if err := r.db.GetContext(ctx, &slot, query, sectionID, teacherID); err != nil {
		return nil, err
	}
	return &slot, nil
}

// ListByTeacher returns all slots owned by the teacher.
func (r *SlotRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM slots WHERE teacher_id = $1 ORDER BY created_at DESC`, slotColumns)
	var slots []models.Slot
	if err := r.db.SelectContext(ctx, &slots, query, teacherID); err != nil {
		return nil, fmt.Errorf("list slots by teacher: %w", err)
	}
	return slots, nil
}

// ListViewsBySectionID returns slot projections with nested teacher and
// course summaries for the section lookup.
func (r *SlotRepository) ListViewsBySectionID(ctx context.Context, sectionID string) ([]models.SlotView, error) {
	const query = `
SELECT s.id, s.section_id, s.requirements, s.duration, s.work_hours, s.application_deadline, s.created_at,
       t.id AS teacher_id, t.email AS teacher_email, t.first_name AS teacher_first_name, t.last_name AS teacher_last_name,
       c.id AS course_ref, c.course_id AS course_code, c.course_name
FROM slots s
JOIN teachers t ON t.id = s.teacher_id
JOIN courses c ON c.id = s.course_id
WHERE s.section_id = $1
ORDER BY s.created_at DESC`
	var rows []models.SlotViewRow
	if err := r.db.SelectContext(ctx, &rows, query, sectionID); err != nil {
		return nil, fmt.Errorf("list slot views: %w", err)
	}
	views := make([]models.SlotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.View())
	}
	return views, nil
}

// Create inserts a new slot record.
func (r *SlotRepository) Create(ctx context.Context, slot *models.Slot) error {
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO slots (id, section_id, teacher_id, course_id, teacher_name, teacher_email, requirements, duration, work_hours, application_deadline, description, created_at)
		VALUES (:id, :section_id, :teacher_id, :course_id, :teacher_name, :teacher_email, :requirements, :duration, :work_hours, :application_deadline, :description, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, slot); err != nil {
		return fmt.Errorf("create slot: %w", err)
	}
	return nil
}

// DeleteBySectionID removes slots by section identifier alone. Ownership is
// verified by the caller's preceding lookup; the delete itself matches any
// slot carrying the section id, as the legacy contract did.
func (r *SlotRepository) DeleteBySectionID(ctx context.Context, sectionID string) error {
	const query = `DELETE FROM slots WHERE section_id = $1`
	result, err := r.db.ExecContext(ctx, query, sectionID)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted slot rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateDetails rewrites the two post-creation mutable fields.
func (r *SlotRepository) UpdateDetails(ctx context.Context, sectionID, description, requirements string) error {
	const query = `UPDATE slots SET description = $2, requirements = $3 WHERE section_id = $1`
	if _, err := r.db.ExecContext(ctx, query, sectionID, description, requirements); err != nil {
		return fmt.Errorf("update slot details: %w", err)
	}
	return nil
}
