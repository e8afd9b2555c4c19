package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

type studentRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	ProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error)
}

type studentSlotRepository interface {
	FindBySectionID(ctx context.Context, sectionID string) (*models.Slot, error)
}

type studentApplicationRepository interface {
	ExistsBySlotAndEmail(ctx context.Context, slotID, studentEmail string) (bool, error)
	Create(ctx context.Context, app *models.Application) error
}

// ApplyRequest is the student payload for applying to a slot.
type ApplyRequest struct {
	SectionID        string `json:"sectionId" validate:"required"`
	StudentStatement string `json:"studentStatement" validate:"required"`
}

// StudentService serves student profiles and the application intake path.
type StudentService struct {
	students  studentRepository
	slots     studentSlotRepository
	apps      studentApplicationRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(students studentRepository, slots studentSlotRepository, apps studentApplicationRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{students: students, slots: slots, apps: apps, validator: validate, logger: logger, now: time.Now}
}

// Profile returns the public applicant projection for a student email.
func (s *StudentService) Profile(ctx context.Context, email string) (*models.StudentProfile, error) {
	profile, err := s.students.ProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, fmt.Errorf("find student profile: %w", err)
	}
	return profile, nil
}

// Apply submits a pending application for the calling student, copying
// their name and email onto the row. The duplicate check and the insert
// are separate round-trips.
func (s *StudentService) Apply(ctx context.Context, studentEmail string, req ApplyRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	student, err := s.students.FindByEmail(ctx, studentEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return fmt.Errorf("find student: %w", err)
	}

	slot, err := s.slots.FindBySectionID(ctx, req.SectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found")
		}
		return fmt.Errorf("find slot: %w", err)
	}

	if s.now().After(slot.ApplicationDeadline) {
		return appErrors.Clone(appErrors.ErrPreconditionFailed, "Application deadline passed")
	}

	exists, err := s.apps.ExistsBySlotAndEmail(ctx, slot.ID, student.Email)
	if err != nil {
		return fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "You have already applied to this slot")
	}

	app := &models.Application{
		SlotID:           slot.ID,
		CourseID:         slot.CourseID,
		StudentName:      strings.TrimSpace(student.FirstName + " " + student.LastName),
		StudentEmail:     student.Email,
		StudentStatement: req.StudentStatement,
		Status:           models.ApplicationPending,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}
