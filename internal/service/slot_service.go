package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

type slotRepository interface {
	FindBySectionAndTeacher(ctx context.Context, sectionID, teacherID string) (*models.Slot, error)
	ListViewsBySectionID(ctx context.Context, sectionID string) ([]models.SlotView, error)
	Create(ctx context.Context, slot *models.Slot) error
	DeleteBySectionID(ctx context.Context, sectionID string) error
	UpdateDetails(ctx context.Context, sectionID, description, requirements string) error
}

type slotTeacherRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

type slotCourseRepository interface {
	FindByCourseID(ctx context.Context, courseID string) (*models.Course, error)
}

type slotAssignmentRepository interface {
	Exists(ctx context.Context, teacherID, courseID string) (bool, error)
}

// CreateSlotRequest is the teacher payload for posting a TA position.
type CreateSlotRequest struct {
	SectionID           string    `json:"sectionId" validate:"required"`
	CourseID            string    `json:"courseId" validate:"required"`
	Requirements        string    `json:"requirements"`
	Duration            string    `json:"duration"`
	WorkHours           int       `json:"workHours"`
	ApplicationDeadline time.Time `json:"applicationDeadline" validate:"required"`
	Description         string    `json:"description"`
}

// UpdateSlotRequest mutates the only two fields a posted slot allows.
type UpdateSlotRequest struct {
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// SlotService manages the slot lifecycle for the owning teacher.
type SlotService struct {
	slots       slotRepository
	teachers    slotTeacherRepository
	courses     slotCourseRepository
	assignments slotAssignmentRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewSlotService constructs a SlotService instance.
func NewSlotService(slots slotRepository, teachers slotTeacherRepository, courses slotCourseRepository, assignments slotAssignmentRepository, validate *validator.Validate, logger *zap.Logger) *SlotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SlotService{slots: slots, teachers: teachers, courses: courses, assignments: assignments, validator: validate, logger: logger}
}

// BySection returns every slot posted under a section with nested teacher
// and course summaries.
func (s *SlotService) BySection(ctx context.Context, sectionID string) ([]models.SlotView, error) {
	views, err := s.slots.ListViewsBySectionID(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list slots by section: %w", err)
	}
	if len(views) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No slots found")
	}
	return views, nil
}

// Create posts a slot for the calling teacher, stamping it with the
// teacher's identity and denormalized name and email.
func (s *SlotService) Create(ctx context.Context, teacherEmail string, req CreateSlotRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot payload")
	}

	course, err := s.courses.FindByCourseID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return fmt.Errorf("find course: %w", err)
	}

	teacher, err := s.teachers.FindByEmail(ctx, teacherEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return fmt.Errorf("find teacher: %w", err)
	}

	assigned, err := s.assignments.Exists(ctx, teacher.ID, course.ID)
	if err != nil {
		return fmt.Errorf("check assignment: %w", err)
	}
	if !assigned {
		return appErrors.Clone(appErrors.ErrForbidden, "Course not assigned to teacher")
	}

	slot := &models.Slot{
		SectionID:           req.SectionID,
		TeacherID:           teacher.ID,
		CourseID:            course.ID,
		TeacherName:         teacher.FullName(),
		TeacherEmail:        teacher.Email,
		Requirements:        req.Requirements,
		Duration:            req.Duration,
		WorkHours:           req.WorkHours,
		ApplicationDeadline: req.ApplicationDeadline,
		Description:         req.Description,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return fmt.Errorf("create slot: %w", err)
	}
	return nil
}

// Delete removes a slot after confirming the caller owns it. The delete
// itself runs by sectionId alone, matching the historical behavior.
func (s *SlotService) Delete(ctx context.Context, teacherEmail, sectionID string) error {
	teacher, err := s.teachers.FindByEmail(ctx, teacherEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return fmt.Errorf("find teacher: %w", err)
	}

	if _, err := s.slots.FindBySectionAndTeacher(ctx, sectionID, teacher.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found ")
		}
		return fmt.Errorf("find slot: %w", err)
	}

	if err := s.slots.DeleteBySectionID(ctx, sectionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found ")
		}
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// UpdateDetails rewrites the description and requirements of an owned slot.
func (s *SlotService) UpdateDetails(ctx context.Context, teacherEmail, sectionID string, req UpdateSlotRequest) error {
	teacher, err := s.teachers.FindByEmail(ctx, teacherEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return fmt.Errorf("find teacher: %w", err)
	}

	if _, err := s.slots.FindBySectionAndTeacher(ctx, sectionID, teacher.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found ")
		}
		return fmt.Errorf("find slot: %w", err)
	}

	if err := s.slots.UpdateDetails(ctx, sectionID, req.Description, req.Requirements); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found ")
		}
		return fmt.Errorf("update slot: %w", err)
	}
	return nil
}
