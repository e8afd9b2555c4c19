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

type applicationRepository interface {
	FindBySlotAndEmail(ctx context.Context, slotID, studentEmail string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateFavourite(ctx context.Context, id string, favourite bool) error
	ListViewsByTeacher(ctx context.Context, teacherID string) ([]models.ApplicationView, error)
}

type applicationSlotRepository interface {
	FindByID(ctx context.Context, id string) (*models.Slot, error)
	FindBySectionID(ctx context.Context, sectionID string) (*models.Slot, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Slot, error)
}

type applicationTeacherRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

// ApplicationService drives the reviewing teacher's side of the
// application lifecycle.
type ApplicationService struct {
	apps     applicationRepository
	slots    applicationSlotRepository
	teachers applicationTeacherRepository
	logger   *zap.Logger
}

// NewApplicationService constructs an ApplicationService instance.
func NewApplicationService(apps applicationRepository, slots applicationSlotRepository, teachers applicationTeacherRepository, logger *zap.Logger) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{apps: apps, slots: slots, teachers: teachers, logger: logger}
}

// ListByTeacher returns every application against the caller's slots,
// trimmed to the review projection.
func (s *ApplicationService) ListByTeacher(ctx context.Context, teacherEmail string) ([]models.ApplicationView, error) {
	teacher, err := s.teachers.FindByEmail(ctx, teacherEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}

	slots, err := s.slots.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No slots found")
	}

	views, err := s.apps.ListViewsByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if len(views) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No applications found")
	}
	return views, nil
}

// Accept transitions an application to accepted. Only a prior accept
// blocks the transition.
func (s *ApplicationService) Accept(ctx context.Context, slotID, studentEmail string) error {
	return s.setStatus(ctx, slotID, studentEmail, models.ApplicationAccepted)
}

// Reject transitions an application to rejected. The guard mirrors Accept
// and only blocks on a prior accept, so re-rejecting succeeds; this
// asymmetry is part of the preserved contract.
func (s *ApplicationService) Reject(ctx context.Context, slotID, studentEmail string) error {
	return s.setStatus(ctx, slotID, studentEmail, models.ApplicationRejected)
}

func (s *ApplicationService) setStatus(ctx context.Context, slotID, studentEmail, status string) error {
	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found")
		}
		return fmt.Errorf("find slot: %w", err)
	}

	app, err := s.apps.FindBySlotAndEmail(ctx, slot.ID, studentEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Application not found")
		}
		return fmt.Errorf("find application: %w", err)
	}

	if app.Status == models.ApplicationAccepted {
		return appErrors.Clone(appErrors.ErrConflict, "Application already accepted")
	}

	if err := s.apps.UpdateStatus(ctx, app.ID, status); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// Favourite flips the favourite flag on a pending application, addressed
// by the slot's sectionId rather than its id.
func (s *ApplicationService) Favourite(ctx context.Context, sectionID, studentEmail string, favourite bool) error {
	slot, err := s.slots.FindBySectionID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Slot not found")
		}
		return fmt.Errorf("find slot: %w", err)
	}

	app, err := s.apps.FindBySlotAndEmail(ctx, slot.ID, studentEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Application not found")
		}
		return fmt.Errorf("find application: %w", err)
	}

	if app.Terminal() {
		msg := "You have already rejected this application"
		if app.Status == models.ApplicationAccepted {
			msg = "You have already accepted this application"
		}
		return appErrors.Clone(appErrors.ErrConflict, msg)
	}

	if err := s.apps.UpdateFavourite(ctx, app.ID, favourite); err != nil {
		return fmt.Errorf("update favourite flag: %w", err)
	}
	return nil
}

// ListFavourites returns the caller's favourited applications. Favourite
// filtering happens here after full retrieval, not in the query.
func (s *ApplicationService) ListFavourites(ctx context.Context, teacherEmail string) ([]models.ApplicationView, error) {
	teacher, err := s.teachers.FindByEmail(ctx, teacherEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}

	slots, err := s.slots.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No slots found")
	}

	views, err := s.apps.ListViewsByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	favourites := make([]models.ApplicationView, 0, len(views))
	for _, view := range views {
		if view.Favourite {
			favourites = append(favourites, view)
		}
	}
	if len(favourites) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No favourites found")
	}
	return favourites, nil
}
