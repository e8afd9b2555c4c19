package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ta-portal-api/internal/models"
	appErrors "github.com/noah-isme/ta-portal-api/pkg/errors"
)

type mockApplicationRepo struct {
	app             *models.Application
	findErr         error
	statusUpdates   map[string]string
	favouriteValue  *bool
	views           []models.ApplicationView
	viewsErr        error
}

func (m *mockApplicationRepo) FindBySlotAndEmail(ctx context.Context, slotID, studentEmail string) (*models.Application, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.app, nil
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.statusUpdates == nil {
		m.statusUpdates = make(map[string]string)
	}
	m.statusUpdates[id] = status
	return nil
}

func (m *mockApplicationRepo) UpdateFavourite(ctx context.Context, id string, favourite bool) error {
	m.favouriteValue = &favourite
	return nil
}

func (m *mockApplicationRepo) ListViewsByTeacher(ctx context.Context, teacherID string) ([]models.ApplicationView, error) {
	return m.views, m.viewsErr
}

type mockAppSlotRepo struct {
	slotByID      *models.Slot
	slotBySection *models.Slot
	findErr       error
	teacherSlots  []models.Slot
	listErr       error
}

func (m *mockAppSlotRepo) FindByID(ctx context.Context, id string) (*models.Slot, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.slotByID, nil
}

func (m *mockAppSlotRepo) FindBySectionID(ctx context.Context, sectionID string) (*models.Slot, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.slotBySection, nil
}

func (m *mockAppSlotRepo) ListByTeacher(ctx context.Context, teacherID string) ([]models.Slot, error) {
	return m.teacherSlots, m.listErr
}

func TestApplicationServiceAcceptPending(t *testing.T) {
	apps := &mockApplicationRepo{app: &models.Application{ID: "a-1", Status: models.ApplicationPending}}
	slots := &mockAppSlotRepo{slotByID: &models.Slot{ID: "s-1"}}
	svc := NewApplicationService(apps, slots, &mockTeacherLookup{}, nil)

	err := svc.Accept(context.Background(), "s-1", "stud@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, apps.statusUpdates["a-1"])
}

func TestApplicationServiceAcceptAlreadyAccepted(t *testing.T) {
	apps := &mockApplicationRepo{app: &models.Application{ID: "a-1", Status: models.ApplicationAccepted}}
	slots := &mockAppSlotRepo{slotByID: &models.Slot{ID: "s-1"}}
	svc := NewApplicationService(apps, slots, &mockTeacherLookup{}, nil)

	err := svc.Accept(context.Background(), "s-1", "stud@uni.edu")
	require.Error(t, err)
	assert.Equal(t, "Application already accepted", appErrors.FromError(err).Message)
	assert.Empty(t, apps.statusUpdates)
}

// Re-rejecting a rejected application succeeds: the status guard only
// checks for a prior accept.
func TestApplicationServiceRejectAfterReject(t *testing.T) {
	apps := &mockApplicationRepo{app: &models.Application{ID: "a-1", Status: models.ApplicationRejected}}
	slots := &mockAppSlotRepo{slotByID: &models.Slot{ID: "s-1"}}
	svc := NewApplicationService(apps, slots, &mockTeacherLookup{}, nil)

	err := svc.Reject(context.Background(), "s-1", "stud@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, apps.statusUpdates["a-1"])
}

func TestApplicationServiceAcceptSlotMissing(t *testing.T) {
	svc := NewApplicationService(&mockApplicationRepo{}, &mockAppSlotRepo{findErr: sql.ErrNoRows}, &mockTeacherLookup{}, nil)

	err := svc.Accept(context.Background(), "s-404", "stud@uni.edu")
	require.Error(t, err)
	assert.Equal(t, "Slot not found", appErrors.FromError(err).Message)
}

func TestApplicationServiceFavouriteAccepted(t *testing.T) {
	apps := &mockApplicationRepo{app: &models.Application{ID: "a-1", Status: models.ApplicationAccepted}}
	slots := &mockAppSlotRepo{slotBySection: &models.Slot{ID: "s-1"}}
	svc := NewApplicationService(apps, slots, &mockTeacherLookup{}, nil)

	err := svc.Favourite(context.Background(), "SEC-1", "stud@uni.edu", true)
	require.Error(t, err)
	assert.Equal(t, "You have already accepted this application", appErrors.FromError(err).Message)
	assert.Nil(t, apps.favouriteValue)
}

func TestApplicationServiceFavouriteRejected(t *testing.T) {
	apps := &mockApplicationRepo{app: &models.Application{ID: "a-1", Status: models.ApplicationRejected}}
	slots := &mockAppSlotRepo{slotBySection: &models.Slot{ID: "s-1"}}
	svc := NewApplicationService(apps, slots, &mockTeacherLookup{}, nil)

	err := svc.Favourite(context.Background(), "SEC-1", "stud@uni.edu", false)
	require.Error(t, err)
	assert.Equal(t, "You have already rejected this application", appErrors.FromError(err).Message)
}

func TestApplicationServiceFavouritePending(t *testing.T) {
	apps := &mockApplicationRepo{app: &models.Application{ID: "a-1", Status: models.ApplicationPending}}
	slots := &mockAppSlotRepo{slotBySection: &models.Slot{ID: "s-1"}}
	svc := NewApplicationService(apps, slots, &mockTeacherLookup{}, nil)

	err := svc.Favourite(context.Background(), "SEC-1", "stud@uni.edu", true)
	require.NoError(t, err)
	require.NotNil(t, apps.favouriteValue)
	assert.True(t, *apps.favouriteValue)
}

func TestApplicationServiceListByTeacherNoSlots(t *testing.T) {
	svc := NewApplicationService(&mockApplicationRepo{}, &mockAppSlotRepo{},
		&mockTeacherLookup{teacher: &models.Teacher{ID: "t-1"}}, nil)

	_, err := svc.ListByTeacher(context.Background(), "t@uni.edu")
	require.Error(t, err)
	assert.Equal(t, "No slots found", appErrors.FromError(err).Message)
}

func TestApplicationServiceListByTeacherNoApplications(t *testing.T) {
	slots := &mockAppSlotRepo{teacherSlots: []models.Slot{{ID: "s-1"}}}
	svc := NewApplicationService(&mockApplicationRepo{}, slots,
		&mockTeacherLookup{teacher: &models.Teacher{ID: "t-1"}}, nil)

	_, err := svc.ListByTeacher(context.Background(), "t@uni.edu")
	require.Error(t, err)
	assert.Equal(t, "No applications found", appErrors.FromError(err).Message)
}

func TestApplicationServiceListByTeacherMissingTeacher(t *testing.T) {
	svc := NewApplicationService(&mockApplicationRepo{}, &mockAppSlotRepo{},
		&mockTeacherLookup{err: sql.ErrNoRows}, nil)

	_, err := svc.ListByTeacher(context.Background(), "ghost@uni.edu")
	require.Error(t, err)
	assert.Equal(t, "Teacher not found", appErrors.FromError(err).Message)
}

func TestApplicationServiceListFavouritesFiltersInProcess(t *testing.T) {
	apps := &mockApplicationRepo{views: []models.ApplicationView{
		{StudentEmail: "a@uni.edu", Favourite: true},
		{StudentEmail: "b@uni.edu", Favourite: false},
		{StudentEmail: "c@uni.edu", Favourite: true},
	}}
	slots := &mockAppSlotRepo{teacherSlots: []models.Slot{{ID: "s-1"}}}
	svc := NewApplicationService(apps, slots,
		&mockTeacherLookup{teacher: &models.Teacher{ID: "t-1"}}, nil)

	favourites, err := svc.ListFavourites(context.Background(), "t@uni.edu")
	require.NoError(t, err)
	require.Len(t, favourites, 2)
	assert.Equal(t, "a@uni.edu", favourites[0].StudentEmail)
	assert.Equal(t, "c@uni.edu", favourites[1].StudentEmail)
}

func TestApplicationServiceListFavouritesEmpty(t *testing.T) {
	apps := &mockApplicationRepo{views: []models.ApplicationView{
		{StudentEmail: "a@uni.edu", Favourite: false},
	}}
	slots := &mockAppSlotRepo{teacherSlots: []models.Slot{{ID: "s-1"}}}
	svc := NewApplicationService(apps, slots,
		&mockTeacherLookup{teacher: &models.Teacher{ID: "t-1"}}, nil)

	_, err := svc.ListFavourites(context.Background(), "t@uni.edu")
	require.Error(t, err)
	assert.Equal(t, "No favourites found", appErrors.FromError(err).Message)
}
