package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ta-portal-api/internal/models"
	"github.com/noah-isme/ta-portal-api/internal/service"
)

type slotRepoStub struct {
	owned     *models.Slot
	ownedErr  error
	views     []models.SlotView
	created   *models.Slot
	createErr error
	deletedID string
}

func (s *slotRepoStub) FindBySectionAndTeacher(ctx context.Context, sectionID, teacherID string) (*models.Slot, error) {
	if s.ownedErr != nil {
		return nil, s.ownedErr
	}
	return s.owned, nil
}

func (s *slotRepoStub) ListViewsBySectionID(ctx context.Context, sectionID string) ([]models.SlotView, error) {
	return s.views, nil
}

func (s *slotRepoStub) Create(ctx context.Context, slot *models.Slot) error {
	s.created = slot
	return s.createErr
}

func (s *slotRepoStub) DeleteBySectionID(ctx context.Context, sectionID string) error {
	s.deletedID = sectionID
	return nil
}

func (s *slotRepoStub) UpdateDetails(ctx context.Context, sectionID, description, requirements string) error {
	return nil
}

type courseLookupStub struct {
	course *models.Course
	err    error
}

func (s *courseLookupStub) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.course, nil
}

type assignmentStub struct {
	assigned bool
}

func (s *assignmentStub) Exists(ctx context.Context, teacherID, courseID string) (bool, error) {
	return s.assigned, nil
}

func newSlotHandler(slots *slotRepoStub, teachers *teacherLookupStub, courses *courseLookupStub, assigned bool) *SlotHandler {
	svc := service.NewSlotService(slots, teachers, courses, &assignmentStub{assigned: assigned}, nil, nil)
	return NewSlotHandler(svc, nil)
}

func TestGetSlotBySectionEmpty(t *testing.T) {
	h := newSlotHandler(&slotRepoStub{}, &teacherLookupStub{}, &courseLookupStub{}, false)
	c, w := newJSONContext(t, http.MethodPost, "/getSlotbySectionId", []byte(`{"sectionId":"SEC-1"}`))

	h.GetSlotBySection(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "No slots found", decodeBody(t, w)["msg"])
}

func TestGetSlotBySectionPayloadKey(t *testing.T) {
	h := newSlotHandler(&slotRepoStub{views: []models.SlotView{{ID: "s-1", SectionID: "SEC-1"}}},
		&teacherLookupStub{}, &courseLookupStub{}, false)
	c, w := newJSONContext(t, http.MethodPost, "/getSlotbySectionId", []byte(`{"sectionId":"SEC-1"}`))

	h.GetSlotBySection(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, decodeBody(t, w), "sv")
}

func TestCreateSlotUnassignedCourse(t *testing.T) {
	h := newSlotHandler(&slotRepoStub{},
		&teacherLookupStub{teacher: &models.Teacher{ID: "t-1", Email: "t@uni.edu"}},
		&courseLookupStub{course: &models.Course{ID: "c-1", CourseID: "CS101"}},
		false)
	payload := []byte(`{"sectionId":"SEC-1","courseId":"CS101","applicationDeadline":"2026-12-01T00:00:00Z"}`)
	c, w := newJSONContext(t, http.MethodPost, "/createSlot", payload)
	withTeacherClaims(c)

	h.CreateSlot(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Course not assigned to teacher", decodeBody(t, w)["msg"])
}

func TestCreateSlotSuccess(t *testing.T) {
	slots := &slotRepoStub{}
	h := newSlotHandler(slots,
		&teacherLookupStub{teacher: &models.Teacher{ID: "t-1", Email: "t@uni.edu", FirstName: "Ada", LastName: "Lovelace"}},
		&courseLookupStub{course: &models.Course{ID: "c-1", CourseID: "CS101"}},
		true)
	payload := []byte(`{"sectionId":"SEC-1","courseId":"CS101","applicationDeadline":"2026-12-01T00:00:00Z"}`)
	c, w := newJSONContext(t, http.MethodPost, "/createSlot", payload)
	withTeacherClaims(c)

	h.CreateSlot(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "SLOT CREATED", decodeBody(t, w)["msg"])
	require.NotNil(t, slots.created)
	require.Equal(t, "Ada Lovelace", slots.created.TeacherName)
}

func TestDeleteSlotNotFoundKeepsTrailingSpace(t *testing.T) {
	h := newSlotHandler(&slotRepoStub{ownedErr: sql.ErrNoRows},
		&teacherLookupStub{teacher: &models.Teacher{ID: "t-1", Email: "t@uni.edu"}},
		&courseLookupStub{}, false)
	c, w := newJSONContext(t, http.MethodPost, "/deleteSlot", []byte(`{"sectionId":"SEC-404"}`))
	withTeacherClaims(c)

	h.DeleteSlot(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Slot not found ", decodeBody(t, w)["msg"])
}

func TestDeleteSlotSuccess(t *testing.T) {
	slots := &slotRepoStub{owned: &models.Slot{ID: "s-1", SectionID: "SEC-1"}}
	h := newSlotHandler(slots,
		&teacherLookupStub{teacher: &models.Teacher{ID: "t-1", Email: "t@uni.edu"}},
		&courseLookupStub{}, false)
	c, w := newJSONContext(t, http.MethodPost, "/deleteSlot", []byte(`{"sectionId":"SEC-1"}`))
	withTeacherClaims(c)

	h.DeleteSlot(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Slot deleted successfully", decodeBody(t, w)["msg"])
	require.Equal(t, "SEC-1", slots.deletedID)
}
