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

type mockCourseRepo struct {
	courseByID *models.Course
	findErr    error
	exists     bool
	existsErr  error
	created    *models.Course
	createErr  error
	updated    *models.Course
	deleteErr  error
	listed     []models.CourseDetail
	listErr    error
}

func (m *mockCourseRepo) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.courseByID, nil
}

func (m *mockCourseRepo) ExistsByCourseID(ctx context.Context, courseID string) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	m.created = course
	return m.createErr
}

func (m *mockCourseRepo) Update(ctx context.Context, course *models.Course) error {
	m.updated = course
	return nil
}

func (m *mockCourseRepo) DeleteByCourseID(ctx context.Context, courseID string) error {
	return m.deleteErr
}

func (m *mockCourseRepo) ListWithTeachers(ctx context.Context) ([]models.CourseDetail, error) {
	return m.listed, m.listErr
}

type mockTeacherRoster struct {
	summaries []models.TeacherSummary
	err       error
}

func (m *mockTeacherRoster) ListSummaries(ctx context.Context) ([]models.TeacherSummary, error) {
	return m.summaries, m.err
}

func TestCourseServiceAddDuplicate(t *testing.T) {
	repo := &mockCourseRepo{exists: true}
	svc := NewCourseService(repo, &mockTeacherRoster{}, nil, nil, nil)

	err := svc.Add(context.Background(), AddCourseRequest{CourseID: "CS101", CourseName: "Intro"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Course already exists", appErr.Message)
	assert.Nil(t, repo.created)
}

func TestCourseServiceAddSuccess(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, &mockTeacherRoster{}, nil, nil, nil)

	err := svc.Add(context.Background(), AddCourseRequest{CourseID: "CS101", CourseName: "Intro"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "CS101", repo.created.CourseID)
}

func TestCourseServiceDeleteNotFound(t *testing.T) {
	repo := &mockCourseRepo{deleteErr: sql.ErrNoRows}
	svc := NewCourseService(repo, &mockTeacherRoster{}, nil, nil, nil)

	err := svc.Delete(context.Background(), "CS999")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Course not found", appErr.Message)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestCourseServiceUpdateMergesOnlyProvidedFields(t *testing.T) {
	dept := "CS"
	repo := &mockCourseRepo{
		courseByID: &models.Course{ID: "c-1", CourseID: "CS101", CourseName: "Intro", Department: &dept},
	}
	svc := NewCourseService(repo, &mockTeacherRoster{}, nil, nil, nil)

	newName := "Intro to Programming"
	course, err := svc.Update(context.Background(), UpdateCourseRequest{CourseID: "CS101", CourseName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Intro to Programming", course.CourseName)
	require.NotNil(t, course.Department)
	assert.Equal(t, "CS", *course.Department)
	require.NotNil(t, repo.updated)
}

func TestCourseServiceUpdateNotFound(t *testing.T) {
	repo := &mockCourseRepo{findErr: sql.ErrNoRows}
	svc := NewCourseService(repo, &mockTeacherRoster{}, nil, nil, nil)

	_, err := svc.Update(context.Background(), UpdateCourseRequest{CourseID: "CS999"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Course not found", appErr.Message)
}

func TestCourseServiceListPassesThrough(t *testing.T) {
	repo := &mockCourseRepo{
		listed: []models.CourseDetail{
			{Course: models.Course{ID: "c-1", CourseID: "CS101"}, Teachers: []models.TeacherSummary{}},
		},
	}
	svc := NewCourseService(repo, &mockTeacherRoster{}, nil, nil, nil)

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.NotNil(t, courses[0].Teachers)
}
