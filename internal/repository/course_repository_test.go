package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ta-portal-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryCreateAndFind(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{CourseID: "CS101", CourseName: "Intro"}
	require.NoError(t, repo.Create(context.Background(), course))
	require.NotEmpty(t, course.ID)

	rows := sqlmock.NewRows([]string{"id", "course_id", "course_name", "department", "credits", "created_at"}).
		AddRow(course.ID, "CS101", "Intro", nil, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, course_name, department, credits, created_at FROM courses WHERE course_id = $1")).
		WithArgs("CS101").
		WillReturnRows(rows)

	found, err := repo.FindByCourseID(context.Background(), "CS101")
	require.NoError(t, err)
	require.Equal(t, course.ID, found.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryExistsByCourseID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM courses WHERE course_id = $1")).
		WithArgs("CS101").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByCourseID(context.Background(), "CS101")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM courses WHERE course_id = $1")).
		WithArgs("CS999").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByCourseID(context.Background(), "CS999")
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDeleteMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM courses WHERE course_id = $1")).
		WithArgs("CS999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByCourseID(context.Background(), "CS999")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListWithTeachersFold(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	courseRows := sqlmock.NewRows([]string{"id", "course_id", "course_name", "department", "credits", "created_at"}).
		AddRow("c-1", "CS101", "Intro", nil, nil, time.Now()).
		AddRow("c-2", "CS201", "Algorithms", nil, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, course_name, department, credits, created_at FROM courses ORDER BY created_at DESC")).
		WillReturnRows(courseRows)

	teacherRows := sqlmock.NewRows([]string{"course_ref", "id", "email", "first_name", "last_name"}).
		AddRow("c-1", "t-1", "ada@uni.edu", "Ada", "Lovelace")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT tc.course_id AS course_ref")).
		WillReturnRows(teacherRows)

	details, err := repo.ListWithTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.Len(t, details[0].Teachers, 1)
	require.Equal(t, "ada@uni.edu", details[0].Teachers[0].Email)
	// courses without assignments still carry an empty, non-nil slice
	require.NotNil(t, details[1].Teachers)
	require.Empty(t, details[1].Teachers)
	require.NoError(t, mock.ExpectationsWereMet())
}
