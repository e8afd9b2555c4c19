package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ta-portal-api/internal/models"
)

func TestApplicationRepositoryFindBySlotAndEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	rows := sqlmock.NewRows([]string{"id", "slot_id", "course_id", "student_name", "student_email", "student_statement", "status", "favourite", "created_at"}).
		AddRow("a-1", "s-1", "c-1", "Grace Hopper", "grace@uni.edu", "statement", "Pending", false, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("WHERE slot_id = $1 AND LOWER(student_email) = LOWER($2)")).
		WithArgs("s-1", "Grace@Uni.edu").
		WillReturnRows(rows)

	app, err := repo.FindBySlotAndEmail(context.Background(), "s-1", "Grace@Uni.edu")
	require.NoError(t, err)
	require.Equal(t, "a-1", app.ID)
	require.Equal(t, models.ApplicationPending, app.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryExistsNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM applications")).
		WithArgs("s-1", "ghost@uni.edu").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsBySlotAndEmail(context.Background(), "s-1", "ghost@uni.edu")
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCreateDefaultsPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO applications")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	app := &models.Application{SlotID: "s-1", CourseID: "c-1", StudentName: "Grace Hopper", StudentEmail: "grace@uni.edu"}
	require.NoError(t, repo.Create(context.Background(), app))
	require.Equal(t, models.ApplicationPending, app.Status)
	require.NotEmpty(t, app.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE applications SET status = $2 WHERE id = $1")).
		WithArgs("a-1", models.ApplicationAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "a-1", models.ApplicationAccepted))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryListViewsByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	rows := sqlmock.NewRows([]string{"student_name", "student_email", "slot_id", "status", "student_statement", "favourite"}).
		AddRow("Grace Hopper", "grace@uni.edu", "s-1", "Pending", "statement", true).
		AddRow("Alan Turing", "alan@uni.edu", "s-2", "accepted", "statement", false)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN slots s ON s.id = a.slot_id")).
		WithArgs("t-1").
		WillReturnRows(rows)

	views, err := repo.ListViewsByTeacher(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.True(t, views[0].Favourite)
	require.Equal(t, "accepted", views[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
