package postgres

import (
	"MiniLearn/internal/app_errors"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	mock := newMock(t)
	repo := NewEnrollmentPostgres(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO course_enrollments (user_id, course_id)")).
		WithArgs(int64(42), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "course_id", "enrollment_date"}).
			AddRow(int64(42), int64(1), fixedTime))
	mock.ExpectCommit()

	e, err := repo.Enroll(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), e.UserID)
	assert.Equal(t, fixedTime, e.EnrollmentDate)
}

func TestEnrollTwice(t *testing.T) {
	mock := newMock(t)
	repo := NewEnrollmentPostgres(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO course_enrollments")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "course_enrollments_pkey"})
	mock.ExpectRollback()

	_, err := repo.Enroll(context.Background(), 1, 42)
	assert.ErrorIs(t, err, app_errors.ErrIntegrityViolation)
}

func TestUnenrollMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewEnrollmentPostgres(mock)

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM course_enrollments WHERE course_id = $1 AND user_id = $2")).
		WithArgs(int64(1), int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := repo.Unenroll(context.Background(), 1, 42)
	assert.ErrorIs(t, err, app_errors.ErrEnrollmentNotFound)
}
