package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type EnrollmentPostgres struct {
	db DB
}

func NewEnrollmentPostgres(db DB) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

// Enroll fails with an integrity error when the user is already enrolled or
// either side does not exist.
func (r *EnrollmentPostgres) Enroll(ctx context.Context, courseID, userID int64) (*models.CourseEnrollment, error) {
	var e models.CourseEnrollment
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO course_enrollments (user_id, course_id)
			VALUES ($1, $2)
			RETURNING user_id, course_id, enrollment_date`
		return tx.QueryRow(ctx, query, userID, courseID).Scan(&e.UserID, &e.CourseID, &e.EnrollmentDate)
	})
	if err != nil {
		return nil, writeErr("enrolling user", err)
	}
	return &e, nil
}

func (r *EnrollmentPostgres) Unenroll(ctx context.Context, courseID, userID int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM course_enrollments WHERE course_id = $1 AND user_id = $2`, courseID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return app_errors.ErrEnrollmentNotFound
		}
		return nil
	})
	return writeErr("unenrolling user", err)
}

func (r *EnrollmentPostgres) EnrollmentsByCourse(ctx context.Context, courseID int64) ([]models.CourseEnrollment, error) {
	query := `
		SELECT user_id, course_id, enrollment_date
		  FROM course_enrollments
		 WHERE course_id = $1
		 ORDER BY enrollment_date, user_id`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.CourseEnrollment{}
	for rows.Next() {
		var e models.CourseEnrollment
		if err := rows.Scan(&e.UserID, &e.CourseID, &e.EnrollmentDate); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *EnrollmentPostgres) EnrolledCourses(ctx context.Context, userID int64) ([]models.Course, error) {
	query := `
		SELECT c.course_id, c.user_id, c.title, c.description, c.created_at, c.updated_at
		  FROM courses c
		 INNER JOIN course_enrollments ce ON ce.course_id = c.course_id
		 WHERE ce.user_id = $1
		 ORDER BY ce.enrollment_date DESC, c.course_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled courses: %w", err)
	}
	return collectCourses(rows)
}
