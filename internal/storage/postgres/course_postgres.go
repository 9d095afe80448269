package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const courseColumns = `course_id, user_id, title, description, created_at, updated_at`

type CoursePostgres struct {
	db DB
}

func NewCoursePostgres(db DB) *CoursePostgres {
	return &CoursePostgres{db: db}
}

func scanCourse(row pgx.Row) (models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func collectCourses(rows pgx.Rows) ([]models.Course, error) {
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id = $1`
	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrCourseNotFound)
	}
	return &course, nil
}

func (r *CoursePostgres) CreateCourse(ctx context.Context, course models.Course) (*models.Course, error) {
	var created models.Course
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO courses (user_id, title, description)
			VALUES ($1, $2, $3)
			RETURNING ` + courseColumns
		var err error
		created, err = scanCourse(tx.QueryRow(ctx, query, course.UserID, course.Title, course.Description))
		return err
	})
	if err != nil {
		return nil, writeErr("creating course", err)
	}
	return &created, nil
}

func (r *CoursePostgres) UpdateCourse(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	changes := map[string]any{}
	setNullable(changes, "title", upd.Title)
	setNullable(changes, "description", upd.Description)
	if len(changes) == 0 {
		return r.CourseByID(ctx, id)
	}
	changes["updated_at"] = sq.Expr("now() AT TIME ZONE 'utc'")

	query, args, err := psql.Update("courses").
		SetMap(changes).
		Where(sq.Eq{"course_id": id}).
		Suffix("RETURNING " + courseColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build course update: %w", err)
	}

	var course models.Course
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		course, err = scanCourse(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrCourseNotFound)
	})
	if err != nil {
		return nil, writeErr("updating course", err)
	}
	return &course, nil
}

// DeleteCourse removes the course with everything below it: quiz questions,
// quizzes, lesson references in progress, lessons, modules, enrollments and
// finally the course row.
func (r *CoursePostgres) DeleteCourse(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := detachLessons(ctx, tx, lessonsOfCourse, id); err != nil {
			return err
		}
		steps := []string{
			`DELETE FROM lessons WHERE module_id IN (SELECT module_id FROM modules WHERE course_id = $1)`,
			`DELETE FROM modules WHERE course_id = $1`,
			`DELETE FROM course_enrollments WHERE course_id = $1`,
		}
		for _, q := range steps {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return err
			}
		}
		return deleteOne(ctx, tx, `DELETE FROM courses WHERE course_id = $1`, id, app_errors.ErrCourseNotFound)
	})
	return writeErr("deleting course", err)
}

func (r *CoursePostgres) ListCourses(ctx context.Context, limit, offset int) ([]models.Course, int, error) {
	query, args, err := psql.Select(courseColumns).
		From("courses").
		OrderBy("course_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build course list: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	courses, err := collectCourses(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return courses, total, nil
}

func (r *CoursePostgres) CoursesByUser(ctx context.Context, userID int64) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = $1 ORDER BY course_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by user: %w", err)
	}
	return collectCourses(rows)
}

// CoursesByIDs keeps the order of ids and silently skips ids that no longer exist.
func (r *CoursePostgres) CoursesByIDs(ctx context.Context, ids []int64) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by ids: %w", err)
	}
	found, err := collectCourses(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Course, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	courses := make([]models.Course, 0, len(found))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}
