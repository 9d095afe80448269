package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const lessonColumns = `lesson_id, module_id, title, description, position, content, image_url, audio_file_path`

type LessonPostgres struct {
	db DB
}

func NewLessonPostgres(db DB) *LessonPostgres {
	return &LessonPostgres{db: db}
}

func scanLesson(row pgx.Row) (models.Lesson, error) {
	var l models.Lesson
	err := row.Scan(&l.ID, &l.ModuleID, &l.Title, &l.Description, &l.Position, &l.Content, &l.ImageURL, &l.AudioFilePath)
	return l, err
}

func (r *LessonPostgres) GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE lesson_id = $1`
	lesson, err := scanLesson(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrLessonNotFound)
	}
	return &lesson, nil
}

// LessonsByModule returns an empty slice, not an error, for a module without lessons.
func (r *LessonPostgres) LessonsByModule(ctx context.Context, moduleID int64) ([]models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		  FROM lessons
		 WHERE module_id = $1
		 ORDER BY position NULLS LAST, lesson_id`
	rows, err := r.db.Query(ctx, query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons by module: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *LessonPostgres) CreateLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error) {
	var created models.Lesson
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO lessons (module_id, title, description, position, content, image_url, audio_file_path)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + lessonColumns
		var err error
		created, err = scanLesson(tx.QueryRow(ctx, query,
			lesson.ModuleID, lesson.Title, lesson.Description, lesson.Position,
			lesson.Content, lesson.ImageURL, lesson.AudioFilePath,
		))
		return err
	})
	if err != nil {
		return nil, writeErr("creating lesson", err)
	}
	return &created, nil
}

func (r *LessonPostgres) UpdateLesson(ctx context.Context, id int64, upd models.LessonUpdate) (*models.Lesson, error) {
	changes := map[string]any{}
	setNullable(changes, "title", upd.Title)
	setNullable(changes, "description", upd.Description)
	setNullable(changes, "position", upd.Position)
	setNullable(changes, "content", upd.Content)
	setNullable(changes, "image_url", upd.ImageURL)
	setNullable(changes, "audio_file_path", upd.AudioFilePath)
	if len(changes) == 0 {
		return r.GetLessonByID(ctx, id)
	}

	query, args, err := psql.Update("lessons").
		SetMap(changes).
		Where(sq.Eq{"lesson_id": id}).
		Suffix("RETURNING " + lessonColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lesson update: %w", err)
	}

	var lesson models.Lesson
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		lesson, err = scanLesson(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrLessonNotFound)
	})
	if err != nil {
		return nil, writeErr("updating lesson", err)
	}
	return &lesson, nil
}

func (r *LessonPostgres) SetAudioFilePath(ctx context.Context, id int64, path string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `UPDATE lessons SET audio_file_path = $1 WHERE lesson_id = $2 RETURNING ` + lessonColumns
		var err error
		lesson, err = scanLesson(tx.QueryRow(ctx, query, path, id))
		return readErr(err, app_errors.ErrLessonNotFound)
	})
	if err != nil {
		return nil, writeErr("setting lesson audio", err)
	}
	return &lesson, nil
}

// DeleteLesson removes the lesson's quiz questions and quiz, clears progress
// references to it and deletes the lesson row.
func (r *LessonPostgres) DeleteLesson(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := detachLessons(ctx, tx, lessonByID, id); err != nil {
			return err
		}
		return deleteOne(ctx, tx, `DELETE FROM lessons WHERE lesson_id = $1`, id, app_errors.ErrLessonNotFound)
	})
	return writeErr("deleting lesson", err)
}
