package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const progressColumns = `progress_id, user_id, lesson_id, correct_answers, total_questions`

type ProgressPostgres struct {
	db DB
}

func NewProgressPostgres(db DB) *ProgressPostgres {
	return &ProgressPostgres{db: db}
}

func scanProgress(row pgx.Row) (models.UserProgress, error) {
	var p models.UserProgress
	err := row.Scan(&p.ID, &p.UserID, &p.LessonID, &p.CorrectAnswers, &p.TotalQuestions)
	return p, err
}

func (r *ProgressPostgres) ProgressByID(ctx context.Context, id int64) (*models.UserProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_progress WHERE progress_id = $1`
	p, err := scanProgress(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrProgressNotFound)
	}
	return &p, nil
}

func (r *ProgressPostgres) ProgressByUser(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = $1 ORDER BY progress_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	records := []models.UserProgress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ProgressPostgres) CreateProgress(ctx context.Context, p models.UserProgress) (*models.UserProgress, error) {
	var created models.UserProgress
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO user_progress (user_id, lesson_id, correct_answers, total_questions)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + progressColumns
		var err error
		created, err = scanProgress(tx.QueryRow(ctx, query, p.UserID, p.LessonID, p.CorrectAnswers, p.TotalQuestions))
		return err
	})
	if err != nil {
		return nil, writeErr("recording progress", err)
	}
	return &created, nil
}

func (r *ProgressPostgres) UpdateProgress(ctx context.Context, id int64, upd models.ProgressUpdate) (*models.UserProgress, error) {
	changes := map[string]any{}
	setNullable(changes, "lesson_id", upd.LessonID)
	setNullable(changes, "correct_answers", upd.CorrectAnswers)
	setNullable(changes, "total_questions", upd.TotalQuestions)
	if len(changes) == 0 {
		return r.ProgressByID(ctx, id)
	}

	query, args, err := psql.Update("user_progress").
		SetMap(changes).
		Where(sq.Eq{"progress_id": id}).
		Suffix("RETURNING " + progressColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress update: %w", err)
	}

	var p models.UserProgress
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		p, err = scanProgress(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrProgressNotFound)
	})
	if err != nil {
		return nil, writeErr("updating progress", err)
	}
	return &p, nil
}

func (r *ProgressPostgres) DeleteProgress(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, `DELETE FROM user_progress WHERE progress_id = $1`, id, app_errors.ErrProgressNotFound)
	})
	return writeErr("deleting progress", err)
}
