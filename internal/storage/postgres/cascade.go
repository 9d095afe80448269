package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Lesson id sets, each parameterised by $1.
const (
	lessonsOfCourse = `SELECT l.lesson_id FROM lessons l JOIN modules m ON m.module_id = l.module_id WHERE m.course_id = $1`
	lessonsOfModule = `SELECT lesson_id FROM lessons WHERE module_id = $1`
	lessonByID      = `SELECT lesson_id FROM lessons WHERE lesson_id = $1`
)

// detachLessons clears everything that hangs off the lessons selected by
// lessonSet, in this order:
//  1. questions of their quizzes
//  2. their quizzes
//  3. user_progress.lesson_id is set to NULL (progress belongs to the user)
//
// The caller deletes the lessons themselves afterwards.
func detachLessons(ctx context.Context, tx pgx.Tx, lessonSet string, id int64) error {
	steps := []string{
		`DELETE FROM questions WHERE quiz_id IN (SELECT quiz_id FROM quizzes WHERE lesson_id IN (` + lessonSet + `))`,
		`DELETE FROM quizzes WHERE lesson_id IN (` + lessonSet + `)`,
		`UPDATE user_progress SET lesson_id = NULL WHERE lesson_id IN (` + lessonSet + `)`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}

// deleteOne runs a single-row DELETE and reports notFound when nothing matched.
func deleteOne(ctx context.Context, tx pgx.Tx, query string, id int64, notFound error) error {
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
