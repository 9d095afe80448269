package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	quizColumns     = `quiz_id, lesson_id, title, description, position`
	questionColumns = `question_id, quiz_id, question_text, question_type, options, correct_answer`
)

type QuizPostgres struct {
	db DB
}

func NewQuizPostgres(db DB) *QuizPostgres {
	return &QuizPostgres{db: db}
}

func scanQuiz(row pgx.Row) (models.Quiz, error) {
	var q models.Quiz
	err := row.Scan(&q.ID, &q.LessonID, &q.Title, &q.Description, &q.Position)
	return q, err
}

func scanQuestion(row pgx.Row) (models.Question, error) {
	var q models.Question
	err := row.Scan(&q.ID, &q.QuizID, &q.QuestionText, &q.QuestionType, &q.Options, &q.CorrectAnswer)
	return q, err
}

func (r *QuizPostgres) QuizByID(ctx context.Context, id int64) (*models.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE quiz_id = $1`
	quiz, err := scanQuiz(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrQuizNotFound)
	}
	return &quiz, nil
}

func (r *QuizPostgres) QuizByLesson(ctx context.Context, lessonID int64) (*models.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE lesson_id = $1`
	quiz, err := scanQuiz(r.db.QueryRow(ctx, query, lessonID))
	if err != nil {
		return nil, readErr(err, app_errors.ErrQuizNotFound)
	}
	return &quiz, nil
}

func (r *QuizPostgres) CreateQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error) {
	var created models.Quiz
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO quizzes (lesson_id, title, description, position)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + quizColumns
		var err error
		created, err = scanQuiz(tx.QueryRow(ctx, query, quiz.LessonID, quiz.Title, quiz.Description, quiz.Position))
		return err
	})
	if err != nil {
		return nil, writeErr("creating quiz", err)
	}
	return &created, nil
}

func (r *QuizPostgres) UpdateQuiz(ctx context.Context, id int64, upd models.QuizUpdate) (*models.Quiz, error) {
	changes := map[string]any{}
	setNullable(changes, "title", upd.Title)
	setNullable(changes, "description", upd.Description)
	setNullable(changes, "position", upd.Position)
	if len(changes) == 0 {
		return r.QuizByID(ctx, id)
	}

	query, args, err := psql.Update("quizzes").
		SetMap(changes).
		Where(sq.Eq{"quiz_id": id}).
		Suffix("RETURNING " + quizColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build quiz update: %w", err)
	}

	var quiz models.Quiz
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		quiz, err = scanQuiz(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrQuizNotFound)
	})
	if err != nil {
		return nil, writeErr("updating quiz", err)
	}
	return &quiz, nil
}

// DeleteQuiz removes the quiz questions first, then the quiz.
func (r *QuizPostgres) DeleteQuiz(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE quiz_id = $1`, id); err != nil {
			return err
		}
		return deleteOne(ctx, tx, `DELETE FROM quizzes WHERE quiz_id = $1`, id, app_errors.ErrQuizNotFound)
	})
	return writeErr("deleting quiz", err)
}

func (r *QuizPostgres) QuestionByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE question_id = $1`
	question, err := scanQuestion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrQuestionNotFound)
	}
	return &question, nil
}

func (r *QuizPostgres) QuestionsByQuiz(ctx context.Context, quizID int64) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE quiz_id = $1 ORDER BY question_id`
	rows, err := r.db.Query(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuizPostgres) CreateQuestion(ctx context.Context, question models.Question) (*models.Question, error) {
	var created models.Question
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO questions (quiz_id, question_text, question_type, options, correct_answer)
			VALUES ($1, $2, $3::question_types, $4, $5)
			RETURNING ` + questionColumns
		var err error
		created, err = scanQuestion(tx.QueryRow(ctx, query,
			question.QuizID, question.QuestionText, question.QuestionType, question.Options, question.CorrectAnswer,
		))
		return err
	})
	if err != nil {
		return nil, writeErr("creating question", err)
	}
	return &created, nil
}

func (r *QuizPostgres) UpdateQuestion(ctx context.Context, id int64, upd models.QuestionUpdate) (*models.Question, error) {
	changes := map[string]any{}
	setNullable(changes, "question_text", upd.QuestionText)
	setNullable(changes, "question_type", upd.QuestionType)
	setNullable(changes, "options", upd.Options)
	setNullable(changes, "correct_answer", upd.CorrectAnswer)
	if len(changes) == 0 {
		return r.QuestionByID(ctx, id)
	}
	if v, ok := changes["question_type"]; ok && v != nil {
		changes["question_type"] = sq.Expr("?::question_types", v)
	}

	query, args, err := psql.Update("questions").
		SetMap(changes).
		Where(sq.Eq{"question_id": id}).
		Suffix("RETURNING " + questionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question update: %w", err)
	}

	var question models.Question
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		question, err = scanQuestion(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrQuestionNotFound)
	})
	if err != nil {
		return nil, writeErr("updating question", err)
	}
	return &question, nil
}

func (r *QuizPostgres) DeleteQuestion(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		return deleteOne(ctx, tx, `DELETE FROM questions WHERE question_id = $1`, id, app_errors.ErrQuestionNotFound)
	})
	return writeErr("deleting question", err)
}
