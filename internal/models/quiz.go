package models

import (
	"encoding/json"

	"github.com/oapi-codegen/nullable"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
)

type Quiz struct {
	ID          int64   `json:"quiz_id"`
	LessonID    int64   `json:"lesson_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
}

type QuizUpdate struct {
	Title       nullable.Nullable[string] `json:"title,omitempty"`
	Description nullable.Nullable[string] `json:"description,omitempty"`
	Position    nullable.Nullable[int]    `json:"position,omitempty"`
}

// Question.Options only matters for multiple_choice questions.
type Question struct {
	ID            int64           `json:"question_id"`
	QuizID        int64           `json:"quiz_id"`
	QuestionText  string          `json:"question_text"`
	QuestionType  string          `json:"question_type"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer *string         `json:"correct_answer"`
}

type QuestionUpdate struct {
	QuestionText  nullable.Nullable[string]          `json:"question_text,omitempty"`
	QuestionType  nullable.Nullable[string]          `json:"question_type,omitempty"`
	Options       nullable.Nullable[json.RawMessage] `json:"options,omitempty"`
	CorrectAnswer nullable.Nullable[string]          `json:"correct_answer,omitempty"`
}

type QuizSubmission struct {
	UserID  int64
	Answers map[int64]string
}
