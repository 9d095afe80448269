package models

import "github.com/oapi-codegen/nullable"

type UserProgress struct {
	ID             int64  `json:"progress_id"`
	UserID         int64  `json:"user_id"`
	LessonID       *int64 `json:"lesson_id"`
	CorrectAnswers int    `json:"correct_answers"`
	TotalQuestions int    `json:"total_questions"`
}

type ProgressUpdate struct {
	LessonID       nullable.Nullable[int64] `json:"lesson_id,omitempty"`
	CorrectAnswers nullable.Nullable[int]   `json:"correct_answers,omitempty"`
	TotalQuestions nullable.Nullable[int]   `json:"total_questions,omitempty"`
}
