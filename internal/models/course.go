package models

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

type Course struct {
	ID          int64     `json:"course_id"`
	UserID      *int64    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CourseUpdate struct {
	Title       nullable.Nullable[string] `json:"title,omitempty"`
	Description nullable.Nullable[string] `json:"description,omitempty"`
}

type CoursePage struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}

// CourseEnrollment has no identity of its own, (UserID, CourseID) is the key.
type CourseEnrollment struct {
	UserID         int64     `json:"user_id"`
	CourseID       int64     `json:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}
