package models

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

const (
	DefaultTokensBalance    = 0
	DefaultExperiencePoints = 0
	DefaultLevel            = 1
)

// User is keyed by the external (Telegram) numeric id.
type User struct {
	ID               int64     `json:"user_id"`
	Username         *string   `json:"username"`
	Firstname        *string   `json:"firstname"`
	RegistrationDate time.Time `json:"registration_date"`
	TokensBalance    int       `json:"tokens_balance"`
	ExperiencePoints int       `json:"experience_points"`
	Level            int       `json:"level"`
}

type UserCreate struct {
	ID        int64
	Username  *string
	Firstname *string
}

type UserUpdate struct {
	Username         nullable.Nullable[string] `json:"username,omitempty"`
	Firstname        nullable.Nullable[string] `json:"firstname,omitempty"`
	TokensBalance    nullable.Nullable[int]    `json:"tokens_balance,omitempty"`
	ExperiencePoints nullable.Nullable[int]    `json:"experience_points,omitempty"`
	Level            nullable.Nullable[int]    `json:"level,omitempty"`
}

type UserCourses struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}
