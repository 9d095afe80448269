package models

import "github.com/oapi-codegen/nullable"

type Module struct {
	ID          int64   `json:"module_id"`
	CourseID    int64   `json:"course_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
}

type ModuleUpdate struct {
	Title       nullable.Nullable[string] `json:"title,omitempty"`
	Description nullable.Nullable[string] `json:"description,omitempty"`
	Position    nullable.Nullable[int]    `json:"position,omitempty"`
}
