package models

import (
	"encoding/json"
	"io"

	"github.com/oapi-codegen/nullable"
)

const AudioMediaType = "audio/mpeg"

type Lesson struct {
	ID            int64           `json:"lesson_id"`
	ModuleID      int64           `json:"module_id"`
	Title         string          `json:"title"`
	Description   *string         `json:"description"`
	Position      *int            `json:"position"`
	Content       json.RawMessage `json:"content"`
	ImageURL      *string         `json:"image_url"`
	AudioFilePath *string         `json:"audio_file_path"`
}

type LessonUpdate struct {
	Title         nullable.Nullable[string]          `json:"title,omitempty"`
	Description   nullable.Nullable[string]          `json:"description,omitempty"`
	Position      nullable.Nullable[int]             `json:"position,omitempty"`
	Content       nullable.Nullable[json.RawMessage] `json:"content,omitempty"`
	ImageURL      nullable.Nullable[string]          `json:"image_url,omitempty"`
	AudioFilePath nullable.Nullable[string]          `json:"audio_file_path,omitempty"`
}

// AudioAsset is an opened audio file. The caller closes Body.
type AudioAsset struct {
	Name string
	Size int64
	Body io.ReadCloser
}
