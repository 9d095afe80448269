package content

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"fmt"
	"io"
)

type lessonRepo interface {
	GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error)
	SetAudioFilePath(ctx context.Context, id int64, path string) (*models.Lesson, error)
}

type audioStorage interface {
	OpenAudio(ctx context.Context, path string) (*models.AudioAsset, error)
	SaveAudio(ctx context.Context, lessonID int64, filename string, r io.Reader, size int64) (string, error)
}

type LessonContentService struct {
	log        logger.Log
	lessonRepo lessonRepo
	audio      audioStorage
}

func NewLessonContentService(log logger.Log, l lessonRepo, audio audioStorage) *LessonContentService {
	return &LessonContentService{log: log, lessonRepo: l, audio: audio}
}

// Audio opens the lesson's audio file. A lesson without a path and a path
// whose file is gone both end in app_errors.ErrAudioNotFound.
func (s *LessonContentService) Audio(ctx context.Context, lessonID int64) (*models.AudioAsset, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.AudioFilePath == nil || *lesson.AudioFilePath == "" {
		return nil, app_errors.ErrAudioNotFound
	}
	return s.audio.OpenAudio(ctx, *lesson.AudioFilePath)
}

func (s *LessonContentService) UploadAudio(ctx context.Context, lessonID int64, filename string, r io.Reader, size int64) (*models.Lesson, error) {
	if _, err := s.lessonRepo.GetLessonByID(ctx, lessonID); err != nil {
		return nil, err
	}
	path, err := s.audio.SaveAudio(ctx, lessonID, filename, r, size)
	if err != nil {
		return nil, fmt.Errorf("store lesson audio: %w", err)
	}
	lesson, err := s.lessonRepo.SetAudioFilePath(ctx, lessonID, path)
	if err != nil {
		return nil, err
	}
	s.log.Info("lesson audio stored", "lesson_id", lessonID, "path", path)
	return lesson, nil
}
