package management

import (
	"MiniLearn/internal/models"
	"MiniLearn/internal/validation"
	"MiniLearn/pkg/logger"
	"context"
)

type lessonRepo interface {
	GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error)
	LessonsByModule(ctx context.Context, moduleID int64) ([]models.Lesson, error)
	CreateLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, id int64, upd models.LessonUpdate) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id int64) error
}

type LessonManagementService struct {
	log        logger.Log
	lessonRepo lessonRepo
}

func NewLessonManagementService(log logger.Log, l lessonRepo) *LessonManagementService {
	return &LessonManagementService{log: log, lessonRepo: l}
}

// LessonsByModule returns an empty slice for an empty or unknown module.
func (s *LessonManagementService) LessonsByModule(ctx context.Context, moduleID int64) ([]models.Lesson, error) {
	return s.lessonRepo.LessonsByModule(ctx, moduleID)
}

func (s *LessonManagementService) Lesson(ctx context.Context, id int64) (*models.Lesson, error) {
	return s.lessonRepo.GetLessonByID(ctx, id)
}

func (s *LessonManagementService) CreateLesson(ctx context.Context, moduleID int64, lesson models.Lesson) (*models.Lesson, error) {
	err := validation.First(
		validation.Field("title", lesson.Title, "required,max=100"),
		validation.Field("image_url", lesson.ImageURL, "omitempty,max=255"),
		validation.Field("audio_file_path", lesson.AudioFilePath, "omitempty,max=255"),
	)
	if err != nil {
		return nil, err
	}
	lesson.ModuleID = moduleID
	return s.lessonRepo.CreateLesson(ctx, lesson)
}

func (s *LessonManagementService) UpdateLesson(ctx context.Context, id int64, upd models.LessonUpdate) (*models.Lesson, error) {
	err := validation.First(
		validation.Nullable("title", upd.Title, "required,max=100", false),
		validation.Nullable("image_url", upd.ImageURL, "max=255", true),
		validation.Nullable("audio_file_path", upd.AudioFilePath, "max=255", true),
	)
	if err != nil {
		return nil, err
	}
	return s.lessonRepo.UpdateLesson(ctx, id, upd)
}

func (s *LessonManagementService) DeleteLesson(ctx context.Context, id int64) error {
	if err := s.lessonRepo.DeleteLesson(ctx, id); err != nil {
		return err
	}
	s.log.Info("lesson deleted", "lesson_id", id)
	return nil
}
