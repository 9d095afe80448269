package progress

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"MiniLearn/internal/validation"
	"MiniLearn/pkg/logger"
	"context"
)

type progressRepo interface {
	ProgressByID(ctx context.Context, id int64) (*models.UserProgress, error)
	CreateProgress(ctx context.Context, p models.UserProgress) (*models.UserProgress, error)
	UpdateProgress(ctx context.Context, id int64, upd models.ProgressUpdate) (*models.UserProgress, error)
	DeleteProgress(ctx context.Context, id int64) error
}

type ProgressService struct {
	log          logger.Log
	progressRepo progressRepo
}

func NewProgressService(log logger.Log, p progressRepo) *ProgressService {
	return &ProgressService{log: log, progressRepo: p}
}

func (s *ProgressService) Progress(ctx context.Context, id int64) (*models.UserProgress, error) {
	return s.progressRepo.ProgressByID(ctx, id)
}

func (s *ProgressService) RecordProgress(ctx context.Context, p models.UserProgress) (*models.UserProgress, error) {
	err := validation.First(
		validation.Field("user_id", p.UserID, "gt=0"),
		validation.Field("correct_answers", p.CorrectAnswers, "gte=0"),
		validation.Field("total_questions", p.TotalQuestions, "gte=0"),
	)
	if err != nil {
		return nil, err
	}
	if p.CorrectAnswers > p.TotalQuestions {
		return nil, app_errors.Validation("correct_answers must not exceed total_questions")
	}
	return s.progressRepo.CreateProgress(ctx, p)
}

func (s *ProgressService) UpdateProgress(ctx context.Context, id int64, upd models.ProgressUpdate) (*models.UserProgress, error) {
	err := validation.First(
		validation.Nullable("correct_answers", upd.CorrectAnswers, "gte=0", false),
		validation.Nullable("total_questions", upd.TotalQuestions, "gte=0", false),
	)
	if err != nil {
		return nil, err
	}
	return s.progressRepo.UpdateProgress(ctx, id, upd)
}

func (s *ProgressService) DeleteProgress(ctx context.Context, id int64) error {
	return s.progressRepo.DeleteProgress(ctx, id)
}
