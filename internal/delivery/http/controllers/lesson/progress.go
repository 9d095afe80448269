package lesson

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProgressService interface {
	Progress(ctx context.Context, id int64) (*models.UserProgress, error)
	RecordProgress(ctx context.Context, p models.UserProgress) (*models.UserProgress, error)
	UpdateProgress(ctx context.Context, id int64, upd models.ProgressUpdate) (*models.UserProgress, error)
	DeleteProgress(ctx context.Context, id int64) error
}

type ProgressHandler struct {
	log     logger.Log
	service ProgressService
}

func NewProgressHandler(log logger.Log, service ProgressService) *ProgressHandler {
	return &ProgressHandler{log: log, service: service}
}

type recordProgressRequest struct {
	UserID         int64  `json:"user_id" binding:"required,gt=0"`
	LessonID       *int64 `json:"lesson_id"`
	CorrectAnswers int    `json:"correct_answers" binding:"gte=0"`
	TotalQuestions int    `json:"total_questions" binding:"gte=0"`
}

func (h *ProgressHandler) RecordProgress(c *gin.Context) {
	var req recordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	p, err := h.service.RecordProgress(c.Request.Context(), models.UserProgress{
		UserID:         req.UserID,
		LessonID:       req.LessonID,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProgressHandler) ProgressByID(c *gin.Context) {
	id, ok := response.PathID(c, "progress_id")
	if !ok {
		return
	}

	p, err := h.service.Progress(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	id, ok := response.PathID(c, "progress_id")
	if !ok {
		return
	}

	var upd models.ProgressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	p, err := h.service.UpdateProgress(c.Request.Context(), id, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProgressHandler) DeleteProgress(c *gin.Context) {
	id, ok := response.PathID(c, "progress_id")
	if !ok {
		return
	}

	if err := h.service.DeleteProgress(c.Request.Context(), id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Progress deleted successfully")
}
