package lesson

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NoLessonsMessage is the plain text body of an empty lesson listing.
const NoLessonsMessage = "No modules found"

type ManagementService interface {
	LessonsByModule(ctx context.Context, moduleID int64) ([]models.Lesson, error)
	Lesson(ctx context.Context, id int64) (*models.Lesson, error)
	CreateLesson(ctx context.Context, moduleID int64, lesson models.Lesson) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, id int64, upd models.LessonUpdate) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id int64) error
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(log logger.Log, service ManagementService) *ManagementHandler {
	return &ManagementHandler{log: log, service: service}
}

type createLessonRequest struct {
	Title         string          `json:"title" binding:"required,max=100"`
	Description   *string         `json:"description"`
	Position      *int            `json:"position"`
	Content       json.RawMessage `json:"content"`
	ImageURL      *string         `json:"image_url" binding:"omitempty,max=255"`
	AudioFilePath *string         `json:"audio_file_path" binding:"omitempty,max=255"`
}

func (r createLessonRequest) lesson() models.Lesson {
	content := r.Content
	if string(content) == "null" {
		content = nil
	}
	return models.Lesson{
		Title:         r.Title,
		Description:   r.Description,
		Position:      r.Position,
		Content:       content,
		ImageURL:      r.ImageURL,
		AudioFilePath: r.AudioFilePath,
	}
}

func (h *ManagementHandler) LessonsByModule(c *gin.Context) {
	moduleID, ok := response.PathID(c, "module_id")
	if !ok {
		return
	}

	lessons, err := h.service.LessonsByModule(c.Request.Context(), moduleID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	if len(lessons) == 0 {
		c.String(http.StatusOK, NoLessonsMessage)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

func (h *ManagementHandler) LessonByID(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	lesson, err := h.service.Lesson(c.Request.Context(), lessonID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *ManagementHandler) CreateLesson(c *gin.Context) {
	moduleID, ok := response.PathID(c, "module_id")
	if !ok {
		return
	}

	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	lesson, err := h.service.CreateLesson(c.Request.Context(), moduleID, req.lesson())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *ManagementHandler) UpdateLesson(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	var upd models.LessonUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	lesson, err := h.service.UpdateLesson(c.Request.Context(), lessonID, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *ManagementHandler) DeleteLesson(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	if err := h.service.DeleteLesson(c.Request.Context(), lessonID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Lesson deleted successfully")
}
