package lesson

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentService interface {
	Audio(ctx context.Context, lessonID int64) (*models.AudioAsset, error)
	UploadAudio(ctx context.Context, lessonID int64, filename string, r io.Reader, size int64) (*models.Lesson, error)
}

type ContentHandler struct {
	log     logger.Log
	service ContentService
}

func NewContentHandler(log logger.Log, service ContentService) *ContentHandler {
	return &ContentHandler{log: log, service: service}
}

// Audio streams the lesson audio as an audio/mpeg attachment named after the
// stored file.
func (h *ContentHandler) Audio(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	asset, err := h.service.Audio(c.Request.Context(), lessonID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	defer asset.Body.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": asset.Name})
	c.DataFromReader(http.StatusOK, asset.Size, models.AudioMediaType, asset.Body, map[string]string{
		"Content-Disposition": disposition,
	})
}

func (h *ContentHandler) UploadAudio(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	defer file.Close()

	lesson, err := h.service.UploadAudio(c.Request.Context(), lessonID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}
