package course

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, userID int64) (*models.CourseEnrollment, error)
	Unenroll(ctx context.Context, courseID, userID int64) error
	Enrollments(ctx context.Context, courseID int64) ([]models.CourseEnrollment, error)
}

type EnrollmentHandler struct {
	log     logger.Log
	service EnrollmentService
}

func NewEnrollmentHandler(l logger.Log, s EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		log:     l,
		service: s,
	}
}

type enrollRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	var input enrollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), courseID, input.UserID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.service.Unenroll(c.Request.Context(), courseID, userID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Enrollment deleted successfully")
}

func (h *EnrollmentHandler) Enrollments(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	enrollments, err := h.service.Enrollments(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
