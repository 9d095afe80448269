package course

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ManagementService interface {
	CreateCourse(ctx context.Context, course models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	CreateModule(ctx context.Context, courseID int64, module models.Module) (*models.Module, error)
	UpdateModule(ctx context.Context, id int64, upd models.ModuleUpdate) (*models.Module, error)
	DeleteModule(ctx context.Context, id int64) error
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(l logger.Log, s ManagementService) *ManagementHandler {
	return &ManagementHandler{
		log:     l,
		service: s,
	}
}

type newCourseRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id" binding:"omitempty,gt=0"`
}

type newModuleRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
}

func (h *ManagementHandler) CreateCourse(c *gin.Context) {
	var input newCourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), models.Course{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *ManagementHandler) UpdateCourse(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	var upd models.CourseUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), courseID, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse drops the course together with its modules, lessons, quizzes
// and enrollments.
func (h *ManagementHandler) DeleteCourse(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), courseID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Course deleted successfully")
}

func (h *ManagementHandler) CreateModule(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	var input newModuleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	module, err := h.service.CreateModule(c.Request.Context(), courseID, models.Module{
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ManagementHandler) UpdateModule(c *gin.Context) {
	moduleID, ok := response.PathID(c, "module_id")
	if !ok {
		return
	}

	var upd models.ModuleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	module, err := h.service.UpdateModule(c.Request.Context(), moduleID, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ManagementHandler) DeleteModule(c *gin.Context) {
	moduleID, ok := response.PathID(c, "module_id")
	if !ok {
		return
	}

	if err := h.service.DeleteModule(c.Request.Context(), moduleID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Module deleted successfully")
}
