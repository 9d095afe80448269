package course

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QueryService interface {
	Course(ctx context.Context, id int64) (*models.Course, error)
	Courses(ctx context.Context, limit, offset int) (*models.CoursePage, error)
	SearchCourses(ctx context.Context, query string, limit, offset int) (*models.CoursePage, error)
	Module(ctx context.Context, id int64) (*models.Module, error)
	Modules(ctx context.Context, courseID int64) ([]models.Module, error)
}

type QueryHandler struct {
	log     logger.Log
	service QueryService
}

func NewQueryHandler(l logger.Log, s QueryService) *QueryHandler {
	return &QueryHandler{
		log:     l,
		service: s,
	}
}

// page reads limit and offset; zero values are replaced by the service defaults.
func page(c *gin.Context) (limit, offset int, ok bool) {
	if limit, ok = response.QueryInt(c, "limit", 0); !ok {
		return 0, 0, false
	}
	if offset, ok = response.QueryInt(c, "offset", 0); !ok {
		return 0, 0, false
	}
	return limit, offset, true
}

func (h *QueryHandler) ListCourses(c *gin.Context) {
	limit, offset, ok := page(c)
	if !ok {
		return
	}

	courses, err := h.service.Courses(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *QueryHandler) SearchCourses(c *gin.Context) {
	limit, offset, ok := page(c)
	if !ok {
		return
	}

	courses, err := h.service.SearchCourses(c.Request.Context(), c.Query("query"), limit, offset)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *QueryHandler) CourseByID(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	course, err := h.service.Course(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *QueryHandler) Modules(c *gin.Context) {
	courseID, ok := response.PathID(c, "course_id")
	if !ok {
		return
	}

	modules, err := h.service.Modules(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *QueryHandler) ModuleByID(c *gin.Context) {
	moduleID, ok := response.PathID(c, "module_id")
	if !ok {
		return
	}

	module, err := h.service.Module(c.Request.Context(), moduleID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, module)
}
