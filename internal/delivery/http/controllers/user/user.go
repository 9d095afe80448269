package user

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Service interface {
	User(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	OwnedCourses(ctx context.Context, id int64) (*models.UserCourses, error)
	EnrolledCourses(ctx context.Context, id int64) ([]models.Course, error)
	UserProgress(ctx context.Context, id int64) ([]models.UserProgress, error)
}

type Handler struct {
	log     logger.Log
	service Service
}

func NewHandler(l logger.Log, s Service) *Handler {
	return &Handler{
		log:     l,
		service: s,
	}
}

type createUserRequest struct {
	UserID    int64   `json:"user_id" binding:"required,gt=0"`
	Username  *string `json:"username"`
	Firstname *string `json:"firstname"`
}

// CreateUser registers a user under the id the client already knows it by.
func (h *Handler) CreateUser(c *gin.Context) {
	var input createUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), models.UserCreate{
		ID:        input.UserID,
		Username:  input.Username,
		Firstname: input.Firstname,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UserByID(c *gin.Context) {
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.service.User(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), userID, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "User deleted successfully")
}

func (h *Handler) OwnedCourses(c *gin.Context) {
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	courses, err := h.service.OwnedCourses(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *Handler) EnrolledCourses(c *gin.Context) {
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	courses, err := h.service.EnrolledCourses(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *Handler) Progress(c *gin.Context) {
	userID, ok := response.PathID(c, "user_id")
	if !ok {
		return
	}

	progress, err := h.service.UserProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
