package quiz

import (
	"MiniLearn/internal/delivery/http/controllers/response"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Service interface {
	Quiz(ctx context.Context, id int64) (*models.Quiz, error)
	QuizByLesson(ctx context.Context, lessonID int64) (*models.Quiz, error)
	CreateQuiz(ctx context.Context, lessonID int64, quiz models.Quiz) (*models.Quiz, error)
	UpdateQuiz(ctx context.Context, id int64, upd models.QuizUpdate) (*models.Quiz, error)
	DeleteQuiz(ctx context.Context, id int64) error
	Question(ctx context.Context, id int64) (*models.Question, error)
	Questions(ctx context.Context, quizID int64) ([]models.Question, error)
	CreateQuestion(ctx context.Context, quizID int64, q models.Question) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, upd models.QuestionUpdate) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	Submit(ctx context.Context, quizID int64, sub models.QuizSubmission) (*models.UserProgress, error)
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

type newQuizRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
}

type newQuestionRequest struct {
	QuestionText  string          `json:"question_text" binding:"required"`
	QuestionType  string          `json:"question_type" binding:"required,oneof=multiple_choice true_false"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer *string         `json:"correct_answer"`
}

// Answers are keyed by question id.
type submitRequest struct {
	UserID  int64            `json:"user_id" binding:"required,gt=0"`
	Answers map[int64]string `json:"answers"`
}

func (h *Handler) QuizByLesson(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	quiz, err := h.service.QuizByLesson(c.Request.Context(), lessonID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *Handler) CreateQuiz(c *gin.Context) {
	lessonID, ok := response.PathID(c, "lesson_id")
	if !ok {
		return
	}

	var input newQuizRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	quiz, err := h.service.CreateQuiz(c.Request.Context(), lessonID, models.Quiz{
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *Handler) QuizByID(c *gin.Context) {
	quizID, ok := response.PathID(c, "quiz_id")
	if !ok {
		return
	}

	quiz, err := h.service.Quiz(c.Request.Context(), quizID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *Handler) UpdateQuiz(c *gin.Context) {
	quizID, ok := response.PathID(c, "quiz_id")
	if !ok {
		return
	}

	var upd models.QuizUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	quiz, err := h.service.UpdateQuiz(c.Request.Context(), quizID, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(c *gin.Context) {
	quizID, ok := response.PathID(c, "quiz_id")
	if !ok {
		return
	}

	if err := h.service.DeleteQuiz(c.Request.Context(), quizID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Quiz deleted successfully")
}

func (h *Handler) Questions(c *gin.Context) {
	quizID, ok := response.PathID(c, "quiz_id")
	if !ok {
		return
	}

	questions, err := h.service.Questions(c.Request.Context(), quizID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *Handler) CreateQuestion(c *gin.Context) {
	quizID, ok := response.PathID(c, "quiz_id")
	if !ok {
		return
	}

	var input newQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}
	options := input.Options
	if string(options) == "null" {
		options = nil
	}

	question, err := h.service.CreateQuestion(c.Request.Context(), quizID, models.Question{
		QuestionText:  input.QuestionText,
		QuestionType:  input.QuestionType,
		Options:       options,
		CorrectAnswer: input.CorrectAnswer,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *Handler) QuestionByID(c *gin.Context) {
	questionID, ok := response.PathID(c, "question_id")
	if !ok {
		return
	}

	question, err := h.service.Question(c.Request.Context(), questionID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *Handler) UpdateQuestion(c *gin.Context) {
	questionID, ok := response.PathID(c, "question_id")
	if !ok {
		return
	}

	var upd models.QuestionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}

	question, err := h.service.UpdateQuestion(c.Request.Context(), questionID, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	questionID, ok := response.PathID(c, "question_id")
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Detail(c, http.StatusOK, "Question deleted successfully")
}

// Submit grades the answers and stores the result as a progress entry.
func (h *Handler) Submit(c *gin.Context) {
	quizID, ok := response.PathID(c, "quiz_id")
	if !ok {
		return
	}

	var input submitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	progress, err := h.service.Submit(c.Request.Context(), quizID, models.QuizSubmission{
		UserID:  input.UserID,
		Answers: input.Answers,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
