package quiz

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeQuizzes struct {
	submission models.QuizSubmission
	question   models.Question
}

func (f *fakeQuizzes) Quiz(_ context.Context, id int64) (*models.Quiz, error) {
	return &models.Quiz{ID: id, LessonID: 1, Title: "Check"}, nil
}

func (f *fakeQuizzes) QuizByLesson(_ context.Context, lessonID int64) (*models.Quiz, error) {
	return nil, app_errors.ErrQuizNotFound
}

func (f *fakeQuizzes) CreateQuiz(_ context.Context, lessonID int64, q models.Quiz) (*models.Quiz, error) {
	q.ID = 2
	q.LessonID = lessonID
	return &q, nil
}

func (f *fakeQuizzes) UpdateQuiz(_ context.Context, id int64, _ models.QuizUpdate) (*models.Quiz, error) {
	return &models.Quiz{ID: id}, nil
}

func (f *fakeQuizzes) DeleteQuiz(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeQuizzes) Question(_ context.Context, id int64) (*models.Question, error) {
	return &models.Question{ID: id}, nil
}

func (f *fakeQuizzes) Questions(_ context.Context, quizID int64) ([]models.Question, error) {
	return []models.Question{}, nil
}

func (f *fakeQuizzes) CreateQuestion(_ context.Context, quizID int64, q models.Question) (*models.Question, error) {
	q.ID = 10
	q.QuizID = quizID
	f.question = q
	return &q, nil
}

func (f *fakeQuizzes) UpdateQuestion(_ context.Context, id int64, _ models.QuestionUpdate) (*models.Question, error) {
	return &models.Question{ID: id}, nil
}

func (f *fakeQuizzes) DeleteQuestion(_ context.Context, _ int64) error {
	return app_errors.ErrQuestionNotFound
}

func (f *fakeQuizzes) Submit(_ context.Context, quizID int64, sub models.QuizSubmission) (*models.UserProgress, error) {
	f.submission = sub
	lessonID := int64(1)
	return &models.UserProgress{ID: 3, UserID: sub.UserID, LessonID: &lessonID, CorrectAnswers: 1, TotalQuestions: 2}, nil
}

func newRouter(f *fakeQuizzes) *gin.Engine {
	h := NewHandler(logger.Discard(), f)
	r := gin.New()
	r.GET("/lessons/:lesson_id/quiz", h.QuizByLesson)
	r.POST("/lessons/:lesson_id/quiz", h.CreateQuiz)
	r.GET("/quizzes/:quiz_id", h.QuizByID)
	r.POST("/quizzes/:quiz_id/questions", h.CreateQuestion)
	r.POST("/quizzes/:quiz_id/submit", h.Submit)
	r.DELETE("/questions/:question_id", h.DeleteQuestion)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuizByLessonMissing(t *testing.T) {
	w := do(newRouter(&fakeQuizzes{}), http.MethodGet, "/lessons/1/quiz", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Quiz not found"}`, w.Body.String())
}

func TestCreateQuiz(t *testing.T) {
	w := do(newRouter(&fakeQuizzes{}), http.MethodPost, "/lessons/4/quiz", `{"title":"Check"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var q models.Quiz
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, int64(4), q.LessonID)
}

func TestCreateQuestion(t *testing.T) {
	f := &fakeQuizzes{}
	r := newRouter(f)

	w := do(r, http.MethodPost, "/quizzes/2/questions",
		`{"question_text":"2+2?","question_type":"multiple_choice","options":["3","4"],"correct_answer":"4"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `["3","4"]`, string(f.question.Options))
	require.NotNil(t, f.question.CorrectAnswer)
	assert.Equal(t, "4", *f.question.CorrectAnswer)

	w = do(r, http.MethodPost, "/quizzes/2/questions", `{"question_text":"2+2?","question_type":"essay"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubmitParsesQuestionIDs(t *testing.T) {
	f := &fakeQuizzes{}
	w := do(newRouter(f), http.MethodPost, "/quizzes/2/submit", `{"user_id":42,"answers":{"10":"4","11":"true"}}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(42), f.submission.UserID)
	assert.Equal(t, map[int64]string{10: "4", 11: "true"}, f.submission.Answers)
	assert.Contains(t, w.Body.String(), `"total_questions":2`)
}

func TestSubmitRejectsBadKeys(t *testing.T) {
	w := do(newRouter(&fakeQuizzes{}), http.MethodPost, "/quizzes/2/submit", `{"user_id":42,"answers":{"first":"4"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteMissingQuestion(t *testing.T) {
	w := do(newRouter(&fakeQuizzes{}), http.MethodDelete, "/questions/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
