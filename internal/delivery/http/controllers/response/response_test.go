package response

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	Error(c, logger.Discard(), err)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["detail"]
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", app_errors.ErrLessonNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", app_errors.ErrUserNotFound), http.StatusNotFound},
		{"missing asset", app_errors.ErrAudioNotFound, http.StatusNotFound},
		{"integrity", &app_errors.IntegrityError{Op: "creating lesson", Constraint: "lessons_module_id_fkey"}, http.StatusBadRequest},
		{"validation", app_errors.Validation("title is required"), http.StatusUnprocessableEntity},
		{"other", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := run(tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Lesson not found", detail(t, run(app_errors.ErrLessonNotFound)))
	assert.Equal(t, "Audio file not found", detail(t, run(app_errors.ErrAudioNotFound)))
	assert.Equal(t, "Integrity error while creating lesson (lessons_module_id_fkey)",
		detail(t, run(&app_errors.IntegrityError{Op: "creating lesson", Constraint: "lessons_module_id_fkey"})))
	assert.Equal(t, internalErrorMessage, detail(t, run(errors.New("password=secret"))))
}

func TestPathID(t *testing.T) {
	for raw, ok := range map[string]bool{"12": true, "abc": false, "0": false, "-4": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "lesson_id", Value: raw}}

		id, got := PathID(c, "lesson_id")
		assert.Equal(t, ok, got, raw)
		if ok {
			assert.Equal(t, int64(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
