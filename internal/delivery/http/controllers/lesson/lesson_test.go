package lesson

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
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

type fakeLessons struct {
	lessons   map[int64]models.Lesson
	nextID    int64
	createErr error
}

func newFakeLessons() *fakeLessons {
	return &fakeLessons{lessons: map[int64]models.Lesson{}, nextID: 1}
}

func (f *fakeLessons) LessonsByModule(_ context.Context, moduleID int64) ([]models.Lesson, error) {
	out := []models.Lesson{}
	for _, l := range f.lessons {
		if l.ModuleID == moduleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLessons) Lesson(_ context.Context, id int64) (*models.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, app_errors.ErrLessonNotFound
	}
	return &l, nil
}

func (f *fakeLessons) CreateLesson(_ context.Context, moduleID int64, l models.Lesson) (*models.Lesson, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	l.ID = f.nextID
	l.ModuleID = moduleID
	f.nextID++
	f.lessons[l.ID] = l
	return &l, nil
}

func (f *fakeLessons) UpdateLesson(_ context.Context, id int64, upd models.LessonUpdate) (*models.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, app_errors.ErrLessonNotFound
	}
	if upd.Title.IsSpecified() && !upd.Title.IsNull() {
		l.Title = upd.Title.MustGet()
	}
	f.lessons[id] = l
	return &l, nil
}

func (f *fakeLessons) DeleteLesson(_ context.Context, id int64) error {
	if _, ok := f.lessons[id]; !ok {
		return app_errors.ErrLessonNotFound
	}
	delete(f.lessons, id)
	return nil
}

type fakeContent struct {
	asset    *models.AudioAsset
	uploaded string
	data     []byte
}

func (f *fakeContent) Audio(_ context.Context, _ int64) (*models.AudioAsset, error) {
	if f.asset == nil {
		return nil, app_errors.ErrAudioNotFound
	}
	return f.asset, nil
}

func (f *fakeContent) UploadAudio(_ context.Context, lessonID int64, filename string, r io.Reader, _ int64) (*models.Lesson, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.uploaded = filename
	f.data = data
	path := "lessons/1/" + filename
	return &models.Lesson{ID: lessonID, Title: "Intro", AudioFilePath: &path}, nil
}

func newRouter(lessons ManagementService, content ContentService) *gin.Engine {
	log := logger.Discard()
	m := NewManagementHandler(log, lessons)
	ct := NewContentHandler(log, content)

	r := gin.New()
	r.GET("/modules/:module_id/lessons", m.LessonsByModule)
	r.POST("/modules/:module_id/lessons", m.CreateLesson)
	r.GET("/lessons/:lesson_id", m.LessonByID)
	r.PATCH("/lessons/:lesson_id", m.UpdateLesson)
	r.DELETE("/lessons/:lesson_id", m.DeleteLesson)
	r.GET("/lessons/:lesson_id/audio", ct.Audio)
	r.PUT("/lessons/:lesson_id/audio", ct.UploadAudio)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestLessonRoundTrip(t *testing.T) {
	r := newRouter(newFakeLessons(), &fakeContent{})

	w := do(r, http.MethodPost, "/modules/3/lessons", `{"title":"Intro","content":{"blocks":[]}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.Lesson](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(3), created.ModuleID)
	assert.JSONEq(t, `{"blocks":[]}`, string(created.Content))

	w = do(r, http.MethodGet, "/lessons/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Intro", decode[models.Lesson](t, w).Title)

	w = do(r, http.MethodPatch, "/lessons/1", `{"title":"Intro v2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Intro v2", decode[models.Lesson](t, w).Title)

	w = do(r, http.MethodDelete, "/lessons/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail":"Lesson deleted successfully"}`, w.Body.String())

	w = do(r, http.MethodGet, "/lessons/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Lesson not found"}`, w.Body.String())
}

func TestLessonsByModuleEmpty(t *testing.T) {
	r := newRouter(newFakeLessons(), &fakeContent{})

	w := do(r, http.MethodGet, "/modules/9/lessons", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, NoLessonsMessage, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestLessonsByModuleReturnsList(t *testing.T) {
	lessons := newFakeLessons()
	lessons.lessons[4] = models.Lesson{ID: 4, ModuleID: 2, Title: "Basics"}
	r := newRouter(lessons, &fakeContent{})

	w := do(r, http.MethodGet, "/modules/2/lessons", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Lesson](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Basics", list[0].Title)
}

func TestCreateLessonErrors(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		r := newRouter(newFakeLessons(), &fakeContent{})
		w := do(r, http.MethodPost, "/modules/1/lessons", `{"description":"x"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("title too long", func(t *testing.T) {
		r := newRouter(newFakeLessons(), &fakeContent{})
		w := do(r, http.MethodPost, "/modules/1/lessons", `{"title":"`+strings.Repeat("a", 101)+`"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown module", func(t *testing.T) {
		lessons := newFakeLessons()
		lessons.createErr = &app_errors.IntegrityError{Op: "creating lesson", Constraint: "lessons_module_id_fkey"}
		r := newRouter(lessons, &fakeContent{})
		w := do(r, http.MethodPost, "/modules/77/lessons", `{"title":"Intro"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Integrity error")
	})
}

func TestInvalidLessonID(t *testing.T) {
	r := newRouter(newFakeLessons(), &fakeContent{})

	for _, path := range []string{"/lessons/abc", "/lessons/0", "/lessons/-4"} {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestAudioWithoutFile(t *testing.T) {
	r := newRouter(newFakeLessons(), &fakeContent{})

	w := do(r, http.MethodGet, "/lessons/1/audio", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Audio file not found"}`, w.Body.String())
}

func TestAudioStreamsFile(t *testing.T) {
	content := &fakeContent{asset: &models.AudioAsset{
		Name: "intro.mp3",
		Size: 4,
		Body: io.NopCloser(bytes.NewReader([]byte("ID3x"))),
	}}
	r := newRouter(newFakeLessons(), content)

	w := do(r, http.MethodGet, "/lessons/1/audio", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AudioMediaType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=intro.mp3", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "ID3x", w.Body.String())
}

func TestUploadAudio(t *testing.T) {
	content := &fakeContent{}
	r := newRouter(newFakeLessons(), content)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "track.mp3")
	require.NoError(t, err)
	_, err = part.Write([]byte("audio"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/lessons/1/audio", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "track.mp3", content.uploaded)
	assert.Equal(t, []byte("audio"), content.data)
}

func TestUploadAudioWithoutFile(t *testing.T) {
	r := newRouter(newFakeLessons(), &fakeContent{})

	w := do(r, http.MethodPut, "/lessons/1/audio", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
