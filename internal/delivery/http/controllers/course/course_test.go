package course

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

type fakeCourses struct {
	created     models.Course
	deleted     []int64
	limit       int
	offset      int
	query       string
	enrolled    [2]int64
	unenrollErr error
}

func (f *fakeCourses) CreateCourse(_ context.Context, c models.Course) (*models.Course, error) {
	f.created = c
	c.ID = 5
	return &c, nil
}

func (f *fakeCourses) UpdateCourse(_ context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	c := models.Course{ID: id, Title: "old"}
	if upd.Title.IsSpecified() && !upd.Title.IsNull() {
		c.Title = upd.Title.MustGet()
	}
	if upd.Description.IsSpecified() && upd.Description.IsNull() {
		c.Description = nil
	}
	return &c, nil
}

func (f *fakeCourses) DeleteCourse(_ context.Context, id int64) error {
	if id == 404 {
		return app_errors.ErrCourseNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCourses) CreateModule(_ context.Context, courseID int64, m models.Module) (*models.Module, error) {
	m.ID = 8
	m.CourseID = courseID
	return &m, nil
}

func (f *fakeCourses) UpdateModule(_ context.Context, id int64, _ models.ModuleUpdate) (*models.Module, error) {
	return &models.Module{ID: id, Title: "m"}, nil
}

func (f *fakeCourses) DeleteModule(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeCourses) Course(_ context.Context, id int64) (*models.Course, error) {
	return &models.Course{ID: id, Title: "Go"}, nil
}

func (f *fakeCourses) Courses(_ context.Context, limit, offset int) (*models.CoursePage, error) {
	f.limit, f.offset = limit, offset
	return &models.CoursePage{Courses: []models.Course{{ID: 1, Title: "Go"}}, Total: 1}, nil
}

func (f *fakeCourses) SearchCourses(_ context.Context, query string, limit, offset int) (*models.CoursePage, error) {
	f.query, f.limit, f.offset = query, limit, offset
	return &models.CoursePage{Courses: []models.Course{}}, nil
}

func (f *fakeCourses) Module(_ context.Context, id int64) (*models.Module, error) {
	return nil, app_errors.ErrModuleNotFound
}

func (f *fakeCourses) Modules(_ context.Context, courseID int64) ([]models.Module, error) {
	return []models.Module{{ID: 1, CourseID: courseID, Title: "Basics"}}, nil
}

func (f *fakeCourses) Enroll(_ context.Context, courseID, userID int64) (*models.CourseEnrollment, error) {
	f.enrolled = [2]int64{courseID, userID}
	return &models.CourseEnrollment{CourseID: courseID, UserID: userID}, nil
}

func (f *fakeCourses) Unenroll(_ context.Context, _, _ int64) error {
	return f.unenrollErr
}

func (f *fakeCourses) Enrollments(_ context.Context, courseID int64) ([]models.CourseEnrollment, error) {
	return []models.CourseEnrollment{{CourseID: courseID, UserID: 42}}, nil
}

func newRouter(f *fakeCourses) *gin.Engine {
	log := logger.Discard()
	m := NewManagementHandler(log, f)
	q := NewQueryHandler(log, f)
	e := NewEnrollmentHandler(log, f)

	r := gin.New()
	r.GET("/courses", q.ListCourses)
	r.POST("/courses", m.CreateCourse)
	r.GET("/courses/search", q.SearchCourses)
	r.GET("/courses/:course_id", q.CourseByID)
	r.PATCH("/courses/:course_id", m.UpdateCourse)
	r.DELETE("/courses/:course_id", m.DeleteCourse)
	r.GET("/courses/:course_id/modules", q.Modules)
	r.POST("/courses/:course_id/modules", m.CreateModule)
	r.GET("/courses/:course_id/enrollments", e.Enrollments)
	r.POST("/courses/:course_id/enrollments", e.Enroll)
	r.DELETE("/courses/:course_id/enrollments/:user_id", e.Unenroll)
	r.GET("/modules/:module_id", q.ModuleByID)
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

func TestCreateCourse(t *testing.T) {
	f := &fakeCourses{}
	r := newRouter(f)

	w := do(r, http.MethodPost, "/courses", `{"title":"Go","description":"basics","user_id":42}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Go", f.created.Title)
	require.NotNil(t, f.created.UserID)
	assert.Equal(t, int64(42), *f.created.UserID)

	var c models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, int64(5), c.ID)
}

func TestCreateCourseWithoutTitle(t *testing.T) {
	w := do(newRouter(&fakeCourses{}), http.MethodPost, "/courses", `{"description":"basics"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateCourse(t *testing.T) {
	w := do(newRouter(&fakeCourses{}), http.MethodPatch, "/courses/3", `{"title":"Go 2","description":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	var c models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, "Go 2", c.Title)
	assert.Nil(t, c.Description)
}

func TestDeleteCourse(t *testing.T) {
	f := &fakeCourses{}
	r := newRouter(f)

	w := do(r, http.MethodDelete, "/courses/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{3}, f.deleted)

	w = do(r, http.MethodDelete, "/courses/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Course not found"}`, w.Body.String())
}

func TestListCoursesPaging(t *testing.T) {
	f := &fakeCourses{}
	r := newRouter(f)

	w := do(r, http.MethodGet, "/courses?limit=10&offset=20", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, f.limit)
	assert.Equal(t, 20, f.offset)
	assert.JSONEq(t, `{"courses":[{"course_id":1,"user_id":null,"title":"Go","description":null,"created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}],"total":1}`, w.Body.String())

	w = do(r, http.MethodGet, "/courses?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCourses(t *testing.T) {
	f := &fakeCourses{}
	w := do(newRouter(f), http.MethodGet, "/courses/search?query=golang&limit=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "golang", f.query)
	assert.Equal(t, 5, f.limit)
	assert.Equal(t, 0, f.offset)
}

func TestModules(t *testing.T) {
	r := newRouter(&fakeCourses{})

	w := do(r, http.MethodGet, "/courses/2/modules", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Basics"`)

	w = do(r, http.MethodPost, "/courses/2/modules", `{"title":"Advanced","position":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	var m models.Module
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, int64(2), m.CourseID)
	assert.Equal(t, "Advanced", m.Title)

	w = do(r, http.MethodGet, "/modules/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollment(t *testing.T) {
	f := &fakeCourses{}
	r := newRouter(f)

	w := do(r, http.MethodPost, "/courses/7/enrollments", `{"user_id":42}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [2]int64{7, 42}, f.enrolled)

	w = do(r, http.MethodPost, "/courses/7/enrollments", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodGet, "/courses/7/enrollments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)

	w = do(r, http.MethodDelete, "/courses/7/enrollments/42", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.unenrollErr = app_errors.ErrEnrollmentNotFound
	w = do(r, http.MethodDelete, "/courses/7/enrollments/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
