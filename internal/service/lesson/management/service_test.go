package management

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
	"strings"
	"testing"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLessons struct {
	lessons map[int64]models.Lesson
	nextID  int64
}

func newFakeLessons() *fakeLessons {
	return &fakeLessons{lessons: map[int64]models.Lesson{}}
}

func (f *fakeLessons) GetLessonByID(_ context.Context, id int64) (*models.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, app_errors.ErrLessonNotFound
	}
	return &l, nil
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

func (f *fakeLessons) CreateLesson(_ context.Context, l models.Lesson) (*models.Lesson, error) {
	f.nextID++
	l.ID = f.nextID
	f.lessons[l.ID] = l
	return &l, nil
}

func (f *fakeLessons) UpdateLesson(_ context.Context, id int64, upd models.LessonUpdate) (*models.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, app_errors.ErrLessonNotFound
	}
	if upd.Title.IsSpecified() {
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

func TestLessonRoundTrip(t *testing.T) {
	svc := NewLessonManagementService(logger.Discard(), newFakeLessons())
	ctx := context.Background()

	created, err := svc.CreateLesson(ctx, 3, models.Lesson{Title: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ModuleID)

	got, err := svc.Lesson(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro", got.Title)

	updated, err := svc.UpdateLesson(ctx, created.ID, models.LessonUpdate{Title: nullable.NewNullableWithValue("Intro v2")})
	require.NoError(t, err)
	assert.Equal(t, "Intro v2", updated.Title)

	require.NoError(t, svc.DeleteLesson(ctx, created.ID))
	_, err = svc.Lesson(ctx, created.ID)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}

func TestLessonsByEmptyModule(t *testing.T) {
	svc := NewLessonManagementService(logger.Discard(), newFakeLessons())

	lessons, err := svc.LessonsByModule(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, lessons)
}

func TestCreateLessonValidation(t *testing.T) {
	svc := NewLessonManagementService(logger.Discard(), newFakeLessons())
	long := strings.Repeat("u", 256)

	_, err := svc.CreateLesson(context.Background(), 1, models.Lesson{})
	assert.ErrorIs(t, err, app_errors.ErrValidation)

	_, err = svc.CreateLesson(context.Background(), 1, models.Lesson{Title: "ok", ImageURL: &long})
	assert.ErrorIs(t, err, app_errors.ErrValidation)
	assert.Contains(t, err.Error(), "image_url")
}

func TestUpdateLessonNullTitle(t *testing.T) {
	svc := NewLessonManagementService(logger.Discard(), newFakeLessons())

	_, err := svc.UpdateLesson(context.Background(), 1, models.LessonUpdate{Title: nullable.NewNullNullable[string]()})
	assert.ErrorIs(t, err, app_errors.ErrValidation)
}

func TestDeleteMissingLesson(t *testing.T) {
	svc := NewLessonManagementService(logger.Discard(), newFakeLessons())

	assert.ErrorIs(t, svc.DeleteLesson(context.Background(), 5), app_errors.ErrLessonNotFound)
}
