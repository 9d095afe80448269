package elastic

import (
	"MiniLearn/internal/models"
	"context"
)

// NoopCourseSearch stands in when no Elasticsearch hosts are configured:
// writes are dropped and searches find nothing.
type NoopCourseSearch struct{}

func (NoopCourseSearch) CreateIndexIfNotExist(context.Context) error { return nil }

func (NoopCourseSearch) Index(context.Context, models.Course) error { return nil }

func (NoopCourseSearch) Delete(context.Context, int64) error { return nil }

func (NoopCourseSearch) Count(context.Context, string) (int, error) { return 0, nil }

func (NoopCourseSearch) Search(context.Context, string, int, int) ([]int64, error) {
	return []int64{}, nil
}
