package query

import (
	"MiniLearn/internal/models"
	"MiniLearn/internal/storage/elastic"
	"MiniLearn/pkg/logger"
	"context"
	"fmt"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]models.Course, int, error)
	CoursesByIDs(ctx context.Context, ids []int64) ([]models.Course, error)
}

type moduleRepo interface {
	ModuleByID(ctx context.Context, id int64) (*models.Module, error)
	ModulesByCourse(ctx context.Context, courseID int64) ([]models.Module, error)
}

type searchRepo interface {
	Search(ctx context.Context, query string, from, size int) ([]int64, error)
	Count(ctx context.Context, query string) (int, error)
}

type CourseQueryService struct {
	log        logger.Log
	courseRepo courseRepo
	moduleRepo moduleRepo
	searchRepo searchRepo
}

func NewCourseQueryService(log logger.Log, c courseRepo, m moduleRepo, s searchRepo) *CourseQueryService {
	return &CourseQueryService{
		log:        log,
		courseRepo: c,
		moduleRepo: m,
		searchRepo: s,
	}
}

// pageBounds clamps limit to (0, MaxPageSize] and offset to >= 0.
func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *CourseQueryService) Course(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.CourseByID(ctx, id)
}

func (s *CourseQueryService) Courses(ctx context.Context, limit, offset int) (*models.CoursePage, error) {
	limit, offset = pageBounds(limit, offset)
	courses, total, err := s.courseRepo.ListCourses(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.CoursePage{Courses: courses, Total: total}, nil
}

// SearchCourses pages over search hits; courses deleted since they were
// indexed are skipped. Pages beyond the index result window come back empty
// without querying the hits.
func (s *CourseQueryService) SearchCourses(ctx context.Context, query string, limit, offset int) (*models.CoursePage, error) {
	limit, offset = pageBounds(limit, offset)

	total, err := s.searchRepo.Count(ctx, query)
	if err != nil {
		s.log.ErrorErr("SearchCourses: count failed", err)
		total = -1
	}

	empty := &models.CoursePage{Courses: []models.Course{}, Total: max(total, 0)}
	if offset+limit > elastic.MaxResultWindow || (total >= 0 && offset >= total) {
		return empty, nil
	}

	ids, err := s.searchRepo.Search(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	if len(ids) == 0 {
		return empty, nil
	}
	if total < 0 {
		total = offset + len(ids)
	}

	courses, err := s.courseRepo.CoursesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &models.CoursePage{Courses: courses, Total: total}, nil
}

func (s *CourseQueryService) Module(ctx context.Context, id int64) (*models.Module, error) {
	return s.moduleRepo.ModuleByID(ctx, id)
}

func (s *CourseQueryService) Modules(ctx context.Context, courseID int64) ([]models.Module, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.moduleRepo.ModulesByCourse(ctx, courseID)
}
