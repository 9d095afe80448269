package management

import (
	"MiniLearn/internal/models"
	"MiniLearn/internal/validation"
	"MiniLearn/pkg/logger"
	"context"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type moduleRepo interface {
	CreateModule(ctx context.Context, module models.Module) (*models.Module, error)
	UpdateModule(ctx context.Context, id int64, upd models.ModuleUpdate) (*models.Module, error)
	DeleteModule(ctx context.Context, id int64) error
}

type searchIndex interface {
	Index(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id int64) error
}

type CourseManagementService struct {
	log        logger.Log
	courseRepo courseRepo
	moduleRepo moduleRepo
	index      searchIndex
}

func NewCourseManagementService(log logger.Log, c courseRepo, m moduleRepo, index searchIndex) *CourseManagementService {
	return &CourseManagementService{
		log:        log,
		courseRepo: c,
		moduleRepo: m,
		index:      index,
	}
}

func (s *CourseManagementService) CreateCourse(ctx context.Context, course models.Course) (*models.Course, error) {
	if err := validation.Field("title", course.Title, "required,max=100"); err != nil {
		return nil, err
	}
	created, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}
	s.reindex(ctx, *created)
	return created, nil
}

func (s *CourseManagementService) UpdateCourse(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	if err := validation.Nullable("title", upd.Title, "required,max=100", false); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.UpdateCourse(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.reindex(ctx, *course)
	return course, nil
}

func (s *CourseManagementService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	if err := s.index.Delete(ctx, id); err != nil {
		s.log.ErrorErr("DeleteCourse: failed to remove course from search index", err, "course_id", id)
	}
	return nil
}

// reindex never fails the request, the database stays the source of truth.
func (s *CourseManagementService) reindex(ctx context.Context, course models.Course) {
	if err := s.index.Index(ctx, course); err != nil {
		s.log.ErrorErr("failed to index course", err, "course_id", course.ID)
	}
}

func (s *CourseManagementService) CreateModule(ctx context.Context, courseID int64, module models.Module) (*models.Module, error) {
	if err := validation.Field("title", module.Title, "required,max=100"); err != nil {
		return nil, err
	}
	module.CourseID = courseID
	return s.moduleRepo.CreateModule(ctx, module)
}

func (s *CourseManagementService) UpdateModule(ctx context.Context, id int64, upd models.ModuleUpdate) (*models.Module, error) {
	if err := validation.Nullable("title", upd.Title, "required,max=100", false); err != nil {
		return nil, err
	}
	return s.moduleRepo.UpdateModule(ctx, id, upd)
}

func (s *CourseManagementService) DeleteModule(ctx context.Context, id int64) error {
	return s.moduleRepo.DeleteModule(ctx, id)
}
