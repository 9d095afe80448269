package user

import (
	"MiniLearn/internal/models"
	"MiniLearn/internal/validation"
	"MiniLearn/pkg/logger"
	"context"
)

type userRepo interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type courseRepo interface {
	CoursesByUser(ctx context.Context, userID int64) ([]models.Course, error)
}

type enrollmentRepo interface {
	EnrolledCourses(ctx context.Context, userID int64) ([]models.Course, error)
}

type progressRepo interface {
	ProgressByUser(ctx context.Context, userID int64) ([]models.UserProgress, error)
}

type UserService struct {
	log          logger.Log
	userRepo     userRepo
	courseRepo   courseRepo
	enrollRepo   enrollmentRepo
	progressRepo progressRepo
}

func NewUserService(log logger.Log, u userRepo, c courseRepo, e enrollmentRepo, p progressRepo) *UserService {
	return &UserService{
		log:          log,
		userRepo:     u,
		courseRepo:   c,
		enrollRepo:   e,
		progressRepo: p,
	}
}

func (s *UserService) User(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.UserByID(ctx, id)
}

// CreateUser registers a user under its external id. Balances, level and
// registration date are always server defaults.
func (s *UserService) CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error) {
	if err := validation.Field("user_id", in.ID, "gt=0"); err != nil {
		return nil, err
	}
	user, err := s.userRepo.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	err := validation.First(
		validation.Nullable("tokens_balance", upd.TokensBalance, "gte=0", false),
		validation.Nullable("experience_points", upd.ExperiencePoints, "gte=0", false),
		validation.Nullable("level", upd.Level, "gte=1", false),
	)
	if err != nil {
		return nil, err
	}
	return s.userRepo.UpdateUser(ctx, id, upd)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}

// OwnedCourses lists the courses the user created, with their count.
func (s *UserService) OwnedCourses(ctx context.Context, id int64) (*models.UserCourses, error) {
	if _, err := s.userRepo.UserByID(ctx, id); err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.CoursesByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.UserCourses{Courses: courses, Total: len(courses)}, nil
}

func (s *UserService) EnrolledCourses(ctx context.Context, id int64) ([]models.Course, error) {
	if _, err := s.userRepo.UserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.enrollRepo.EnrolledCourses(ctx, id)
}

func (s *UserService) UserProgress(ctx context.Context, id int64) ([]models.UserProgress, error) {
	if _, err := s.userRepo.UserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.progressRepo.ProgressByUser(ctx, id)
}
