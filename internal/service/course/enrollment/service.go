package enrollment

import (
	"MiniLearn/internal/models"
	"MiniLearn/pkg/logger"
	"context"
)

type enrollmentRepo interface {
	Enroll(ctx context.Context, courseID, userID int64) (*models.CourseEnrollment, error)
	Unenroll(ctx context.Context, courseID, userID int64) error
	EnrollmentsByCourse(ctx context.Context, courseID int64) ([]models.CourseEnrollment, error)
}

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
}

type EnrollmentService struct {
	log        logger.Log
	enrollRepo enrollmentRepo
	courseRepo courseRepo
}

func NewEnrollmentService(log logger.Log, e enrollmentRepo, c courseRepo) *EnrollmentService {
	return &EnrollmentService{log: log, enrollRepo: e, courseRepo: c}
}

// Enroll relies on the composite key: enrolling twice or into a missing
// course/user is an integrity error.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, userID int64) (*models.CourseEnrollment, error) {
	e, err := s.enrollRepo.Enroll(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info("user enrolled", "course_id", courseID, "user_id", userID)
	return e, nil
}

func (s *EnrollmentService) Unenroll(ctx context.Context, courseID, userID int64) error {
	return s.enrollRepo.Unenroll(ctx, courseID, userID)
}

func (s *EnrollmentService) Enrollments(ctx context.Context, courseID int64) ([]models.CourseEnrollment, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.enrollRepo.EnrollmentsByCourse(ctx, courseID)
}
