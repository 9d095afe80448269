package service

import (
	"MiniLearn/internal/service/course/enrollment"
	"MiniLearn/internal/service/course/management"
	"MiniLearn/internal/service/course/query"
	"MiniLearn/internal/service/lesson/content"
	lessonmanagement "MiniLearn/internal/service/lesson/management"
	"MiniLearn/internal/service/lesson/progress"
	"MiniLearn/internal/service/quiz"
	"MiniLearn/internal/service/user"
)

type Collection struct {
	*user.UserService
	*management.CourseManagementService
	*query.CourseQueryService
	*enrollment.EnrollmentService
	*lessonmanagement.LessonManagementService
	*content.LessonContentService
	*progress.ProgressService
	*quiz.QuizService
}
