package http

import (
	"MiniLearn/internal/delivery/http/controllers"
	"MiniLearn/internal/delivery/http/controllers/course"
	"MiniLearn/internal/delivery/http/controllers/lesson"
	"MiniLearn/internal/delivery/http/controllers/middleware"
	"MiniLearn/internal/delivery/http/controllers/quiz"
	"MiniLearn/internal/delivery/http/controllers/user"
	"MiniLearn/internal/service"
	"MiniLearn/pkg/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowOrigins []string
	Version      string
}

func InitRoutes(l logger.Log, rc RouterConfig, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	config := cors.Config{
		AllowOrigins:     rc.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))
	r.Use(middleware.LoggingMiddleware(l))

	statusController := controllers.NewStatusHandler(rc.Version)
	userController := user.NewHandler(l, u.UserService)
	courseManagement := course.NewManagementHandler(l, u.CourseManagementService)
	courseQuery := course.NewQueryHandler(l, u.CourseQueryService)
	enrollmentController := course.NewEnrollmentHandler(l, u.EnrollmentService)
	lessonManagement := lesson.NewManagementHandler(l, u.LessonManagementService)
	lessonContent := lesson.NewContentHandler(l, u.LessonContentService)
	progressController := lesson.NewProgressHandler(l, u.ProgressService)
	quizController := quiz.NewHandler(l, u.QuizService)

	r.GET("/status", statusController.Status)

	users := r.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.POST("/", userController.CreateUser)
		users.GET("/:user_id", userController.UserByID)
		users.PATCH("/:user_id", userController.UpdateUser)
		users.DELETE("/:user_id", userController.DeleteUser)
		users.GET("/:user_id/courses", userController.OwnedCourses)
		users.GET("/:user_id/enrollments", userController.EnrolledCourses)
		users.GET("/:user_id/progress", userController.Progress)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", courseQuery.ListCourses)
		courses.POST("", courseManagement.CreateCourse)
		courses.GET("/search", courseQuery.SearchCourses)
		courses.GET("/:course_id", courseQuery.CourseByID)
		courses.PATCH("/:course_id", courseManagement.UpdateCourse)
		courses.DELETE("/:course_id", courseManagement.DeleteCourse)
		courses.GET("/:course_id/modules", courseQuery.Modules)
		courses.POST("/:course_id/modules", courseManagement.CreateModule)
		courses.GET("/:course_id/enrollments", enrollmentController.Enrollments)
		courses.POST("/:course_id/enrollments", enrollmentController.Enroll)
		courses.DELETE("/:course_id/enrollments/:user_id", enrollmentController.Unenroll)
	}

	modules := r.Group("/modules")
	{
		modules.GET("/:module_id", courseQuery.ModuleByID)
		modules.PATCH("/:module_id", courseManagement.UpdateModule)
		modules.DELETE("/:module_id", courseManagement.DeleteModule)
		modules.GET("/:module_id/lessons", lessonManagement.LessonsByModule)
		modules.POST("/:module_id/lessons", lessonManagement.CreateLesson)
	}

	lessons := r.Group("/lessons")
	{
		lessons.GET("/:lesson_id", lessonManagement.LessonByID)
		lessons.PATCH("/:lesson_id", lessonManagement.UpdateLesson)
		lessons.DELETE("/:lesson_id", lessonManagement.DeleteLesson)
		lessons.GET("/:lesson_id/audio", lessonContent.Audio)
		lessons.PUT("/:lesson_id/audio", lessonContent.UploadAudio)
		lessons.GET("/:lesson_id/quiz", quizController.QuizByLesson)
		lessons.POST("/:lesson_id/quiz", quizController.CreateQuiz)
	}

	quizzes := r.Group("/quizzes")
	{
		quizzes.GET("/:quiz_id", quizController.QuizByID)
		quizzes.PATCH("/:quiz_id", quizController.UpdateQuiz)
		quizzes.DELETE("/:quiz_id", quizController.DeleteQuiz)
		quizzes.GET("/:quiz_id/questions", quizController.Questions)
		quizzes.POST("/:quiz_id/questions", quizController.CreateQuestion)
		quizzes.POST("/:quiz_id/submit", quizController.Submit)
	}

	questions := r.Group("/questions")
	{
		questions.GET("/:question_id", quizController.QuestionByID)
		questions.PATCH("/:question_id", quizController.UpdateQuestion)
		questions.DELETE("/:question_id", quizController.DeleteQuestion)
	}

	progress := r.Group("/progress")
	{
		progress.POST("", progressController.RecordProgress)
		progress.GET("/:progress_id", progressController.ProgressByID)
		progress.PATCH("/:progress_id", progressController.UpdateProgress)
		progress.DELETE("/:progress_id", progressController.DeleteProgress)
	}

	return r
}
