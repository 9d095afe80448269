package quiz

import (
	"MiniLearn/internal/models"
	"MiniLearn/internal/validation"
	"MiniLearn/pkg/logger"
	"context"
)

const questionTypes = "oneof=" + models.QuestionTypeMultipleChoice + " " + models.QuestionTypeTrueFalse

type quizRepo interface {
	QuizByID(ctx context.Context, id int64) (*models.Quiz, error)
	QuizByLesson(ctx context.Context, lessonID int64) (*models.Quiz, error)
	CreateQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error)
	UpdateQuiz(ctx context.Context, id int64, upd models.QuizUpdate) (*models.Quiz, error)
	DeleteQuiz(ctx context.Context, id int64) error

	QuestionByID(ctx context.Context, id int64) (*models.Question, error)
	QuestionsByQuiz(ctx context.Context, quizID int64) ([]models.Question, error)
	CreateQuestion(ctx context.Context, question models.Question) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, upd models.QuestionUpdate) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

type progressRepo interface {
	CreateProgress(ctx context.Context, p models.UserProgress) (*models.UserProgress, error)
}

type QuizService struct {
	log          logger.Log
	quizRepo     quizRepo
	progressRepo progressRepo
}

func NewQuizService(log logger.Log, q quizRepo, p progressRepo) *QuizService {
	return &QuizService{log: log, quizRepo: q, progressRepo: p}
}

func (s *QuizService) Quiz(ctx context.Context, id int64) (*models.Quiz, error) {
	return s.quizRepo.QuizByID(ctx, id)
}

func (s *QuizService) QuizByLesson(ctx context.Context, lessonID int64) (*models.Quiz, error) {
	return s.quizRepo.QuizByLesson(ctx, lessonID)
}

// CreateQuiz attaches a quiz to the lesson; a lesson holds at most one.
func (s *QuizService) CreateQuiz(ctx context.Context, lessonID int64, quiz models.Quiz) (*models.Quiz, error) {
	if err := validation.Field("title", quiz.Title, "required,max=100"); err != nil {
		return nil, err
	}
	quiz.LessonID = lessonID
	return s.quizRepo.CreateQuiz(ctx, quiz)
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id int64, upd models.QuizUpdate) (*models.Quiz, error) {
	if err := validation.Nullable("title", upd.Title, "required,max=100", false); err != nil {
		return nil, err
	}
	return s.quizRepo.UpdateQuiz(ctx, id, upd)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id int64) error {
	return s.quizRepo.DeleteQuiz(ctx, id)
}

func (s *QuizService) Question(ctx context.Context, id int64) (*models.Question, error) {
	return s.quizRepo.QuestionByID(ctx, id)
}

func (s *QuizService) Questions(ctx context.Context, quizID int64) ([]models.Question, error) {
	if _, err := s.quizRepo.QuizByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.quizRepo.QuestionsByQuiz(ctx, quizID)
}

func (s *QuizService) CreateQuestion(ctx context.Context, quizID int64, q models.Question) (*models.Question, error) {
	err := validation.First(
		validation.Field("question_text", q.QuestionText, "required"),
		validation.Field("question_type", q.QuestionType, "required,"+questionTypes),
		validation.Field("correct_answer", q.CorrectAnswer, "omitempty,max=255"),
	)
	if err != nil {
		return nil, err
	}
	q.QuizID = quizID
	return s.quizRepo.CreateQuestion(ctx, q)
}

func (s *QuizService) UpdateQuestion(ctx context.Context, id int64, upd models.QuestionUpdate) (*models.Question, error) {
	err := validation.First(
		validation.Nullable("question_text", upd.QuestionText, "required", false),
		validation.Nullable("question_type", upd.QuestionType, questionTypes, false),
		validation.Nullable("correct_answer", upd.CorrectAnswer, "max=255", true),
	)
	if err != nil {
		return nil, err
	}
	return s.quizRepo.UpdateQuestion(ctx, id, upd)
}

func (s *QuizService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.quizRepo.DeleteQuestion(ctx, id)
}

// Submit grades the answers and stores the result as a progress record for
// the quiz's lesson.
func (s *QuizService) Submit(ctx context.Context, quizID int64, sub models.QuizSubmission) (*models.UserProgress, error) {
	if err := validation.Field("user_id", sub.UserID, "gt=0"); err != nil {
		return nil, err
	}
	quiz, err := s.quizRepo.QuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.quizRepo.QuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	correct, total := Grade(questions, sub.Answers)
	lessonID := quiz.LessonID
	progress, err := s.progressRepo.CreateProgress(ctx, models.UserProgress{
		UserID:         sub.UserID,
		LessonID:       &lessonID,
		CorrectAnswers: correct,
		TotalQuestions: total,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("quiz submitted", "quiz_id", quizID, "user_id", sub.UserID, "correct", correct, "total", total)
	return progress, nil
}
