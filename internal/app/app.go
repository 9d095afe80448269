package app

import (
	"MiniLearn/internal/app/server"
	"MiniLearn/internal/config"
	"MiniLearn/internal/delivery/http"
	"MiniLearn/internal/models"
	"MiniLearn/internal/service"
	"MiniLearn/internal/service/course/enrollment"
	"MiniLearn/internal/service/course/management"
	"MiniLearn/internal/service/course/query"
	"MiniLearn/internal/service/lesson/content"
	lessonmanagement "MiniLearn/internal/service/lesson/management"
	"MiniLearn/internal/service/lesson/progress"
	"MiniLearn/internal/service/quiz"
	"MiniLearn/internal/service/user"
	"MiniLearn/internal/storage/disk"
	"MiniLearn/internal/storage/elastic"
	"MiniLearn/internal/storage/minio_storage"
	"MiniLearn/internal/storage/postgres"
	"MiniLearn/pkg/logger"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const version = "1.0.0"

type audioStorage interface {
	OpenAudio(ctx context.Context, path string) (*models.AudioAsset, error)
	SaveAudio(ctx context.Context, lessonID int64, filename string, r io.Reader, size int64) (string, error)
}

type courseSearch interface {
	Index(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, query string) (int, error)
	Search(ctx context.Context, query string, from, size int) ([]int64, error)
}

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("starting MiniLearn", "env", cfg.Env, "version", version)

	ctx := context.Background()

	pg, err := postgres.NewPostgresPool(ctx, cfg.Postgres, cfg.Env, log)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	if err := pg.Migrate(ctx, log); err != nil {
		log.FatalErr("error migrating database", err)
	}

	audio, err := newAudioStorage(ctx, cfg)
	if err != nil {
		log.FatalErr("error initializing audio storage", err)
	}

	search, err := newCourseSearch(ctx, cfg, log)
	if err != nil {
		log.FatalErr("error initializing course search", err)
	}

	userRepo := postgres.NewUserPostgres(pg.Pool)
	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	moduleRepo := postgres.NewModulePostgres(pg.Pool)
	lessonRepo := postgres.NewLessonPostgres(pg.Pool)
	quizRepo := postgres.NewQuizPostgres(pg.Pool)
	progressRepo := postgres.NewProgressPostgres(pg.Pool)
	enrollmentRepo := postgres.NewEnrollmentPostgres(pg.Pool)

	u := service.Collection{
		UserService:             user.NewUserService(log, userRepo, courseRepo, enrollmentRepo, progressRepo),
		CourseManagementService: management.NewCourseManagementService(log, courseRepo, moduleRepo, search),
		CourseQueryService:      query.NewCourseQueryService(log, courseRepo, moduleRepo, search),
		EnrollmentService:       enrollment.NewEnrollmentService(log, enrollmentRepo, courseRepo),
		LessonManagementService: lessonmanagement.NewLessonManagementService(log, lessonRepo),
		LessonContentService:    content.NewLessonContentService(log, lessonRepo, audio),
		ProgressService:         progress.NewProgressService(log, progressRepo),
		QuizService:             quiz.NewQuizService(log, quizRepo, progressRepo),
	}

	r := http.InitRoutes(log, http.RouterConfig{
		AllowOrigins: cfg.HTTPServer.AllowOrigins,
		Version:      version,
	}, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("http server started", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal", "signal", s.String())
	case err := <-srv.Notify():
		log.ErrorErr("http server stopped", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("http server shutdown", err)
	}
}

func newAudioStorage(ctx context.Context, cfg *config.Config) (audioStorage, error) {
	switch cfg.Audio.Backend {
	case config.AudioBackendMinio:
		storage, err := minio_storage.NewMinioStorage(ctx, cfg.Minio, cfg.Audio.Bucket)
		if err != nil {
			return nil, err
		}
		return minio_storage.NewAudioStorage(storage, cfg.Audio.Bucket), nil
	case config.AudioBackendDisk:
		storage, err := disk.NewAudioStorage(cfg.Audio.RootDir)
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Audio.Backend)
	}
}

// newCourseSearch falls back to a no-op index when no Elasticsearch hosts are
// configured.
func newCourseSearch(ctx context.Context, cfg *config.Config, log logger.Log) (courseSearch, error) {
	if len(cfg.ES.Hosts) == 0 {
		log.Warn("elasticsearch hosts not configured, course search disabled")
		return elastic.NoopCourseSearch{}, nil
	}

	client, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts, nil)
	if err != nil {
		return nil, err
	}
	repo := elastic.NewCourseSearchRepository(client, cfg.ES.Index)
	if err := repo.CreateIndexIfNotExist(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
