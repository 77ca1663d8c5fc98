package app

import (
	"context"
	"geometriks_backend/internal/config"
	"geometriks_backend/internal/controller"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/service"
	"geometriks_backend/pkg/database"
	"geometriks_backend/pkg/logger"
	"geometriks_backend/pkg/monitoring"
	"geometriks_backend/pkg/security"
	"geometriks_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	module      *repository.ModuleRepository
	lesson      *repository.LessonRepository
	chapter     *repository.ChapterRepository
	question    *repository.QuestionRepository
	preference  *repository.PreferenceRepository
	progress    *repository.ProgressRepository
	exercise    *repository.ExerciseRepository
	certificate *repository.CertificateRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	content     *service.ContentService
	selector    *service.SelectorService
	progress    *service.ProgressService
	exercise    *service.ExerciseService
	certificate *service.CertificateService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	learning    *controller.LearningController
	exercise    *controller.ExerciseController
	certificate *controller.CertificateController
	leaderboard *controller.LeaderboardController
	content     *controller.ContentController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps the live configuration and fans it out to the registered
// callbacks. Only settings read per use pick up the new values; the listen
// port and database connections keep their boot-time values.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		module:      repository.NewModuleRepository(db),
		lesson:      repository.NewLessonRepository(db),
		chapter:     repository.NewChapterRepository(db),
		question:    repository.NewQuestionRepository(db),
		preference:  repository.NewPreferenceRepository(db),
		progress:    repository.NewProgressRepository(db),
		exercise:    repository.NewExerciseRepository(db),
		certificate: repository.NewCertificateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.preference)
	s.content = service.NewContentService(repos.module, repos.lesson, repos.chapter, repos.question, storage, db)
	s.selector = service.NewSelectorService(repos.module, repos.chapter, repos.preference, repos.progress)
	s.progress = service.NewProgressService(repos.module, repos.lesson, repos.chapter, repos.progress, db)
	s.exercise = service.NewExerciseService(repos.module, repos.lesson, repos.question, repos.exercise)
	s.certificate = service.NewCertificateService(repos.certificate, repos.module, repos.user, repos.progress, db)
	s.leaderboard = service.NewLeaderboardService(repos.user, rdb, cfg)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user),
		user:        controller.NewUserController(s.user),
		learning:    controller.NewLearningController(s.selector, s.progress, s.content),
		exercise:    controller.NewExerciseController(s.exercise),
		certificate: controller.NewCertificateController(s.certificate),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, s.user),
		content:     controller.NewContentController(s.content),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The leaderboard cache degrades to database reads without redis.
		logger.Log.Warn("Failed to initialize redis, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("geometriks", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
