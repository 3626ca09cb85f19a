package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digicheck_backend/internal/config"
	"digicheck_backend/internal/controller"
	"digicheck_backend/internal/repository"
	"digicheck_backend/internal/service"
	"digicheck_backend/pkg/database"
	"digicheck_backend/pkg/logger"
	"digicheck_backend/pkg/monitoring"
	"digicheck_backend/pkg/security"
	"digicheck_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config        *config.Config
	Router        *gin.Engine
	DB            *gorm.DB
	Redis         *redis.Client
	ScoringParams *service.ScoringParams
}

type repositories struct {
	guide     *repository.GuideRepository
	question  *repository.QuestionRepository
	benchmark *repository.BenchmarkRepository
	survey    *repository.SurveyRepository
}

type services struct {
	scoring        *service.ScoringService
	recommendation *service.RecommendationService
	benchmark      *service.BenchmarkService
	guide          *service.GuideService
	survey         *service.SurveyService
	dashboard      *service.DashboardService
}

type controllers struct {
	survey    *controller.SurveyController
	dashboard *controller.DashboardController
	guide     *controller.GuideController
	benchmark *controller.BenchmarkController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		guide:     repository.NewGuideRepository(db),
		question:  repository.NewQuestionRepository(db),
		benchmark: repository.NewBenchmarkRepository(db),
		survey:    repository.NewSurveyRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	cacheTTL := time.Duration(cfg.Scoring.CacheTTLMinutes) * time.Minute
	params := service.NewScoringParams(cfg.Scoring)
	a.ScoringParams = params

	s := &services{}
	s.scoring = service.NewScoringService(repos.question)
	s.recommendation = service.NewRecommendationService(repos.guide, params)
	s.benchmark = service.NewBenchmarkService(repos.benchmark, rdb, cacheTTL)
	s.guide = service.NewGuideService(repos.guide, rdb, cacheTTL)
	s.survey = service.NewSurveyService(s.scoring, s.recommendation, s.benchmark, repos.survey, params)
	s.dashboard = service.NewDashboardService(repos.survey, s.recommendation, s.benchmark, params)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		survey:    controller.NewSurveyController(s.survey),
		dashboard: controller.NewDashboardController(s.dashboard),
		guide:     controller.NewGuideController(s.guide),
		benchmark: controller.NewBenchmarkController(s.benchmark, s.survey),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig picks up hot-reloadable settings from a freshly loaded config.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.ScoringParams.Update(cfg.Scoring)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("digicheck", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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
