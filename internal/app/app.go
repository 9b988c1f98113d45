package app

import (
	"context"
	"errors"
	"fmt"
	"math_practice_backend/internal/config"
	"math_practice_backend/internal/controller"
	"math_practice_backend/internal/repository"
	"math_practice_backend/internal/service"
	"math_practice_backend/pkg/configwatcher"
	"math_practice_backend/pkg/database"
	"math_practice_backend/pkg/logger"
	"math_practice_backend/pkg/monitoring"
	"math_practice_backend/pkg/security"
	"math_practice_backend/pkg/tracing"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	rateLimiter     *security.RateLimiter
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []configwatcher.ConfigReloader
}

type repositories struct {
	session        *repository.ProblemSessionRepository
	submission     *repository.SubmissionRepository
	dashboardCache repository.DashboardCache
}

type services struct {
	ai         *service.AIService
	storage    *service.StorageService
	syllabus   *service.SyllabusService
	problem    *service.ProblemService
	submission *service.SubmissionService
	dashboard  *service.DashboardService
	report     *service.ReportService
}

type controllers struct {
	problem   *controller.ProblemController
	dashboard *controller.DashboardController
	syllabus  *controller.SyllabusController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		session:        repository.NewProblemSessionRepository(db),
		submission:     repository.NewSubmissionRepository(db),
		dashboardCache: repository.NoopDashboardCache{},
	}
	if rdb != nil {
		repos.dashboardCache = repository.NewRedisDashboardCache(rdb)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage
	s.ai = service.NewAIService(cfg.AI)
	s.syllabus = service.NewSyllabusService(cfg.Syllabus, s.storage, service.NewPDFTextExtractor())
	s.problem = service.NewProblemService(s.ai, s.syllabus, repos.session)
	s.submission = service.NewSubmissionService(s.ai, repos.session, repos.submission, repos.dashboardCache)
	s.dashboard = service.NewDashboardService(repos.submission, repos.dashboardCache, cfg.Dashboard.CacheTTL, cfg.Dashboard.RecentLimit)
	s.report = service.NewReportService(service.ReportConfig{})

	// 热更新：模型参数与大纲缓存有效期
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.ai.UpdateConfig(newCfg.AI)
		s.syllabus.SetTTL(newCfg.Syllabus.TTL)
	})

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		problem:   controller.NewProblemController(s.problem, s.submission),
		dashboard: controller.NewDashboardController(s.dashboard, s.report),
		syllabus:  controller.NewSyllabusController(s.syllabus),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.rateLimiter.Middleware())
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.rateLimiter.Update(newCfg.RateLimit.MaxRequests, time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute)
	})

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 连接数据库、Redis 和追踪后组装应用
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("initialize redis: %w", err)
		}
	}

	application, err := Build(cfg, db, rdb)
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("math-practice-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		application.tracerProvider = tp
	}

	return application, nil
}

// Build 用已建立的连接组装路由，rdb 可为 nil
func Build(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app, nil
}

func (a *App) Syllabus() *service.SyllabusService {
	return a.services.syllabus
}

// Run 启动服务，收到中断信号或 ctx 结束时优雅退出
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.Config.ConfigFile != "" {
		go func() {
			err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.configCallbacks...)
			if err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	// 关闭服务（设置5秒的超时时间）
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
	return nil
}

// Close 释放限流清理协程、追踪和外部连接
func (a *App) Close(ctx context.Context) {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
		a.rateLimiter = nil
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
