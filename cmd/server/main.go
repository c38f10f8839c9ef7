package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/config"
	"github.com/ignatzorin/recruitment-backend/internal/db"
	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
	httpHandlers "github.com/ignatzorin/recruitment-backend/internal/http/handlers"
	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	httpRouter "github.com/ignatzorin/recruitment-backend/internal/http/router"
	"github.com/ignatzorin/recruitment-backend/internal/infrastructure/messaging"
	"github.com/ignatzorin/recruitment-backend/internal/infrastructure/persistence"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/handler"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/service"
	"github.com/ignatzorin/recruitment-backend/internal/storage"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/application"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/availability"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/profile"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/submission"
	"github.com/ignatzorin/recruitment-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	if cfg.IsProduction() {
		logger.Init("info")
	} else {
		logger.Init("debug")
		logger.SetTextFormatter()
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL, db.DefaultPoolConfig)
	if err != nil {
		logger.Log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		logger.Log.Fatalf("main: ошибка миграций: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	documentStorage, err := storage.NewDocumentStorage(cfg.DocumentStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		logger.Log.Fatalf("main: не удалось подготовить хранилище документов: %v", err)
	}

	limiterStore, closeLimiter, err := middleware.NewLimiterStore(ctx, cfg.RedisURL)
	if err != nil {
		logger.Log.Fatalf("main: %v", err)
	}
	defer func() { _ = closeLimiter() }()

	// Репозитории.
	profileRepo := persistence.NewProfileRepositoryAdapter(dbConn)
	academicRepo := persistence.NewAcademicRecordRepositoryAdapter(dbConn)
	experienceRepo := persistence.NewWorkExperienceRepositoryAdapter(dbConn)
	availabilityRepo := persistence.NewAvailabilityRepositoryAdapter(dbConn)
	catalog := service.NewCachedCatalog(persistence.NewCatalogAdapter(dbConn), service.NewCacheService(ctx), cfg.CatalogCacheTTL)
	applicationRepo := persistence.NewApplicationRepositoryAdapter(dbConn)

	// События заявок: кандидату по WebSocket и, если настроено, в Kafka в фоне.
	hub := ws.NewHub(ctx)
	go hub.Run()

	publishers := event.Publishers{ws.NewEventPublisher(hub)}
	if cfg.KafkaEnabled() {
		kafkaPublisher := messaging.NewKafkaPublisher(messaging.ParseBrokers(cfg.KafkaBrokers), cfg.KafkaTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Log.WithError(err).Warn("main: ошибка закрытия kafka writer")
			}
		}()
		publishers = append(publishers, messaging.NewAsyncPublisher(kafkaPublisher))
		logger.Log.WithFields(logrus.Fields{"topic": cfg.KafkaTopic}).Info("main: публикация событий в kafka включена")
	}
	var publisher event.Publisher = publishers

	// Use cases.
	locks := lockstate.NewLoader(profileRepo, applicationRepo)
	aggregator := profile.NewAggregator(profileRepo, academicRepo, experienceRepo, availabilityRepo)
	createApplicationUC := application.NewCreateApplicationUseCase(applicationRepo, publisher)

	availabilityHandler := handler.NewAvailabilityHandler(
		availability.NewGetStatusUseCase(locks),
		availability.NewGetScheduleUseCase(availabilityRepo),
		availability.NewSaveScheduleUseCase(availabilityRepo, locks),
		availability.NewSetDayUseCase(availabilityRepo, locks),
		availability.NewListCoursesUseCase(availabilityRepo, catalog),
		availability.NewChangeCourseUseCase(availabilityRepo, catalog, locks),
	)
	profileHandler := handler.NewProfileHandler(
		profile.NewGetProfileUseCase(aggregator),
		profile.NewGetCompletenessUseCase(aggregator),
		profile.NewSavePersonalDataUseCase(profileRepo, locks),
		profile.NewAddAcademicRecordUseCase(academicRepo, locks),
		profile.NewRemoveAcademicRecordUseCase(academicRepo, locks),
		profile.NewAddWorkExperienceUseCase(experienceRepo, locks),
		profile.NewRemoveWorkExperienceUseCase(experienceRepo, locks),
	)
	applicationHandler := handler.NewApplicationHandler(
		createApplicationUC,
		application.NewEvaluateApplicationUseCase(applicationRepo, publisher),
		application.NewGetApplicationUseCase(applicationRepo),
		application.NewListApplicationsUseCase(applicationRepo),
		submission.NewSubmitProfileUseCase(aggregator, profileRepo, catalog, applicationRepo, createApplicationUC),
	)

	engine := httpRouter.SetupRouter(cfg, httpRouter.Handlers{
		Availability: availabilityHandler,
		Profile:      profileHandler,
		Application:  applicationHandler,
		Document:     httpHandlers.NewDocumentHandler(documentStorage),
		Health:       httpHandlers.NewHealthHandler(map[string]httpHandlers.Pinger{"database": dbConn}),
		WS:           httpHandlers.NewWSHandler(hub, tokenManager, cfg.AllowedOrigins),
		CatalogCache: httpHandlers.NewCatalogCacheHandler(catalog),
	}, tokenManager, limiterStore)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	}()

	logger.Log.Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.Log.WithError(err).Error("main: ошибка закрытия базы")
	}
}
