package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"clinicdesk/config"
	_ "clinicdesk/docs"
	"clinicdesk/internal/notify"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/service"
	"clinicdesk/internal/storage"
	"clinicdesk/internal/transport/rest"
	"clinicdesk/pkg/database"
	"clinicdesk/pkg/logger"
)

// @title ClinicDesk API
// @version 1.0
// @description Patient, doctor and appointment management for a small clinic

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	var repos *repository.Repositories
	if cfg.Postgres.Host != "" {
		db, err := database.NewPostgresDB(cfg.Postgres)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := database.RunMigrations(db, "./migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}

		repos = repository.NewPostgresRepositories(db)
		log.Info("using postgres storage", zap.String("host", cfg.Postgres.Host))
	} else {
		repos = repository.NewMemoryRepositories()
		if err := repository.SeedDemoData(context.Background(), repos); err != nil {
			log.Fatal("failed to seed demo data", zap.Error(err))
		}
		log.Warn("POSTGRES_HOST not set, running in-memory demo mode")
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("failed to init S3 storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("S3 storage ready", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		fileStorage = storage.NewNoopStorage()
		log.Warn("S3 endpoint not set, image uploads disabled")
	}

	var email notify.EmailSender = notify.NewNoopSender()
	if cfg.Notify.SendGridAPIKey != "" {
		email = notify.NewSendGridSender(cfg.Notify, log)
	}
	var sms notify.SMSSender = notify.NewNoopSender()
	if cfg.Notify.TwilioAccountSID != "" {
		sms = notify.NewTwilioSender(cfg.Notify)
	}

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Email:       email,
		SMS:         sms,
	})

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Scheduling.ReminderCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		sent, err := services.Reminder.DispatchDue(ctx)
		if err != nil {
			log.Error("reminder dispatch failed", zap.Error(err))
			return
		}
		if sent > 0 {
			log.Info("reminders dispatched", zap.Int("count", sent))
		}
	})
	if err != nil {
		log.Fatal("failed to schedule reminder dispatch", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
