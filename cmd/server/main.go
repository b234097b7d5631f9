// Package main wires the meeting planner API server.
//
// @title Meeting Planner API
// @version 1.0
// @description Backend for planning meetings, their schedules, and who attends them.
// @BasePath /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, prefixed with "Bearer ".
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"meetingplanner/config"
	_ "meetingplanner/docs"
	"meetingplanner/internal/adapters/auth"
	"meetingplanner/internal/adapters/email"
	delivery "meetingplanner/internal/delivery/http"
	"meetingplanner/internal/delivery/http/controllers"
	"meetingplanner/internal/delivery/http/middleware"
	"meetingplanner/internal/repository/postgres"
	"meetingplanner/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	meetingRepo := postgres.NewMeetingRepository(db)
	meetingParticipantRepo := postgres.NewMeetingParticipantRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	scheduleParticipantRepo := postgres.NewScheduleParticipantRepository(db)

	stopSweeper := make(chan struct{})
	defer close(stopSweeper)
	revocationStore := auth.NewMemoryRevocationStore()
	revocationStore.StartSweeper(time.Minute, stopSweeper)
	tokenManager := auth.NewTokenManager(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
		revocationStore,
	)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailSender,
		FromName:    cfg.EmailSenderName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	userService := services.NewUserService(
		userRepo,
		hasher,
		tokenManager,
		tokenManager,
		tokenManager,
		emailService,
		services.DuplicatePolicy(cfg.DuplicateRegisterPolicy),
	)
	meetingService := services.NewMeetingService(meetingRepo, meetingParticipantRepo, userRepo, emailService, serviceTimeout)
	scheduleService := services.NewScheduleService(scheduleRepo, meetingRepo, meetingParticipantRepo, scheduleParticipantRepo, serviceTimeout)

	mux := delivery.NewRouter(
		controllers.NewAuthController(logger, userService),
		controllers.NewMeetingController(logger, meetingService),
		controllers.NewScheduleController(logger, scheduleService),
	)

	var handler http.Handler = mux
	handler = middleware.Authenticate(tokenManager, userRepo, logger)(handler)
	handler = middleware.Logging(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
