package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"team_task/internal/api"
	"team_task/internal/api/handlers"
	"team_task/internal/database"
	"team_task/internal/repository"
	"team_task/internal/service"
)

func (a *app) serve(ctx context.Context) error {
	a.logger.Info("starting team task service",
		slog.String("version", version),
		slog.String("port", a.cfg.Server.Port),
	)

	db, err := database.New(ctx, &a.cfg.Database, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Инициализация репозиториев
	teamRepo := repository.NewTeamRepository(db.Pool, a.logger)
	taskRepo := repository.NewTaskRepository(db.Pool, a.logger)
	participantRepo := repository.NewParticipantRepository(db.Pool, a.logger)
	assignmentRepo := repository.NewAssignmentRepository(db.Pool, a.logger)
	statsRepo := repository.NewStatsRepository(db.Pool, a.logger)

	// Инициализация сервисов
	teamService := service.NewTeamService(teamRepo, a.logger)
	taskService := service.NewTaskService(taskRepo, a.logger)
	participantService := service.NewParticipantService(participantRepo, a.logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, a.logger)
	statsService := service.NewStatsService(statsRepo, a.logger)

	handler := handlers.NewHandler(teamService, taskService, participantService, assignmentService, statsService, db, a.logger)
	router := api.NewRouter(handler, a.logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	a.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.logger.Info("server stopped gracefully")
	return nil
}

func (a *app) migrate(ctx context.Context) error {
	db, err := database.New(ctx, &a.cfg.Database, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return db.Migrate(ctx)
}
