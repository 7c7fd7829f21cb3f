package service

import (
	"context"
	"log/slog"

	"team_task/internal/repository"
)

type StatsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*repository.Stats, error) {
	s.logger.Info("retrieving stats")

	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, useCaseError("GetStats", err)
	}

	s.logger.Info("stats retrieved",
		slog.Int("total_teams", stats.TotalTeams),
		slog.Int("total_tasks", stats.TotalTasks),
		slog.Int("done_tasks", stats.DoneTasks),
	)

	return stats, nil
}
