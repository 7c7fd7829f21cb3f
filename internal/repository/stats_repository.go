// Имплементация репозитория для получения статистики из базы данных postgresql
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const selectStats = `
	SELECT
		(SELECT COUNT(*) FROM teams)                      AS total_teams,
		(SELECT COUNT(*) FROM participants)               AS total_participants,
		(SELECT COUNT(*) FROM tasks)                      AS total_tasks,
		(SELECT COUNT(*) FROM tasks WHERE is_done = TRUE) AS done_tasks,
		(SELECT COUNT(*) FROM assignments)                AS total_assignments`

type StatsRepositoryImpl struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepository(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{
		pool:   pool,
		logger: logger,
	}
}

func (r *StatsRepositoryImpl) GetStats(ctx context.Context) (*Stats, error) {
	var teams, participants, tasks, done, assignments int64
	err := r.pool.QueryRow(ctx, selectStats).Scan(&teams, &participants, &tasks, &done, &assignments)
	if err != nil {
		r.logger.Error("failed to get stats", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &Stats{
		TotalTeams:        int(teams),
		TotalParticipants: int(participants),
		TotalTasks:        int(tasks),
		DoneTasks:         int(done),
		TotalAssignments:  int(assignments),
	}, nil
}
