// Имплементация репозитория для работы с задачами в базе данных postgresql
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"team_task/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, title, is_done`

type taskRow struct {
	ID     string `db:"id"`
	Title  string `db:"title"`
	IsDone bool   `db:"is_done"`
}

func (t taskRow) toDomain() (domain.Task, error) {
	task, err := domain.ReconstructTask(t.ID, t.Title, t.IsDone)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: failed to reconstruct task %s: %v", domain.ErrDatabaseError, t.ID, err)
	}
	return task, nil
}

type TaskRepositoryImpl struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTaskRepository(pool *pgxpool.Pool, logger *slog.Logger) *TaskRepositoryImpl {
	return &TaskRepositoryImpl{
		pool:   pool,
		logger: logger,
	}
}

// Save creates or updates a task
func (r *TaskRepositoryImpl) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO tasks (id, title, is_done)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			is_done = EXCLUDED.is_done
		RETURNING `+taskColumns,
		task.ID().String(), task.Title().String(), task.IsDone().Bool())
	if err != nil {
		r.logger.Error("failed to save task",
			slog.String("task_id", task.ID().String()),
			slog.String("error", err.Error()),
		)
		return domain.Task{}, fmt.Errorf("failed to save task: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[taskRow])
	if err != nil {
		r.logger.Error("failed to save task",
			slog.String("task_id", task.ID().String()),
			slog.String("error", err.Error()),
		)
		return domain.Task{}, fmt.Errorf("failed to save task: %w", err)
	}

	r.logger.Info("task saved",
		slog.String("task_id", row.ID),
		slog.Bool("is_done", row.IsDone),
	)
	return row.toDomain()
}

// FindByID retrieves a task by id
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id domain.ID) (domain.Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id.String())
	if err != nil {
		r.logger.Error("failed to get task",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[taskRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		r.logger.Error("failed to get task",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return row.toDomain()
}

// FindManyBy returns tasks matching the filter ordered by id
func (r *TaskRepositoryImpl) FindManyBy(ctx context.Context, filter TaskFilter) ([]domain.Task, error) {
	var cond sqlParts
	if filter.IsDone != nil {
		cond.add("is_done", filter.IsDone.Bool())
	}

	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks`+cond.where()+` ORDER BY id`, cond.args...)
	if err != nil {
		r.logger.Error("failed to find tasks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[taskRow])
	if err != nil {
		r.logger.Error("failed to scan tasks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}

	result := make([]domain.Task, 0, len(found))
	for _, row := range found {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
