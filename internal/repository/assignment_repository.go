// Имплементация репозитория для работы с назначениями задач в базе данных postgresql
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

const (
	assignmentColumns = `id, task_id, participant_id, progress_status`

	assignmentTaskFK        = "assignments_task_id_fkey"
	assignmentParticipantFK = "assignments_participant_id_fkey"
)

type assignmentRow struct {
	ID             string `db:"id"`
	TaskID         string `db:"task_id"`
	ParticipantID  string `db:"participant_id"`
	ProgressStatus string `db:"progress_status"`
}

func (a assignmentRow) toDomain() (domain.Assignment, error) {
	assignment, err := domain.ReconstructAssignment(a.ID, a.TaskID, a.ParticipantID, a.ProgressStatus)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("%w: failed to reconstruct assignment %s: %v", domain.ErrDatabaseError, a.ID, err)
	}
	return assignment, nil
}

type AssignmentRepositoryImpl struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAssignmentRepository(pool *pgxpool.Pool, logger *slog.Logger) *AssignmentRepositoryImpl {
	return &AssignmentRepositoryImpl{
		pool:   pool,
		logger: logger,
	}
}

// Save creates or updates an assignment.
// A second assignment of the same task to the same participant fails with domain.ErrAssignmentExists.
func (r *AssignmentRepositoryImpl) Save(ctx context.Context, assignment domain.Assignment) (domain.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO assignments (id, task_id, participant_id, progress_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			task_id = EXCLUDED.task_id,
			participant_id = EXCLUDED.participant_id,
			progress_status = EXCLUDED.progress_status
		RETURNING `+assignmentColumns,
		assignment.ID().String(),
		assignment.TaskID().String(),
		assignment.ParticipantID().String(),
		assignment.ProgressStatus().String(),
	)
	if err == nil {
		var row assignmentRow
		row, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[assignmentRow])
		if err == nil {
			r.logger.Info("assignment saved",
				slog.String("assignment_id", row.ID),
				slog.String("task_id", row.TaskID),
				slog.String("participant_id", row.ParticipantID),
			)
			return row.toDomain()
		}
	}

	if isUniqueViolation(err) {
		return domain.Assignment{}, domain.ErrAssignmentExists
	}
	if constraint, ok := foreignKeyConstraint(err); ok {
		switch constraint {
		case assignmentTaskFK:
			return domain.Assignment{}, domain.ErrTaskNotFound
		case assignmentParticipantFK:
			return domain.Assignment{}, domain.ErrParticipantNotFound
		}
	}

	r.logger.Error("failed to save assignment",
		slog.String("assignment_id", assignment.ID().String()),
		slog.String("error", err.Error()),
	)
	return domain.Assignment{}, fmt.Errorf("failed to save assignment: %w", err)
}

// FindManyBy returns assignments matching the filter ordered by id
func (r *AssignmentRepositoryImpl) FindManyBy(ctx context.Context, filter AssignmentFilter) ([]domain.Assignment, error) {
	var cond sqlParts
	if filter.TaskID != nil {
		cond.add("task_id", filter.TaskID.String())
	}
	if filter.ParticipantID != nil {
		cond.add("participant_id", filter.ParticipantID.String())
	}
	if filter.ProgressStatus != nil {
		cond.add("progress_status", filter.ProgressStatus.String())
	}

	rows, err := r.pool.Query(ctx, `SELECT `+assignmentColumns+` FROM assignments`+cond.where()+` ORDER BY id`, cond.args...)
	if err != nil {
		r.logger.Error("failed to find assignments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find assignments: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[assignmentRow])
	if err != nil {
		r.logger.Error("failed to scan assignments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find assignments: %w", err)
	}

	result := make([]domain.Assignment, 0, len(found))
	for _, row := range found {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// Update changes the set fields. With nothing set it returns the stored assignment.
func (r *AssignmentRepositoryImpl) Update(ctx context.Context, id domain.ID, update AssignmentUpdate) (domain.Assignment, error) {
	var set sqlParts
	if update.ProgressStatus != nil {
		set.add("progress_status", update.ProgressStatus.String())
	}

	var query string
	if set.empty() {
		query = `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ` + set.nextArg(id.String())
	} else {
		query = `UPDATE assignments SET ` + set.set() + ` WHERE id = ` + set.nextArg(id.String()) + ` RETURNING ` + assignmentColumns
	}

	rows, err := r.pool.Query(ctx, query, set.args...)
	if err != nil {
		r.logger.Error("failed to update assignment",
			slog.String("assignment_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[assignmentRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assignment{}, domain.ErrAssignmentNotFound
		}
		r.logger.Error("failed to update assignment",
			slog.String("assignment_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}

	r.logger.Info("assignment updated",
		slog.String("assignment_id", row.ID),
		slog.String("progress_status", row.ProgressStatus),
	)
	return row.toDomain()
}
