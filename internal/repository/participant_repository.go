// Имплементация репозитория для работы с участниками в базе данных postgresql
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
	participantColumns = `id, name, email, enrollment_status`

	// noTeammateWithEmail holds when no other member of the row's team uses the email bound to %s.
	noTeammateWithEmail = `NOT EXISTS (
		SELECT 1 FROM participants teammate
		WHERE teammate.team_id = participants.team_id
			AND teammate.email = %s
			AND teammate.id <> participants.id)`
)

type participantRow struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Email            string `db:"email"`
	EnrollmentStatus string `db:"enrollment_status"`
}

func (p participantRow) record() domain.ParticipantRecord {
	return domain.ParticipantRecord{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		EnrollmentStatus: p.EnrollmentStatus,
	}
}

func (p participantRow) toDomain() (domain.Participant, error) {
	participant, err := domain.ReconstructParticipant(p.ID, p.Name, p.Email, p.EnrollmentStatus)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("%w: failed to reconstruct participant %s: %v", domain.ErrDatabaseError, p.ID, err)
	}
	return participant, nil
}

type ParticipantRepositoryImpl struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewParticipantRepository(pool *pgxpool.Pool, logger *slog.Logger) *ParticipantRepositoryImpl {
	return &ParticipantRepositoryImpl{
		pool:   pool,
		logger: logger,
	}
}

// Save creates or updates a participant. Team membership is left untouched.
func (r *ParticipantRepositoryImpl) Save(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	rec := participant.ToRecord()
	rows, err := r.pool.Query(ctx, `
		INSERT INTO participants (id, name, email, enrollment_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			enrollment_status = EXCLUDED.enrollment_status
		WHERE `+fmt.Sprintf(noTeammateWithEmail, "EXCLUDED.email")+`
		RETURNING `+participantColumns,
		rec.ID, rec.Name, rec.Email, rec.EnrollmentStatus)
	if err != nil {
		r.logger.Error("failed to save participant",
			slog.String("participant_id", rec.ID),
			slog.String("error", err.Error()),
		)
		return domain.Participant{}, fmt.Errorf("failed to save participant: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[participantRow])
	if err != nil {
		// The conflict branch skipped the row: a teammate already has this email.
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.DuplicateEmailError(rec.Email)
		}
		r.logger.Error("failed to save participant",
			slog.String("participant_id", rec.ID),
			slog.String("error", err.Error()),
		)
		return domain.Participant{}, fmt.Errorf("failed to save participant: %w", err)
	}

	r.logger.Info("participant saved", slog.String("participant_id", row.ID))
	return row.toDomain()
}

// FindManyBy returns participants matching the filter ordered by id
func (r *ParticipantRepositoryImpl) FindManyBy(ctx context.Context, filter ParticipantFilter) ([]domain.Participant, error) {
	var cond sqlParts
	if filter.Name != nil {
		cond.add("name", filter.Name.String())
	}
	if filter.Email != nil {
		cond.add("email", filter.Email.String())
	}
	if filter.EnrollmentStatus != nil {
		cond.add("enrollment_status", filter.EnrollmentStatus.String())
	}
	if filter.TeamID != nil {
		cond.add("team_id", filter.TeamID.String())
	}

	rows, err := r.pool.Query(ctx, `SELECT `+participantColumns+` FROM participants`+cond.where()+` ORDER BY id`, cond.args...)
	if err != nil {
		r.logger.Error("failed to find participants", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find participants: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[participantRow])
	if err != nil {
		r.logger.Error("failed to scan participants", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find participants: %w", err)
	}

	result := make([]domain.Participant, 0, len(found))
	for _, row := range found {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// Update changes the set fields. With nothing set it returns the stored participant.
// A new email already used by a teammate fails with a duplicate email error.
func (r *ParticipantRepositoryImpl) Update(ctx context.Context, id domain.ID, update ParticipantUpdate) (domain.Participant, error) {
	var set sqlParts
	if update.Name != nil {
		set.add("name", update.Name.String())
	}
	if update.Email != nil {
		set.add("email", update.Email.String())
	}
	if update.EnrollmentStatus != nil {
		set.add("enrollment_status", update.EnrollmentStatus.String())
	}

	var query string
	if set.empty() {
		query = `SELECT ` + participantColumns + ` FROM participants WHERE id = ` + set.nextArg(id.String())
	} else {
		where := `id = ` + set.nextArg(id.String())
		if update.Email != nil {
			where += ` AND ` + fmt.Sprintf(noTeammateWithEmail, set.nextArg(update.Email.String()))
		}
		query = `UPDATE participants SET ` + set.set() + ` WHERE ` + where + ` RETURNING ` + participantColumns
	}

	rows, err := r.pool.Query(ctx, query, set.args...)
	if err != nil {
		r.logger.Error("failed to update participant",
			slog.String("participant_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Participant{}, fmt.Errorf("failed to update participant: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[participantRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, r.missingOrDuplicate(ctx, id, update)
		}
		r.logger.Error("failed to update participant",
			slog.String("participant_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Participant{}, fmt.Errorf("failed to update participant: %w", err)
	}

	r.logger.Info("participant updated", slog.String("participant_id", row.ID))
	return row.toDomain()
}

// missingOrDuplicate tells apart the two reasons an update can match no row.
func (r *ParticipantRepositoryImpl) missingOrDuplicate(ctx context.Context, id domain.ID, update ParticipantUpdate) error {
	if update.Email == nil {
		return domain.ErrParticipantNotFound
	}

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM participants WHERE id = $1)`, id.String()).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check participant",
			slog.String("participant_id", id.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to check participant: %w", err)
	}
	if !exists {
		return domain.ErrParticipantNotFound
	}
	return domain.DuplicateEmailError(update.Email.String())
}
