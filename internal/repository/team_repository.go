// Имплементация репозитория для работы с командами в базе данных postgresql
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"team_task/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectTeamByID = `SELECT id, name FROM teams WHERE id = $1`

	selectTeamParticipants = `
		SELECT id, name, email, enrollment_status
		FROM participants
		WHERE team_id = $1
		ORDER BY id`

	upsertTeamParticipant = `
		INSERT INTO participants (id, name, email, enrollment_status, team_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			enrollment_status = EXCLUDED.enrollment_status,
			team_id = EXCLUDED.team_id
		WHERE participants.team_id IS NULL OR participants.team_id = EXCLUDED.team_id`
)

type teamRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type memberRow struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Email            string `db:"email"`
	EnrollmentStatus string `db:"enrollment_status"`
	TeamID           string `db:"team_id"`
}

type TeamRepositoryImpl struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTeamRepository(pool *pgxpool.Pool, logger *slog.Logger) *TeamRepositoryImpl {
	return &TeamRepositoryImpl{
		pool:   pool,
		logger: logger,
	}
}

// List returns all teams ordered by id
func (r *TeamRepositoryImpl) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		r.logger.Error("failed to list teams", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	teams, err := pgx.CollectRows(rows, pgx.RowToStructByName[teamRow])
	if err != nil {
		r.logger.Error("failed to scan teams", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT id, name, email, enrollment_status, team_id
		FROM participants
		WHERE team_id IS NOT NULL
		ORDER BY id`)
	if err != nil {
		r.logger.Error("failed to list team members", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[memberRow])
	if err != nil {
		r.logger.Error("failed to scan team members", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	byTeam := make(map[string][]domain.ParticipantRecord, len(teams))
	for _, m := range members {
		byTeam[m.TeamID] = append(byTeam[m.TeamID], domain.ParticipantRecord{
			ID:               m.ID,
			Name:             m.Name,
			Email:            m.Email,
			EnrollmentStatus: m.EnrollmentStatus,
		})
	}

	result := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		team, err := domain.ReconstructTeam(t.ID, t.Name, byTeam[t.ID])
		if err != nil {
			r.logger.Error("failed to reconstruct team",
				slog.String("team_id", t.ID),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: failed to reconstruct team %s: %v", domain.ErrDatabaseError, t.ID, err)
		}
		result = append(result, team)
	}

	return result, nil
}

// FindByID retrieves a team by id with its participants
func (r *TeamRepositoryImpl) FindByID(ctx context.Context, id domain.ID) (domain.Team, error) {
	return r.load(ctx, r.pool, id)
}

// Create creates a team with participants in a transaction
func (r *TeamRepositoryImpl) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	var created domain.Team
	err := runInTx(ctx, r.pool, r.logger, "create team", func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO teams (id, name) VALUES ($1, $2)`,
			team.ID().String(), team.Name().String())
		if err != nil {
			r.logger.Error("failed to create team in transaction",
				slog.String("team_id", team.ID().String()),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("failed to create team: %w", err)
		}

		if err := r.upsertMembers(ctx, tx, team.ID(), team.Participants()); err != nil {
			return err
		}

		created, err = r.load(ctx, tx, team.ID())
		return err
	})
	if err != nil {
		return domain.Team{}, err
	}

	r.logger.Info("team created with participants in transaction",
		slog.String("team_id", created.ID().String()),
		slog.Int("participants_count", created.Participants().Len()),
	)
	return created, nil
}

// Update renames the team and/or replaces its participants in a transaction.
// Participants no longer listed are deleted.
func (r *TeamRepositoryImpl) Update(ctx context.Context, id domain.ID, update TeamUpdate) (domain.Team, error) {
	var updated domain.Team
	err := runInTx(ctx, r.pool, r.logger, "update team", func(ctx context.Context, tx pgx.Tx) error {
		var name *string
		if update.Name != nil {
			s := update.Name.String()
			name = &s
		}
		tag, err := tx.Exec(ctx, `UPDATE teams SET name = COALESCE($2, name) WHERE id = $1`, id.String(), name)
		if err != nil {
			r.logger.Error("failed to update team in transaction",
				slog.String("team_id", id.String()),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("failed to update team: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTeamNotFound
		}

		if update.Participants != nil {
			if err := r.upsertMembers(ctx, tx, id, *update.Participants); err != nil {
				return err
			}

			keep := make([]string, 0, update.Participants.Len())
			for _, p := range update.Participants.Participants() {
				keep = append(keep, p.ID().String())
			}
			_, err = tx.Exec(ctx, `DELETE FROM participants WHERE team_id = $1 AND NOT (id = ANY($2))`, id.String(), keep)
			if err != nil {
				r.logger.Error("failed to delete removed participants in transaction",
					slog.String("team_id", id.String()),
					slog.String("error", err.Error()),
				)
				return fmt.Errorf("failed to delete removed participants: %w", err)
			}
		}

		updated, err = r.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return domain.Team{}, err
	}

	r.logger.Info("team updated in transaction",
		slog.String("team_id", id.String()),
		slog.Int("participants_count", updated.Participants().Len()),
	)
	return updated, nil
}

// Delete removes a team and its participants in a transaction
func (r *TeamRepositoryImpl) Delete(ctx context.Context, id domain.ID) error {
	err := runInTx(ctx, r.pool, r.logger, "delete team", func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM participants WHERE team_id = $1`, id.String()); err != nil {
			r.logger.Error("failed to delete team participants in transaction",
				slog.String("team_id", id.String()),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("failed to delete team participants: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id.String())
		if err != nil {
			r.logger.Error("failed to delete team in transaction",
				slog.String("team_id", id.String()),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("failed to delete team: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTeamNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("team deleted in transaction", slog.String("team_id", id.String()))
	return nil
}

// upsertMembers writes participants in id order so concurrent writers lock rows consistently.
// A member already on another team is not moved; the call fails with domain.ErrParticipantInOtherTeam.
func (r *TeamRepositoryImpl) upsertMembers(ctx context.Context, tx pgx.Tx, teamID domain.ID, participants domain.TeamParticipants) error {
	members := participants.ForPersistence()
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})

	for _, m := range members {
		tag, err := tx.Exec(ctx, upsertTeamParticipant, m.ID, m.Name, m.Email, m.EnrollmentStatus, teamID.String())
		if err != nil {
			r.logger.Error("failed to upsert participant in transaction",
				slog.String("team_id", teamID.String()),
				slog.String("participant_id", m.ID),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("failed to upsert participant %s: %w", m.ID, err)
		}
		if tag.RowsAffected() == 0 {
			r.logger.Warn("participant belongs to another team",
				slog.String("team_id", teamID.String()),
				slog.String("participant_id", m.ID),
			)
			return fmt.Errorf("%w: %s", domain.ErrParticipantInOtherTeam, m.ID)
		}
	}
	return nil
}

func (r *TeamRepositoryImpl) load(ctx context.Context, q querier, id domain.ID) (domain.Team, error) {
	var t teamRow
	err := q.QueryRow(ctx, selectTeamByID, id.String()).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Team{}, domain.ErrTeamNotFound
		}
		r.logger.Error("failed to get team",
			slog.String("team_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Team{}, fmt.Errorf("failed to get team: %w", err)
	}

	rows, err := q.Query(ctx, selectTeamParticipants, id.String())
	if err != nil {
		r.logger.Error("failed to get team participants",
			slog.String("team_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Team{}, fmt.Errorf("failed to get team participants: %w", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[participantRow])
	if err != nil {
		return domain.Team{}, fmt.Errorf("failed to get team participants: %w", err)
	}

	records := make([]domain.ParticipantRecord, len(members))
	for i, m := range members {
		records[i] = m.record()
	}

	team, err := domain.ReconstructTeam(t.ID, t.Name, records)
	if err != nil {
		r.logger.Error("failed to reconstruct team",
			slog.String("team_id", t.ID),
			slog.String("error", err.Error()),
		)
		return domain.Team{}, fmt.Errorf("%w: failed to reconstruct team %s: %v", domain.ErrDatabaseError, t.ID, err)
	}
	return team, nil
}
