package service

import (
	"context"
	"log/slog"

	"team_task/internal/domain"
	"team_task/internal/repository"
)

type TeamParticipantInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	EnrollmentStatus string `json:"enrollmentStatus"`
}

type CreateTeamInput struct {
	Name         string                 `json:"name"`
	Participants []TeamParticipantInput `json:"participants"`
}

// UpdateTeamParticipantInput identifies an existing participant by id.
type UpdateTeamParticipantInput struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	EnrollmentStatus string `json:"enrollmentStatus"`
}

// UpdateTeamInput is a partial update. Nil Name or Participants are left unchanged.
type UpdateTeamInput struct {
	ID           string                       `json:"-"`
	Name         *string                      `json:"name"`
	Participants []UpdateTeamParticipantInput `json:"participants"`
}

type TeamService struct {
	teamRepo repository.TeamRepository
	logger   *slog.Logger
}

func NewTeamService(teamRepo repository.TeamRepository, logger *slog.Logger) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

// CreateTeam validates and stores a new team with its participants
func (s *TeamService) CreateTeam(ctx context.Context, in CreateTeamInput) (*TeamPayload, error) {
	participants := make([]domain.ParticipantInput, len(in.Participants))
	for i, p := range in.Participants {
		participants[i] = domain.ParticipantInput{
			Name:             p.Name,
			Email:            p.Email,
			EnrollmentStatus: p.EnrollmentStatus,
		}
	}

	team, err := domain.NewTeam(in.Name, participants)
	if err != nil {
		s.logger.Warn("invalid team data", slog.String("error", err.Error()))
		return nil, useCaseError("CreateTeam", err)
	}

	s.logger.Info("creating team",
		slog.String("team_id", team.ID().String()),
		slog.Int("participants_count", team.Participants().Len()),
	)

	created, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		return nil, useCaseError("CreateTeam", err)
	}

	payload := toTeamPayload(created)
	return &payload, nil
}

// FindTeamByID retrieves a team by id
func (s *TeamService) FindTeamByID(ctx context.Context, id string) (*TeamPayload, error) {
	teamID, err := domain.ParseID(id)
	if err != nil {
		return nil, useCaseError("FindTeamByID", err)
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, useCaseError("FindTeamByID", err)
	}

	s.logger.Info("team retrieved",
		slog.String("team_id", id),
		slog.Int("participants_count", team.Participants().Len()),
	)

	payload := toTeamPayload(team)
	return &payload, nil
}

// FindManyTeams lists all teams. No teams yields an empty slice.
func (s *TeamService) FindManyTeams(ctx context.Context) ([]TeamPayload, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, useCaseError("FindManyTeams", err)
	}

	payloads := make([]TeamPayload, len(teams))
	for i, t := range teams {
		payloads[i] = toTeamPayload(t)
	}

	s.logger.Info("teams listed", slog.Int("count", len(payloads)))
	return payloads, nil
}

// UpdateTeam renames a team and/or replaces its participants
func (s *TeamService) UpdateTeam(ctx context.Context, in UpdateTeamInput) (*TeamPayload, error) {
	teamID, err := domain.ParseID(in.ID)
	if err != nil {
		return nil, useCaseError("UpdateTeam", err)
	}

	var update repository.TeamUpdate

	update.Name, err = parseOptional(in.Name, domain.NewTeamName)
	if err != nil {
		return nil, useCaseError("UpdateTeam", err)
	}

	if in.Participants != nil {
		members := make([]domain.Participant, 0, len(in.Participants))
		for _, p := range in.Participants {
			member, err := domain.ReconstructParticipant(p.ID, p.Name, p.Email, p.EnrollmentStatus)
			if err != nil {
				return nil, useCaseError("UpdateTeam", err)
			}
			members = append(members, member)
		}

		tp, err := domain.ReconstructTeamParticipants(members)
		if err != nil {
			return nil, useCaseError("UpdateTeam", err)
		}
		update.Participants = &tp
	}

	s.logger.Info("updating team",
		slog.String("team_id", in.ID),
		slog.Bool("rename", update.Name != nil),
		slog.Bool("replace_participants", update.Participants != nil),
	)

	team, err := s.teamRepo.Update(ctx, teamID, update)
	if err != nil {
		return nil, useCaseError("UpdateTeam", err)
	}

	payload := toTeamPayload(team)
	return &payload, nil
}

// DeleteTeam removes a team and its participants
func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	teamID, err := domain.ParseID(id)
	if err != nil {
		return useCaseError("DeleteTeam", err)
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return useCaseError("DeleteTeam", err)
	}

	s.logger.Info("team deleted", slog.String("team_id", id))
	return nil
}
