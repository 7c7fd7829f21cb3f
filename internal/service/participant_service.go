package service

import (
	"context"
	"log/slog"

	"team_task/internal/domain"
	"team_task/internal/repository"
)

type RegisterParticipantInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	EnrollmentStatus string `json:"enrollmentStatus"`
}

// FindParticipantsInput narrows the result to participants matching every set field.
type FindParticipantsInput struct {
	Name             *string
	Email            *string
	EnrollmentStatus *string
	TeamID           *string
}

type UpdateParticipantInput struct {
	ID               string  `json:"-"`
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	EnrollmentStatus *string `json:"enrollmentStatus"`
}

type ParticipantService struct {
	participantRepo repository.ParticipantRepository
	logger          *slog.Logger
}

func NewParticipantService(participantRepo repository.ParticipantRepository, logger *slog.Logger) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		logger:          logger,
	}
}

// RegisterParticipant stores a participant that does not belong to a team yet
func (s *ParticipantService) RegisterParticipant(ctx context.Context, in RegisterParticipantInput) (*ParticipantPayload, error) {
	participant, err := domain.NewParticipant(in.Name, in.Email, in.EnrollmentStatus)
	if err != nil {
		return nil, useCaseError("RegisterParticipant", err)
	}

	saved, err := s.participantRepo.Save(ctx, participant)
	if err != nil {
		return nil, useCaseError("RegisterParticipant", err)
	}

	s.logger.Info("participant registered", slog.String("participant_id", saved.ID().String()))

	payload := toParticipantPayload(saved)
	return &payload, nil
}

func (s *ParticipantService) FindParticipants(ctx context.Context, in FindParticipantsInput) ([]ParticipantPayload, error) {
	var (
		filter repository.ParticipantFilter
		err    error
	)
	if filter.Name, err = parseOptional(in.Name, domain.NewName); err != nil {
		return nil, useCaseError("FindParticipants", err)
	}
	if filter.Email, err = parseOptional(in.Email, domain.NewEmail); err != nil {
		return nil, useCaseError("FindParticipants", err)
	}
	if filter.EnrollmentStatus, err = parseOptional(in.EnrollmentStatus, domain.NewEnrollmentStatus); err != nil {
		return nil, useCaseError("FindParticipants", err)
	}
	if filter.TeamID, err = parseOptional(in.TeamID, domain.ParseID); err != nil {
		return nil, useCaseError("FindParticipants", err)
	}

	participants, err := s.participantRepo.FindManyBy(ctx, filter)
	if err != nil {
		return nil, useCaseError("FindParticipants", err)
	}

	payloads := make([]ParticipantPayload, len(participants))
	for i, p := range participants {
		payloads[i] = toParticipantPayload(p)
	}
	return payloads, nil
}

// UpdateParticipant changes the set fields of a participant
func (s *ParticipantService) UpdateParticipant(ctx context.Context, in UpdateParticipantInput) (*ParticipantPayload, error) {
	id, err := domain.ParseID(in.ID)
	if err != nil {
		return nil, useCaseError("UpdateParticipant", err)
	}

	var update repository.ParticipantUpdate
	if update.Name, err = parseOptional(in.Name, domain.NewName); err != nil {
		return nil, useCaseError("UpdateParticipant", err)
	}
	if update.Email, err = parseOptional(in.Email, domain.NewEmail); err != nil {
		return nil, useCaseError("UpdateParticipant", err)
	}
	if update.EnrollmentStatus, err = parseOptional(in.EnrollmentStatus, domain.NewEnrollmentStatus); err != nil {
		return nil, useCaseError("UpdateParticipant", err)
	}

	updated, err := s.participantRepo.Update(ctx, id, update)
	if err != nil {
		return nil, useCaseError("UpdateParticipant", err)
	}

	s.logger.Info("participant updated", slog.String("participant_id", in.ID))

	payload := toParticipantPayload(updated)
	return &payload, nil
}
