package service

import (
	"context"
	"log/slog"

	"team_task/internal/domain"
	"team_task/internal/repository"
)

// AssignTaskInput assigns a task to a participant. An empty ProgressStatus starts as 未着手.
type AssignTaskInput struct {
	TaskID         string `json:"taskId"`
	ParticipantID  string `json:"participantId"`
	ProgressStatus string `json:"progressStatus"`
}

type FindAssignmentsInput struct {
	TaskID         *string
	ParticipantID  *string
	ProgressStatus *string
}

type UpdateProgressInput struct {
	ID             string `json:"-"`
	ProgressStatus string `json:"progressStatus"`
}

type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	logger         *slog.Logger
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository, logger *slog.Logger) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (s *AssignmentService) AssignTask(ctx context.Context, in AssignTaskInput) (*AssignmentPayload, error) {
	status := in.ProgressStatus
	if status == "" {
		status = domain.ProgressNotStarted.String()
	}

	assignment, err := domain.NewAssignment(in.TaskID, in.ParticipantID, status)
	if err != nil {
		return nil, useCaseError("AssignTask", err)
	}

	saved, err := s.assignmentRepo.Save(ctx, assignment)
	if err != nil {
		return nil, useCaseError("AssignTask", err)
	}

	s.logger.Info("task assigned",
		slog.String("assignment_id", saved.ID().String()),
		slog.String("task_id", in.TaskID),
		slog.String("participant_id", in.ParticipantID),
	)

	payload := toAssignmentPayload(saved)
	return &payload, nil
}

func (s *AssignmentService) FindAssignments(ctx context.Context, in FindAssignmentsInput) ([]AssignmentPayload, error) {
	var (
		filter repository.AssignmentFilter
		err    error
	)
	if filter.TaskID, err = parseOptional(in.TaskID, domain.ParseID); err != nil {
		return nil, useCaseError("FindAssignments", err)
	}
	if filter.ParticipantID, err = parseOptional(in.ParticipantID, domain.ParseID); err != nil {
		return nil, useCaseError("FindAssignments", err)
	}
	if filter.ProgressStatus, err = parseOptional(in.ProgressStatus, domain.NewProgressStatus); err != nil {
		return nil, useCaseError("FindAssignments", err)
	}

	assignments, err := s.assignmentRepo.FindManyBy(ctx, filter)
	if err != nil {
		return nil, useCaseError("FindAssignments", err)
	}

	payloads := make([]AssignmentPayload, len(assignments))
	for i, a := range assignments {
		payloads[i] = toAssignmentPayload(a)
	}
	return payloads, nil
}

// UpdateProgress moves an assignment to another progress status
func (s *AssignmentService) UpdateProgress(ctx context.Context, in UpdateProgressInput) (*AssignmentPayload, error) {
	id, err := domain.ParseID(in.ID)
	if err != nil {
		return nil, useCaseError("UpdateProgress", err)
	}

	status, err := domain.NewProgressStatus(in.ProgressStatus)
	if err != nil {
		return nil, useCaseError("UpdateProgress", err)
	}

	updated, err := s.assignmentRepo.Update(ctx, id, repository.AssignmentUpdate{ProgressStatus: &status})
	if err != nil {
		return nil, useCaseError("UpdateProgress", err)
	}

	s.logger.Info("assignment progress updated",
		slog.String("assignment_id", in.ID),
		slog.String("progress_status", status.String()),
	)

	payload := toAssignmentPayload(updated)
	return &payload, nil
}
