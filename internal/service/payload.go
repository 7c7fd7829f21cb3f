package service

import "team_task/internal/domain"

// Use case outputs. All values are plain strings and bools.

type ParticipantPayload struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	EnrollmentStatus string `json:"enrollmentStatus"`
}

type TeamPayload struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Participants []ParticipantPayload `json:"participants"`
}

type TaskPayload struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

type AssignmentPayload struct {
	ID             string `json:"id"`
	TaskID         string `json:"taskId"`
	ParticipantID  string `json:"participantId"`
	ProgressStatus string `json:"progressStatus"`
}

func toParticipantPayload(p domain.Participant) ParticipantPayload {
	r := p.ToRecord()
	return ParticipantPayload{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		EnrollmentStatus: r.EnrollmentStatus,
	}
}

func toTeamPayload(t domain.Team) TeamPayload {
	records := t.Participants().ForPersistence()
	participants := make([]ParticipantPayload, len(records))
	for i, r := range records {
		participants[i] = ParticipantPayload{
			ID:               r.ID,
			Name:             r.Name,
			Email:            r.Email,
			EnrollmentStatus: r.EnrollmentStatus,
		}
	}
	return TeamPayload{
		ID:           t.ID().String(),
		Name:         t.Name().String(),
		Participants: participants,
	}
}

func toTaskPayload(t domain.Task) TaskPayload {
	return TaskPayload{
		ID:     t.ID().String(),
		Title:  t.Title().String(),
		IsDone: t.IsDone().Bool(),
	}
}

func toAssignmentPayload(a domain.Assignment) AssignmentPayload {
	return AssignmentPayload{
		ID:             a.ID().String(),
		TaskID:         a.TaskID().String(),
		ParticipantID:  a.ParticipantID().String(),
		ProgressStatus: a.ProgressStatus().String(),
	}
}
