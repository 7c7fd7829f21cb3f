// Интерфейсы репозиториев для работы с данными
package repository

import (
	"context"

	"team_task/internal/domain"
)

type TeamRepository interface {
	// List returns every team with its participants
	List(ctx context.Context) ([]domain.Team, error)
	// FindByID retrieves a team by id
	FindByID(ctx context.Context, id domain.ID) (domain.Team, error)
	// Create stores a team with its participants in a transaction
	Create(ctx context.Context, team domain.Team) (domain.Team, error)
	// Update applies a partial update in a transaction
	Update(ctx context.Context, id domain.ID, update TeamUpdate) (domain.Team, error)
	// Delete removes a team and its participants in a transaction
	Delete(ctx context.Context, id domain.ID) error
}

type ParticipantRepository interface {
	// Save creates or updates a participant
	Save(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	// FindManyBy returns participants matching every set filter field
	FindManyBy(ctx context.Context, filter ParticipantFilter) ([]domain.Participant, error)
	// Update changes the set fields of a participant
	Update(ctx context.Context, id domain.ID, update ParticipantUpdate) (domain.Participant, error)
}

type TaskRepository interface {
	// Save creates or updates a task
	Save(ctx context.Context, task domain.Task) (domain.Task, error)
	// FindByID retrieves a task by id
	FindByID(ctx context.Context, id domain.ID) (domain.Task, error)
	// FindManyBy returns tasks matching every set filter field
	FindManyBy(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
}

type AssignmentRepository interface {
	// Save creates or updates an assignment
	Save(ctx context.Context, assignment domain.Assignment) (domain.Assignment, error)
	// FindManyBy returns assignments matching every set filter field
	FindManyBy(ctx context.Context, filter AssignmentFilter) ([]domain.Assignment, error)
	// Update changes the set fields of an assignment
	Update(ctx context.Context, id domain.ID, update AssignmentUpdate) (domain.Assignment, error)
}

type StatsRepository interface {
	// GetStats retrieves overall statistics
	GetStats(ctx context.Context) (*Stats, error)
}

// TeamUpdate holds the fields to change. Nil fields are left as they are.
type TeamUpdate struct {
	Name         *domain.TeamName
	Participants *domain.TeamParticipants
}

type ParticipantFilter struct {
	Name             *domain.Name
	Email            *domain.Email
	EnrollmentStatus *domain.EnrollmentStatus
	TeamID           *domain.ID
}

type ParticipantUpdate struct {
	Name             *domain.Name
	Email            *domain.Email
	EnrollmentStatus *domain.EnrollmentStatus
}

type TaskFilter struct {
	IsDone *domain.IsDone
}

type AssignmentFilter struct {
	TaskID         *domain.ID
	ParticipantID  *domain.ID
	ProgressStatus *domain.ProgressStatus
}

type AssignmentUpdate struct {
	ProgressStatus *domain.ProgressStatus
}

// Stats represents overall system statistics
type Stats struct {
	TotalTeams        int `json:"total_teams"`
	TotalParticipants int `json:"total_participants"`
	TotalTasks        int `json:"total_tasks"`
	DoneTasks         int `json:"done_tasks"`
	TotalAssignments  int `json:"total_assignments"`
}
