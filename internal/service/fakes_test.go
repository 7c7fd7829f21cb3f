package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"team_task/internal/domain"
	"team_task/internal/repository"
)

var errStorage = errors.New("connection refused")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTeamRepo struct {
	teams map[domain.ID]domain.Team
	err   error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[domain.ID]domain.Team{}}
}

func (f *fakeTeamRepo) List(ctx context.Context) ([]domain.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Team, 0, len(f.teams))
	for _, t := range f.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().String() < out[j].ID().String() })
	return out, nil
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id domain.ID) (domain.Team, error) {
	if f.err != nil {
		return domain.Team{}, f.err
	}
	t, ok := f.teams[id]
	if !ok {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	return t, nil
}

func (f *fakeTeamRepo) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	if f.err != nil {
		return domain.Team{}, f.err
	}
	f.teams[team.ID()] = team
	return team, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, id domain.ID, update repository.TeamUpdate) (domain.Team, error) {
	if f.err != nil {
		return domain.Team{}, f.err
	}
	t, ok := f.teams[id]
	if !ok {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	if update.Name != nil {
		t = t.WithName(*update.Name)
	}
	if update.Participants != nil {
		t = t.WithParticipants(*update.Participants)
	}
	f.teams[id] = t
	return t, nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id domain.ID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.teams[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(f.teams, id)
	return nil
}

type fakeTaskRepo struct {
	tasks map[domain.ID]domain.Task
	saves int
	err   error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[domain.ID]domain.Task{}}
}

func (f *fakeTaskRepo) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	if f.err != nil {
		return domain.Task{}, f.err
	}
	f.saves++
	f.tasks[task.ID()] = task
	return task, nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, id domain.ID) (domain.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) FindManyBy(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Task{}
	for _, t := range f.tasks {
		if filter.IsDone != nil && t.IsDone() != *filter.IsDone {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().String() < out[j].ID().String() })
	return out, nil
}

type fakeParticipantRepo struct {
	participants map[domain.ID]domain.Participant
	lastFilter   repository.ParticipantFilter
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[domain.ID]domain.Participant{}}
}

func (f *fakeParticipantRepo) Save(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	f.participants[p.ID()] = p
	return p, nil
}

func (f *fakeParticipantRepo) FindManyBy(ctx context.Context, filter repository.ParticipantFilter) ([]domain.Participant, error) {
	f.lastFilter = filter
	out := []domain.Participant{}
	for _, p := range f.participants {
		if filter.Name != nil && p.Name() != *filter.Name {
			continue
		}
		if filter.Email != nil && p.Email() != *filter.Email {
			continue
		}
		if filter.EnrollmentStatus != nil && p.EnrollmentStatus() != *filter.EnrollmentStatus {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().String() < out[j].ID().String() })
	return out, nil
}

func (f *fakeParticipantRepo) Update(ctx context.Context, id domain.ID, update repository.ParticipantUpdate) (domain.Participant, error) {
	p, ok := f.participants[id]
	if !ok {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	r := p.ToRecord()
	if update.Name != nil {
		r.Name = update.Name.String()
	}
	if update.Email != nil {
		r.Email = update.Email.String()
	}
	if update.EnrollmentStatus != nil {
		r.EnrollmentStatus = update.EnrollmentStatus.String()
	}
	updated, err := domain.ReconstructParticipant(r.ID, r.Name, r.Email, r.EnrollmentStatus)
	if err != nil {
		return domain.Participant{}, err
	}
	f.participants[id] = updated
	return updated, nil
}

type fakeAssignmentRepo struct {
	assignments map[domain.ID]domain.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: map[domain.ID]domain.Assignment{}}
}

func (f *fakeAssignmentRepo) Save(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	for _, existing := range f.assignments {
		if existing.ID() != a.ID() && existing.TaskID() == a.TaskID() && existing.ParticipantID() == a.ParticipantID() {
			return domain.Assignment{}, domain.ErrAssignmentExists
		}
	}
	f.assignments[a.ID()] = a
	return a, nil
}

func (f *fakeAssignmentRepo) FindManyBy(ctx context.Context, filter repository.AssignmentFilter) ([]domain.Assignment, error) {
	out := []domain.Assignment{}
	for _, a := range f.assignments {
		if filter.TaskID != nil && a.TaskID() != *filter.TaskID {
			continue
		}
		if filter.ParticipantID != nil && a.ParticipantID() != *filter.ParticipantID {
			continue
		}
		if filter.ProgressStatus != nil && a.ProgressStatus() != *filter.ProgressStatus {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, id domain.ID, update repository.AssignmentUpdate) (domain.Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return domain.Assignment{}, domain.ErrAssignmentNotFound
	}
	if update.ProgressStatus != nil {
		a = a.WithProgressStatus(*update.ProgressStatus)
	}
	f.assignments[id] = a
	return a, nil
}

type fakeStatsRepo struct {
	stats *repository.Stats
	err   error
}

func (f *fakeStatsRepo) GetStats(ctx context.Context) (*repository.Stats, error) {
	return f.stats, f.err
}
