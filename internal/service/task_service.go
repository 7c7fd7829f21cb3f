package service

import (
	"context"
	"fmt"
	"log/slog"

	"team_task/internal/domain"
	"team_task/internal/repository"
)

// TaskListFilter selects which tasks FindManyTasks returns.
type TaskListFilter string

const (
	TaskListAll  TaskListFilter = "all"
	TaskListTodo TaskListFilter = "todo"
)

// ParseTaskListFilter accepts "all", "todo" or an empty string (all).
func ParseTaskListFilter(raw string) (TaskListFilter, error) {
	switch TaskListFilter(raw) {
	case "", TaskListAll:
		return TaskListAll, nil
	case TaskListTodo:
		return TaskListTodo, nil
	default:
		return "", fmt.Errorf("%w: unknown task filter %q", domain.ErrInvalidInput, raw)
	}
}

type CreateTaskInput struct {
	Title string `json:"title"`
}

type EditTaskTitleInput struct {
	ID    string `json:"-"`
	Title string `json:"title"`
}

type TaskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, logger *slog.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask stores a new, incomplete task
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*TaskPayload, error) {
	task, err := domain.NewTask(in.Title)
	if err != nil {
		return nil, useCaseError("CreateTask", err)
	}

	saved, err := s.taskRepo.Save(ctx, task)
	if err != nil {
		return nil, useCaseError("CreateTask", err)
	}

	s.logger.Info("task created", slog.String("task_id", saved.ID().String()))

	payload := toTaskPayload(saved)
	return &payload, nil
}

func (s *TaskService) FindTask(ctx context.Context, id string) (*TaskPayload, error) {
	taskID, err := domain.ParseID(id)
	if err != nil {
		return nil, useCaseError("FindTask", err)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, useCaseError("FindTask", err)
	}

	payload := toTaskPayload(task)
	return &payload, nil
}

// FindManyTasks lists tasks. The todo filter keeps only tasks that are not done.
func (s *TaskService) FindManyTasks(ctx context.Context, filter TaskListFilter) ([]TaskPayload, error) {
	var repoFilter repository.TaskFilter
	if filter == TaskListTodo {
		notDone := domain.NewIsDone(false)
		repoFilter.IsDone = &notDone
	}

	tasks, err := s.taskRepo.FindManyBy(ctx, repoFilter)
	if err != nil {
		return nil, useCaseError("FindManyTasks", err)
	}

	payloads := make([]TaskPayload, len(tasks))
	for i, t := range tasks {
		payloads[i] = toTaskPayload(t)
	}

	s.logger.Info("tasks listed",
		slog.String("filter", string(filter)),
		slog.Int("count", len(payloads)),
	)
	return payloads, nil
}

func (s *TaskService) EditTaskTitle(ctx context.Context, in EditTaskTitleInput) (*TaskPayload, error) {
	taskID, err := domain.ParseID(in.ID)
	if err != nil {
		return nil, useCaseError("EditTaskTitle", err)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, useCaseError("EditTaskTitle", err)
	}

	task, err = task.UpdateTitle(in.Title)
	if err != nil {
		return nil, useCaseError("EditTaskTitle", err)
	}

	saved, err := s.taskRepo.Save(ctx, task)
	if err != nil {
		return nil, useCaseError("EditTaskTitle", err)
	}

	s.logger.Info("task title updated", slog.String("task_id", in.ID))

	payload := toTaskPayload(saved)
	return &payload, nil
}

// ToggleTaskDone flips the completion flag of a task
func (s *TaskService) ToggleTaskDone(ctx context.Context, id string) (*TaskPayload, error) {
	taskID, err := domain.ParseID(id)
	if err != nil {
		return nil, useCaseError("ToggleTaskDone", err)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, useCaseError("ToggleTaskDone", err)
	}

	saved, err := s.taskRepo.Save(ctx, task.ToggleDone())
	if err != nil {
		return nil, useCaseError("ToggleTaskDone", err)
	}

	s.logger.Info("task done toggled",
		slog.String("task_id", id),
		slog.Bool("is_done", saved.IsDone().Bool()),
	)

	payload := toTaskPayload(saved)
	return &payload, nil
}
