package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"team_task/internal/api"
	"team_task/internal/api/handlers"
	"team_task/internal/domain"
	"team_task/internal/repository"
	"team_task/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTeams struct{ teams map[domain.ID]domain.Team }

func (m *memTeams) List(ctx context.Context) ([]domain.Team, error) {
	out := []domain.Team{}
	for _, t := range m.teams {
		out = append(out, t)
	}
	return out, nil
}

func (m *memTeams) FindByID(ctx context.Context, id domain.ID) (domain.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	return t, nil
}

func (m *memTeams) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	m.teams[team.ID()] = team
	return team, nil
}

func (m *memTeams) Update(ctx context.Context, id domain.ID, update repository.TeamUpdate) (domain.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	if update.Name != nil {
		t = t.WithName(*update.Name)
	}
	if update.Participants != nil {
		t = t.WithParticipants(*update.Participants)
	}
	m.teams[id] = t
	return t, nil
}

func (m *memTeams) Delete(ctx context.Context, id domain.ID) error {
	if _, ok := m.teams[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(m.teams, id)
	return nil
}

type memTasks struct{ tasks map[domain.ID]domain.Task }

func (m *memTasks) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	m.tasks[task.ID()] = task
	return task, nil
}

func (m *memTasks) FindByID(ctx context.Context, id domain.ID) (domain.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

func (m *memTasks) FindManyBy(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, t := range m.tasks {
		if filter.IsDone == nil || t.IsDone() == *filter.IsDone {
			out = append(out, t)
		}
	}
	return out, nil
}

type memParticipants struct{ saved []domain.Participant }

func (m *memParticipants) Save(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	m.saved = append(m.saved, p)
	return p, nil
}

func (m *memParticipants) FindManyBy(ctx context.Context, filter repository.ParticipantFilter) ([]domain.Participant, error) {
	return m.saved, nil
}

func (m *memParticipants) Update(ctx context.Context, id domain.ID, update repository.ParticipantUpdate) (domain.Participant, error) {
	return domain.Participant{}, domain.ErrParticipantNotFound
}

type memAssignments struct{ err error }

func (m *memAssignments) Save(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	if m.err != nil {
		return domain.Assignment{}, m.err
	}
	return a, nil
}

func (m *memAssignments) FindManyBy(ctx context.Context, filter repository.AssignmentFilter) ([]domain.Assignment, error) {
	return []domain.Assignment{}, nil
}

func (m *memAssignments) Update(ctx context.Context, id domain.ID, update repository.AssignmentUpdate) (domain.Assignment, error) {
	return domain.Assignment{}, domain.ErrAssignmentNotFound
}

type memStats struct{}

func (memStats) GetStats(ctx context.Context) (*repository.Stats, error) {
	return &repository.Stats{TotalTeams: 1}, nil
}

type pinger struct{ err error }

func (p *pinger) Health(ctx context.Context) error { return p.err }

type testServer struct {
	router      *gin.Engine
	assignments *memAssignments
	health      *pinger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assignments := &memAssignments{}
	health := &pinger{}

	h := handlers.NewHandler(
		service.NewTeamService(&memTeams{teams: map[domain.ID]domain.Team{}}, logger),
		service.NewTaskService(&memTasks{tasks: map[domain.ID]domain.Task{}}, logger),
		service.NewParticipantService(&memParticipants{}, logger),
		service.NewAssignmentService(assignments, logger),
		service.NewStatsService(memStats{}, logger),
		health,
		logger,
	)
	router := api.NewRouter(h, logger)
	gin.SetMode(gin.TestMode)

	return &testServer{router: router, assignments: assignments, health: health}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func errorBody(t *testing.T, body map[string]any) (string, string) {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error object: %v", body)
	return e["code"].(string), e["message"].(string)
}

func TestHealthAndStats(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	s.health.err = errors.New("connection refused")
	w, body = s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unavailable", body["status"])

	w, body = s.do(t, http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total_teams"])
}

func TestTeamEndpoints(t *testing.T) {
	s := newTestServer(t)

	create := map[string]any{
		"name": "チームA",
		"participants": []map[string]any{
			{"name": "参加者1", "email": "test1@example.com", "enrollmentStatus": "在籍中"},
			{"name": "参加者2", "email": "test2@example.com", "enrollmentStatus": "在籍中"},
		},
	}
	w, body := s.do(t, http.MethodPost, "/teams", create)
	require.Equal(t, http.StatusCreated, w.Code)
	team := body["team"].(map[string]any)
	id := team["id"].(string)
	assert.Equal(t, "チームA", team["name"])
	assert.Len(t, team["participants"], 2)

	w, body = s.do(t, http.MethodGet, "/teams/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, body["team"].(map[string]any)["id"])

	w, body = s.do(t, http.MethodGet, "/teams", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["teams"], 1)

	w, body = s.do(t, http.MethodPatch, "/teams/"+id, map[string]any{"name": "チームB"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "チームB", body["team"].(map[string]any)["name"])

	w, _ = s.do(t, http.MethodDelete, "/teams/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, body = s.do(t, http.MethodGet, "/teams/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	code, msg := errorBody(t, body)
	assert.Equal(t, "NOT_FOUND", code)
	assert.Equal(t, "FindTeamByIDUseCaseError: team not found", msg)
}

func TestTeamCreate_Validation(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/teams", map[string]any{
		"name": "チームA",
		"participants": []map[string]any{
			{"name": "参加者1", "email": "test1@example.com", "enrollmentStatus": "在籍中"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, msg := errorBody(t, body)
	assert.Equal(t, "BAD_REQUEST", code)
	assert.Contains(t, msg, "現在の参加者数: 1")

	w, body = s.do(t, http.MethodGet, "/teams/123", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, msg = errorBody(t, body)
	assert.Equal(t, "FindTeamByIDUseCaseError: Invalid id: 123", msg)
}

func TestTaskEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/tasks", map[string]any{"title": "Hello, World"})
	require.Equal(t, http.StatusCreated, w.Code)
	task := body["task"].(map[string]any)
	id := task["id"].(string)
	assert.Equal(t, false, task["isDone"])

	w, body = s.do(t, http.MethodPost, "/tasks/"+id+"/toggle-done", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["task"].(map[string]any)["isDone"])

	w, body = s.do(t, http.MethodGet, "/tasks?filter=todo", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["tasks"])

	w, body = s.do(t, http.MethodGet, "/tasks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["tasks"], 1)

	w, _ = s.do(t, http.MethodGet, "/tasks?filter=unknown", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.do(t, http.MethodPatch, "/tasks/"+id+"/title", map[string]any{"title": "買い物"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "買い物", body["task"].(map[string]any)["title"])

	w, _ = s.do(t, http.MethodGet, "/tasks/"+domain.NewID().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestParticipantEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/participants", map[string]any{
		"name": "田中太郎", "email": "tanaka@example.com", "enrollmentStatus": "在籍中",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "田中太郎", body["participant"].(map[string]any)["name"])

	w, body = s.do(t, http.MethodGet, "/participants?enrollment_status="+url.QueryEscape("在籍中"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["participants"], 1)

	w, body = s.do(t, http.MethodGet, "/participants?team_id=bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, msg := errorBody(t, body)
	assert.Equal(t, "FindParticipantsUseCaseError: Invalid id: bad", msg)

	w, _ = s.do(t, http.MethodPatch, "/participants/"+domain.NewID().String(), map[string]any{"name": "鈴木"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignmentEndpoints(t *testing.T) {
	s := newTestServer(t)

	req := map[string]any{"taskId": domain.NewID().String(), "participantId": domain.NewID().String()}
	w, body := s.do(t, http.MethodPost, "/assignments", req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "未着手", body["assignment"].(map[string]any)["progressStatus"])

	s.assignments.err = domain.ErrAssignmentExists
	w, body = s.do(t, http.MethodPost, "/assignments", req)
	assert.Equal(t, http.StatusConflict, w.Code)
	code, _ := errorBody(t, body)
	assert.Equal(t, "CONFLICT", code)

	w, body = s.do(t, http.MethodGet, "/assignments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["assignments"])

	w, _ = s.do(t, http.MethodPatch, "/assignments/"+domain.NewID().String(), map[string]any{"progressStatus": "完了"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestBodyHandling(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`title=x`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	s := newTestServer(t)
	s.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w, body := s.do(t, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	code, _ := errorBody(t, body)
	assert.Equal(t, "INTERNAL_ERROR", code)
}
