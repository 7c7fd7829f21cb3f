package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"team_task/internal/domain"
	"team_task/internal/service"
	"team_task/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Handler struct {
	teamService        *service.TeamService
	taskService        *service.TaskService
	participantService *service.ParticipantService
	assignmentService  *service.AssignmentService
	statsService       *service.StatsService
	health             HealthChecker
	logger             *slog.Logger
}

func NewHandler(
	teamService *service.TeamService,
	taskService *service.TaskService,
	participantService *service.ParticipantService,
	assignmentService *service.AssignmentService,
	statsService *service.StatsService,
	health HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		teamService:        teamService,
		taskService:        taskService,
		participantService: participantService,
		assignmentService:  assignmentService,
		statsService:       statsService,
		health:             health,
		logger:             logger,
	}
}

// /health
func (h *Handler) GetHealth(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Health(c.Request.Context()); err != nil {
			logger.FromContext(c.Request.Context(), h.logger).Error("health check failed",
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// /stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apiErr := domain.ToAPIError(err)

	var statusCode int
	switch apiErr.Code {
	case domain.CodeBadRequest:
		statusCode = http.StatusBadRequest
	case domain.CodeNotFound:
		statusCode = http.StatusNotFound
	case domain.CodeConflict:
		statusCode = http.StatusConflict
	case domain.CodeUnsupportedMediaType:
		statusCode = http.StatusUnsupportedMediaType
	default:
		statusCode = http.StatusInternalServerError
	}

	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContext(c.Request.Context(), h.logger).Log(c.Request.Context(), level, "request error",
		slog.String("code", string(apiErr.Code)),
		slog.String("message", apiErr.Message),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
	)

	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

// optionalQuery returns nil when the parameter is absent.
func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.GetHealth)
	r.GET("/stats", h.GetStats)

	r.POST("/teams", h.TeamCreate)
	r.GET("/teams", h.TeamList)
	r.GET("/teams/:id", h.TeamGet)
	r.PATCH("/teams/:id", h.TeamUpdate)
	r.DELETE("/teams/:id", h.TeamDelete)

	r.POST("/tasks", h.TaskCreate)
	r.GET("/tasks", h.TaskList)
	r.GET("/tasks/:id", h.TaskGet)
	r.PATCH("/tasks/:id/title", h.TaskEditTitle)
	r.POST("/tasks/:id/toggle-done", h.TaskToggleDone)

	r.POST("/participants", h.ParticipantRegister)
	r.GET("/participants", h.ParticipantList)
	r.PATCH("/participants/:id", h.ParticipantUpdate)

	r.POST("/assignments", h.AssignmentCreate)
	r.GET("/assignments", h.AssignmentList)
	r.PATCH("/assignments/:id", h.AssignmentUpdate)
}
