package handlers

import (
	"net/http"

	"team_task/internal/domain"
	"team_task/internal/service"

	"github.com/gin-gonic/gin"
)

// POST /tasks
func (h *Handler) TaskCreate(c *gin.Context) {
	var req service.CreateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GET /tasks?filter=todo|all
func (h *Handler) TaskList(c *gin.Context) {
	filter, err := service.ParseTaskListFilter(c.Query("filter"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	tasks, err := h.taskService.FindManyTasks(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GET /tasks/:id
func (h *Handler) TaskGet(c *gin.Context) {
	task, err := h.taskService.FindTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// PATCH /tasks/:id/title
func (h *Handler) TaskEditTitle(c *gin.Context) {
	var req service.EditTaskTitleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}
	req.ID = c.Param("id")

	task, err := h.taskService.EditTaskTitle(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// POST /tasks/:id/toggle-done
func (h *Handler) TaskToggleDone(c *gin.Context) {
	task, err := h.taskService.ToggleTaskDone(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}
