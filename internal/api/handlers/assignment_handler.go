package handlers

import (
	"net/http"

	"team_task/internal/domain"
	"team_task/internal/service"

	"github.com/gin-gonic/gin"
)

// POST /assignments
func (h *Handler) AssignmentCreate(c *gin.Context) {
	var req service.AssignTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	assignment, err := h.assignmentService.AssignTask(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

// GET /assignments?task_id=&participant_id=&progress_status=
func (h *Handler) AssignmentList(c *gin.Context) {
	assignments, err := h.assignmentService.FindAssignments(c.Request.Context(), service.FindAssignmentsInput{
		TaskID:         optionalQuery(c, "task_id"),
		ParticipantID:  optionalQuery(c, "participant_id"),
		ProgressStatus: optionalQuery(c, "progress_status"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

// PATCH /assignments/:id
func (h *Handler) AssignmentUpdate(c *gin.Context) {
	var req service.UpdateProgressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}
	req.ID = c.Param("id")

	assignment, err := h.assignmentService.UpdateProgress(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}
