package handlers

import (
	"net/http"

	"team_task/internal/domain"
	"team_task/internal/service"

	"github.com/gin-gonic/gin"
)

// POST /participants
func (h *Handler) ParticipantRegister(c *gin.Context) {
	var req service.RegisterParticipantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	participant, err := h.participantService.RegisterParticipant(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"participant": participant})
}

// GET /participants?name=&email=&enrollment_status=&team_id=
func (h *Handler) ParticipantList(c *gin.Context) {
	participants, err := h.participantService.FindParticipants(c.Request.Context(), service.FindParticipantsInput{
		Name:             optionalQuery(c, "name"),
		Email:            optionalQuery(c, "email"),
		EnrollmentStatus: optionalQuery(c, "enrollment_status"),
		TeamID:           optionalQuery(c, "team_id"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

// PATCH /participants/:id
func (h *Handler) ParticipantUpdate(c *gin.Context) {
	var req service.UpdateParticipantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}
	req.ID = c.Param("id")

	participant, err := h.participantService.UpdateParticipant(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participant": participant})
}
