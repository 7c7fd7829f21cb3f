package handlers

import (
	"net/http"

	"team_task/internal/domain"
	"team_task/internal/service"

	"github.com/gin-gonic/gin"
)

// POST /teams
func (h *Handler) TeamCreate(c *gin.Context) {
	var req service.CreateTeamInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// GET /teams
func (h *Handler) TeamList(c *gin.Context) {
	teams, err := h.teamService.FindManyTeams(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GET /teams/:id
func (h *Handler) TeamGet(c *gin.Context) {
	team, err := h.teamService.FindTeamByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// PATCH /teams/:id
func (h *Handler) TeamUpdate(c *gin.Context) {
	var req service.UpdateTeamInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}
	req.ID = c.Param("id")

	team, err := h.teamService.UpdateTeam(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// DELETE /teams/:id
func (h *Handler) TeamDelete(c *gin.Context) {
	if err := h.teamService.DeleteTeam(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
