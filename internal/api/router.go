package api

import (
	"log/slog"

	"team_task/internal/api/handlers"
	"team_task/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(handler *handlers.Handler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.RequireJSON())

	handler.RegisterRoutes(r)

	return r
}
