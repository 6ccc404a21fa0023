package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	apierrors "github.com/yukikurage/jcp-backend-service/internal/errors"
	"github.com/yukikurage/jcp-backend-service/internal/middleware"
	"github.com/yukikurage/jcp-backend-service/internal/services"
)

// NewRouter builds the gin engine from the route table
func NewRouter(log zerolog.Logger, statusService *services.StatusService) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	statusHandler := NewStatusHandler(statusService)
	Register(r, statusHandler.Routes())

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		apierrors.MethodNotAllowed(c, "")
	})

	return r
}
