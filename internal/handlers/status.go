package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jcp-backend-service/internal/constants"
	apierrors "github.com/yukikurage/jcp-backend-service/internal/errors"
	"github.com/yukikurage/jcp-backend-service/internal/services"
)

// StatusHandler serves the status, discovery and liveness endpoints
type StatusHandler struct {
	statusService *services.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// Root lists the advertised endpoints of the route table.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusService.Root(AdvertisedPaths(h.Routes())))
}

// Health reports the service as up with the current timestamp.
func (h *StatusHandler) Health(c *gin.Context) {
	health, err := h.statusService.Health()
	if err != nil {
		if errors.Is(err, services.ErrClockUnavailable) {
			apierrors.InternalError(c, "Clock unavailable")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, health)
}

func (h *StatusHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusService.Ping())
}

// Liveness answers 503 when a component is down.
func (h *StatusHandler) Liveness(c *gin.Context) {
	live := h.statusService.Liveness(c.Request.Context())

	code := http.StatusOK
	if live.Status != constants.StatusUp {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, live)
}
