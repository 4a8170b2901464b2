package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"satellite-monitor-backend/internal/parse"
)

// StatusHandler serves /satelites.
type StatusHandler struct {
	svc StatusService
}

// NewStatusHandler creates a handler backed by svc.
func NewStatusHandler(svc StatusService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

// ListSatellites handles GET /satelites.
func (h *StatusHandler) ListSatellites(c *gin.Context) {
	sats, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, detailSatelliteNotFound, "Erro ao buscar satélites")
		return
	}
	c.JSON(http.StatusOK, sats)
}

// GetSatellite handles GET /satelites/:id.
func (h *StatusHandler) GetSatellite(c *gin.Context) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		respondError(c, err, detailSatelliteNotFound, "Erro ao buscar satélite")
		return
	}
	sat, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, detailSatelliteNotFound, "Erro ao buscar satélite")
		return
	}
	c.JSON(http.StatusOK, sat)
}

// GetSatelliteByName handles GET /satelites/name/:name.
func (h *StatusHandler) GetSatelliteByName(c *gin.Context) {
	sat, err := h.svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err, detailSatelliteNotFound, "Erro ao buscar satélite")
		return
	}
	c.JSON(http.StatusOK, sat)
}
