package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"satellite-monitor-backend/internal/parse"
)

const (
	errFetchTelemetry = "Erro ao buscar telemetria"
	errFetchHistory   = "Erro ao buscar histórico"
)

// TelemetryHandler serves /telemetry and /telemetria.
type TelemetryHandler struct {
	svc TelemetryService
}

// NewTelemetryHandler creates a handler backed by svc.
func NewTelemetryHandler(svc TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{svc: svc}
}

// ListTelemetry handles GET /telemetry?limit=.
func (h *TelemetryHandler) ListTelemetry(c *gin.Context) {
	limit, err := parse.Limit(c.Query("limit"), parse.DefaultLimit, parse.MaxLimit)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchTelemetry)
		return
	}
	rows, err := h.svc.ListAll(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchTelemetry)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetSatelliteTelemetry handles GET /telemetria/:id?limit=.
func (h *TelemetryHandler) GetSatelliteTelemetry(c *gin.Context) {
	id, limit, err := idAndLimit(c)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchTelemetry)
		return
	}
	rows, err := h.svc.ListForSatellite(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchTelemetry)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetLatestTelemetry handles GET /telemetria/:id/ultimo.
func (h *TelemetryHandler) GetLatestTelemetry(c *gin.Context) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchTelemetry)
		return
	}
	row, err := h.svc.Latest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchTelemetry)
		return
	}
	c.JSON(http.StatusOK, row)
}

// GetTelemetryHistory handles GET /telemetria/:id/historico?limit=.
func (h *TelemetryHandler) GetTelemetryHistory(c *gin.Context) {
	id, limit, err := idAndLimit(c)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchHistory)
		return
	}
	rows, err := h.svc.History(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err, detailTelemetryNotFound, errFetchHistory)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func idAndLimit(c *gin.Context) (int64, int, error) {
	id, err := parse.ID(c.Param("id"))
	if err != nil {
		return 0, 0, err
	}
	limit, err := parse.Limit(c.Query("limit"), parse.DefaultLimit, parse.MaxLimit)
	if err != nil {
		return 0, 0, err
	}
	return id, limit, nil
}
