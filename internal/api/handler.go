package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"satellite-monitor-backend/internal/model"
	"satellite-monitor-backend/internal/parse"
	"satellite-monitor-backend/internal/store"
	"satellite-monitor-backend/internal/telemetry"
	"satellite-monitor-backend/internal/users"
)

const (
	detailSatelliteNotFound = "Satélite não encontrado"
	detailTelemetryNotFound = "Dados de telemetria não encontrados"
	detailUserNotFound      = "Usuário não encontrado"
	detailEmailTaken        = "Email já registrado"
	detailUsernameTaken     = "Username já existe"
)

// StatusService serves the satellite roster.
type StatusService interface {
	List(ctx context.Context) ([]model.Satellite, error)
	Get(ctx context.Context, id int64) (model.Satellite, error)
	GetByName(ctx context.Context, name string) (model.Satellite, error)
}

// TelemetryService serves simulated telemetry.
type TelemetryService interface {
	ListAll(ctx context.Context, limit int) ([]model.Telemetry, error)
	ListForSatellite(ctx context.Context, id int64, limit int) ([]model.Telemetry, error)
	Latest(ctx context.Context, id int64) (model.Telemetry, error)
	History(ctx context.Context, id int64, limit int) ([]model.Telemetry, error)
}

// UserService manages user accounts.
type UserService interface {
	Create(ctx context.Context, in users.CreateInput) (model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, id int64, in users.UpdateInput) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

// respondError maps err to a status code and a {"detail": ...} body.
// notFound is the detail used for store.ErrNotFound; internal prefixes
// unexpected errors.
func respondError(c *gin.Context, err error, notFound, internal string) {
	switch {
	case errors.Is(err, parse.ErrInvalid):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	case errors.Is(err, telemetry.ErrUnknownSatellite):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": detailSatelliteNotFound})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": notFound})
	case errors.Is(err, users.ErrEmailTaken):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": detailEmailTaken})
	case errors.Is(err, users.ErrUsernameTaken):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": detailUsernameTaken})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": internal + ": " + err.Error()})
	}
}

// staticJSON always answers 200 with body.
func staticJSON(body gin.H) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}
