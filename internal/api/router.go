package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"satellite-monitor-backend/internal/mw"
	"satellite-monitor-backend/internal/observability"
)

// Service labels used in health payloads and metrics.
const (
	ServiceStatus    = "satellite_status"
	ServiceTelemetry = "satellite_telemetry"
	ServiceUsers     = "users"
)

// RouterOptions carries the middleware settings shared by every router.
type RouterOptions struct {
	AllowedOrigins []string
	RateLimit      rate.Limit
	RateBurst      int
	// Metrics enables request metrics and the scrape endpoint when non-nil.
	Metrics     *observability.Collector
	MetricsPath string
	// CacheTTL enables the user read cache when positive.
	CacheTTL time.Duration
}

func newEngine(service string, opts RouterOptions) *gin.Engine {
	r := gin.Default()
	if len(opts.AllowedOrigins) > 0 {
		r.Use(mw.CORS(opts.AllowedOrigins))
	}
	if opts.Metrics != nil {
		r.Use(mw.Metrics(opts.Metrics, service))
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(opts.Metrics.Handler()))
	}
	return r
}

func rateLimited(r *gin.Engine, opts RouterOptions) *gin.RouterGroup {
	g := r.Group("")
	if opts.RateLimit > 0 {
		g.Use(mw.RateLimiter(opts.RateLimit, opts.RateBurst))
	}
	return g
}

// NewStatusRouter serves the satellite roster.
func NewStatusRouter(svc StatusService, opts RouterOptions) *gin.Engine {
	r := newEngine(ServiceStatus, opts)
	r.GET("/", staticJSON(gin.H{"message": "Satellite Status Service is running"}))
	r.GET("/health", staticJSON(gin.H{"status": "healthy", "service": ServiceStatus}))

	h := NewStatusHandler(svc)
	api := rateLimited(r, opts)
	{
		api.GET("/satelites", h.ListSatellites)
		api.GET("/satelites/:id", h.GetSatellite)
		api.GET("/satelites/name/:name", h.GetSatelliteByName)
	}
	return r
}

// NewTelemetryRouter serves simulated telemetry.
func NewTelemetryRouter(svc TelemetryService, opts RouterOptions) *gin.Engine {
	r := newEngine(ServiceTelemetry, opts)
	r.GET("/", staticJSON(gin.H{"message": "Satellite Telemetry Service is running"}))
	r.GET("/health", staticJSON(gin.H{"status": "healthy", "service": ServiceTelemetry}))

	h := NewTelemetryHandler(svc)
	api := rateLimited(r, opts)
	{
		api.GET("/telemetry", h.ListTelemetry)
		api.GET("/telemetria/:id", h.GetSatelliteTelemetry)
		api.GET("/telemetria/:id/ultimo", h.GetLatestTelemetry)
		api.GET("/telemetria/:id/historico", h.GetTelemetryHistory)
	}
	return r
}

// NewUsersRouter serves user CRUD under /api/v1.
func NewUsersRouter(svc UserService, opts RouterOptions) *gin.Engine {
	r := newEngine(ServiceUsers, opts)
	r.GET("/", staticJSON(gin.H{"message": "Bem-vindo à API de usuários!", "version": "1.0.0"}))
	r.GET("/health", staticJSON(gin.H{"status": "healthy", "message": "API funcionando normalmente"}))

	h := NewUserHandler(svc)
	api := rateLimited(r, opts).Group("/api/v1/users")
	if opts.CacheTTL > 0 {
		// Cleaned up at twice the TTL
		api.Use(mw.Cache(cache.New(opts.CacheTTL, 2*opts.CacheTTL), opts.CacheTTL))
	}
	{
		api.POST("", h.CreateUser)
		api.GET("", h.ListUsers)
		api.GET("/:id", h.GetUser)
		api.PUT("/:id", h.UpdateUser)
		api.DELETE("/:id", h.DeleteUser)
	}
	return r
}
