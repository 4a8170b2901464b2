package mw

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(1, 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, "GET", "/", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, "GET", "/", nil).Code)
	w := perform(r, "GET", "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"detail":"Too many requests"}`, w.Body.String())
}

func TestClientRateLimiter_PerClient(t *testing.T) {
	l := NewClientRateLimiter(1, 1)
	a := l.Limiter("10.0.0.1")
	assert.Same(t, a, l.Limiter("10.0.0.1"))
	assert.NotSame(t, a, l.Limiter("10.0.0.2"))

	assert.True(t, a.Allow())
	assert.False(t, a.Allow())
	assert.True(t, l.Limiter("10.0.0.2").Allow())
}

func TestCache(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	var hits atomic.Int32

	r := gin.New()
	r.Use(Cache(store, time.Minute))
	r.GET("/items", func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusOK, gin.H{"n": hits.Load()})
	})
	r.GET("/missing", func(c *gin.Context) {
		hits.Add(1)
		c.JSON(http.StatusNotFound, gin.H{"detail": "nope"})
	})
	r.POST("/items", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.POST("/fail", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	first := perform(r, "GET", "/items", nil)
	second := perform(r, "GET", "/items", nil)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))

	// A failed write leaves the cache intact.
	perform(r, "POST", "/fail", nil)
	perform(r, "GET", "/items", nil)
	assert.Equal(t, int32(1), hits.Load())

	// A successful write flushes it.
	assert.Equal(t, http.StatusCreated, perform(r, "POST", "/items", nil).Code)
	third := perform(r, "GET", "/items", nil)
	assert.Equal(t, int32(2), hits.Load())
	assert.JSONEq(t, `{"n":2}`, third.Body.String())

	// Errors are never cached.
	perform(r, "GET", "/missing", nil)
	perform(r, "GET", "/missing", nil)
	assert.Equal(t, int32(4), hits.Load())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:8080"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, "GET", "/", map[string]string{"Origin": "http://localhost:8080"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = perform(r, "GET", "/", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(r, "OPTIONS", "/", map[string]string{
		"Origin":                        "http://localhost:8080",
		"Access-Control-Request-Method": "PUT",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestCORS_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, "GET", "/", map[string]string{"Origin": "http://anything.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

type observation struct {
	service, route, method string
	code                   int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(service, route, method string, code int, elapsed time.Duration) {
	f.seen = append(f.seen, observation{service, route, method, code})
}

func TestMetrics(t *testing.T) {
	obs := &fakeObserver{}
	r := gin.New()
	r.Use(Metrics(obs, "satellite_status"))
	r.GET("/satelites/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	perform(r, "GET", "/satelites/42", nil)
	perform(r, "GET", "/nowhere", nil)

	require.Len(t, obs.seen, 2)
	assert.Equal(t, observation{"satellite_status", "/satelites/:id", "GET", 404}, obs.seen[0])
	assert.Equal(t, "", obs.seen[1].route)
	assert.Equal(t, 404, obs.seen[1].code)
}
