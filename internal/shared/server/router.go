package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobjotter/internal/analyses"
	"jobjotter/internal/documents"
	"jobjotter/internal/services/health"
	"jobjotter/internal/shared/config"
	"jobjotter/internal/shared/metrics"
	"jobjotter/internal/shared/server/middleware"
	"jobjotter/internal/shared/server/respond"
)

const (
	groupAnalyses     = "ANALYSES"
	createAnalysisRun = "POST /api/v1/analyses"
)

// RouterDeps wires handlers into the router.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	DocumentHandler *documents.Handler
	AnalysisHandler *analyses.Handler
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		metrics.HTTP(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		st := deps.Health.Check(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})

	sessioned := api.Group("")
	sessioned.Use(
		middleware.Session(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				groupAnalyses: middleware.PerMinute(deps.Config.RateLimitAnalysesPerMin),
			},
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
		}),
	)
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(sessioned)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(sessioned)
	}

	return r
}

// rateLimitGroup puts analysis runs in their own bucket; every other route
// is unlimited.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method+" "+c.FullPath() == createAnalysisRun {
		return groupAnalyses
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
