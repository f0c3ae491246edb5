// Package server exposes the REST API: one CRUD surface per entity,
// credential auth with cookie sessions, and server-side permission
// checks on every mutation.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bodhi-os/bodhi/internal/auth"
	"github.com/bodhi-os/bodhi/internal/logger"
	"github.com/bodhi-os/bodhi/internal/storage"
)

// Server wires the HTTP layer to the storage provider.
type Server struct {
	store    storage.Provider
	sessions *auth.Manager
	engine   *gin.Engine
}

// Config holds server construction options.
type Config struct {
	Store         storage.Provider
	SessionSecret string
	Debug         bool
}

// New builds the router with all routes registered.
func New(cfg Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		store:    cfg.Store,
		sessions: auth.NewManager(cfg.SessionSecret),
		engine:   gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger())

	s.engine.GET("/api/healthz", s.handleHealthz)

	authGroup := s.engine.Group("/api/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/logout", s.handleLogout)
	}

	api := s.engine.Group("/api", s.requireSession())
	{
		api.GET("/daily-tracker", s.handleListTrackers)
		api.POST("/daily-tracker", s.handleUpsertTracker)
		api.POST("/daily-tracker/ensure", s.handleEnsureTracker)
		api.PUT("/daily-tracker", s.handleUpdateTracker)
		api.DELETE("/daily-tracker", s.handleDeleteTracker)

		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.PUT("/tasks", s.handleUpdateTask)
		api.DELETE("/tasks", s.handleDeleteTask)
		api.POST("/tasks/catch-up", s.handleCatchUp)

		api.GET("/content", s.handleListContent)
		api.POST("/content", s.handleCreateContent)
		api.PUT("/content", s.handleUpdateContent)
		api.DELETE("/content", s.handleDeleteContent)

		api.GET("/business", s.handleListOrders)
		api.POST("/business", s.handleCreateOrder)
		api.PUT("/business", s.handleUpdateOrder)
		api.DELETE("/business", s.handleDeleteOrder)

		api.GET("/goals", s.handleListGoals)
		api.POST("/goals", s.handleCreateGoal)
		api.PUT("/goals", s.handleUpdateGoal)
		api.DELETE("/goals", s.handleDeleteGoal)

		api.GET("/habit-streaks", s.handleListStreaks)
		api.POST("/habit-streaks", s.handleCompleteHabit)
		api.PUT("/habit-streaks", s.handleUpdateStreak)

		api.GET("/weekly-plan", s.handleListWeeklyPlans)
		api.POST("/weekly-plan", s.handleUpsertWeeklyPlan)
		api.PUT("/weekly-plan", s.handleUpdateWeeklyPlan)
		api.DELETE("/weekly-plan", s.handleDeleteWeeklyPlan)

		api.GET("/accountability", s.handleListShares)
		api.POST("/accountability", s.handleCreateShare)
		api.PUT("/accountability", s.handleUpdateShare)
		api.DELETE("/accountability", s.handleDeleteShare)

		api.GET("/weekly-review", s.handleWeeklyReview)

		api.GET("/export/csv", s.handleExportCSV)
		api.GET("/export/backup", s.handleExportBackup)
	}

	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	logger.Info("Starting API server", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) handleHealthz(c *gin.Context) {
	if err := s.store.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}
