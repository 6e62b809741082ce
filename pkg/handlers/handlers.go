package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/internal/config"
	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/core/services"
	"github.com/jakechorley/shift-scheduler/pkg/db"
	"github.com/jakechorley/shift-scheduler/pkg/input"
)

// Handler contains dependencies for the route handlers.
// Store may be nil, in which case runs are not persisted and run listing is unavailable.
type Handler struct {
	Store  db.Database
	Logger *zap.Logger
	Config *config.Config
}

// ScheduleResponse is the body returned by a successful scheduling request
type ScheduleResponse struct {
	RunID     string             `json:"runId"`
	WeekStart string             `json:"weekStart"`
	Persisted bool               `json:"persisted"`
	Schedule  scheduler.Schedule `json:"schedule"`
	Warnings  []string           `json:"warnings"`
	Report    string             `json:"report"`
}

// RunResponse describes a stored run
type RunResponse struct {
	ID                 string `json:"id"`
	WeekStart          string `json:"weekStart"`
	CreatedAt          string `json:"createdAt"`
	Seed               int64  `json:"seed"`
	MinPerShift        int    `json:"minPerShift"`
	MaxPerShift        int    `json:"maxPerShift"`
	MaxDaysPerEmployee int    `json:"maxDaysPerEmployee"`
	EmployeeCount      int    `json:"employeeCount"`
	WarningCount       int    `json:"warningCount"`
}

// NewRouter wires the routes onto a gin engine
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Weekly Shift Scheduler API",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/schedule", h.Schedule)
		api.GET("/runs", h.ListRuns)
		api.GET("/runs/:id", h.GetRun)
	}

	return r
}

// requestLogger logs each request through zap instead of gin's default writer
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.Logger.Debug("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}

// Schedule handles a JSON scheduling request
func (h *Handler) Schedule(c *gin.Context) {
	var doc input.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := doc.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var store db.RunStore
	if h.Store != nil {
		store = h.Store
	}

	result, err := services.GenerateSchedule(c.Request.Context(), store, h.Logger, h.Config, &doc, false)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidInput) || errors.Is(err, scheduler.ErrInfeasibleConfig) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Failed to generate schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate schedule"})
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		RunID:     result.Run.ID,
		WeekStart: result.Run.WeekStart,
		Persisted: result.Persisted,
		Schedule:  result.Result.Schedule,
		Warnings:  result.Result.Warnings,
		Report:    scheduler.RenderString(result.Result),
	})
}

// ListRuns returns stored runs, newest first
func (h *Handler) ListRuns(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}

	summaries, err := services.ViewRuns(c.Request.Context(), h.Store, h.Logger)
	if err != nil {
		h.Logger.Error("Failed to list runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	runs := make([]RunResponse, 0, len(summaries))
	for _, s := range summaries {
		runs = append(runs, toRunResponse(s.Run, s.WarningCount))
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun returns a stored run with its schedule and warnings
func (h *Handler) GetRun(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}

	stored, err := services.ShowRun(c.Request.Context(), h.Store, h.Logger, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Failed to load run", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run":      toRunResponse(stored.Run, len(stored.Result.Warnings)),
		"schedule": stored.Result.Schedule,
		"warnings": stored.Result.Warnings,
	})
}

func toRunResponse(r db.Run, warningCount int) RunResponse {
	return RunResponse{
		ID:                 r.ID,
		WeekStart:          r.WeekStart,
		CreatedAt:          r.CreatedAt,
		Seed:               r.Seed,
		MinPerShift:        r.MinPerShift,
		MaxPerShift:        r.MaxPerShift,
		MaxDaysPerEmployee: r.MaxDaysPerEmployee,
		EmployeeCount:      r.EmployeeCount,
		WarningCount:       warningCount,
	}
}
