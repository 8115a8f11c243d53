package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"university-api/internal/config"
	"university-api/internal/infrastructure/database"
	interfaces "university-api/internal/interfaces/infrastructure"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db    *gorm.DB
	cache interfaces.CacheService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, cache interfaces.CacheService) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cfg := config.Get()

	status := "healthy"
	services := make(map[string]string)

	if err := database.HealthCheck(h.db); err != nil {
		services["database"] = "unhealthy: " + err.Error()
		status = "degraded"
	} else {
		services["database"] = "healthy"
	}

	if err := h.cache.Health(c.Request.Context()); err != nil {
		services["cache"] = "unhealthy: " + err.Error()
		status = "degraded"
	} else {
		services["cache"] = "healthy"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Services:  services,
	})
}

// ReadinessCheck handles GET /ready
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if err := database.HealthCheck(h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ready":     false,
			"timestamp": time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ready":     true,
		"timestamp": time.Now(),
	})
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
