package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/caching"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/performance"
)

// SystemHandlers reports service health.
type SystemHandlers struct {
	store       *services.ContentStore
	cache       *caching.FragmentsStore
	perfTracker *performance.Tracker
}

func NewSystemHandlers(store *services.ContentStore, cache *caching.FragmentsStore, perfTracker *performance.Tracker) *SystemHandlers {
	return &SystemHandlers{store: store, cache: cache, perfTracker: perfTracker}
}

// GetHealth returns tracker health and the snapshot being served.
func (h *SystemHandlers) GetHealth(c *gin.Context) {
	health := h.perfTracker.Health()
	status := http.StatusOK
	if health == performance.HealthUnhealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":     health,
		"snapshotId": h.store.SnapshotID(),
		"builtAt":    h.store.BuiltAt(),
		"stats":      h.perfTracker.Stats(),
		"cache":      h.cache.Stats(),
	})
}
