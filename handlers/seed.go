package handlers

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/krycha420/fast-food/data"
	"github.com/krycha420/fast-food/seeder"
)

// SeedHandler is the API behind the admin "Seed" button. It remembers
// the most recent run's report.
type SeedHandler struct {
	seeder  *seeder.Seeder
	dataset data.Dataset

	mu   sync.Mutex
	last *seeder.Report
}

func NewSeedHandler(s *seeder.Seeder, set data.Dataset) *SeedHandler {
	return &SeedHandler{seeder: s, dataset: set}
}

// TriggerSeed runs a full clear-and-repopulate cycle
func (h *SeedHandler) TriggerSeed(c *gin.Context) {
	rep, err := h.seeder.Run(c.Request.Context(), h.dataset)
	if errors.Is(err, seeder.ErrSeedInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": "A seed run is already in progress"})
		return
	}
	if rep != nil {
		h.mu.Lock()
		h.last = rep
		h.mu.Unlock()
	}
	if err != nil {
		log.Printf("Seed failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  err.Error(),
			"report": rep,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Seed completed",
		"summary": rep.Summary(),
		"report":  rep,
	})
}

// LastReport returns the most recent run's report
func (h *SeedHandler) LastReport(c *gin.Context) {
	h.mu.Lock()
	rep := h.last
	h.mu.Unlock()

	if rep == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No seed run recorded yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rep, "summary": rep.Summary()})
}
