package controllers

import (
	"fmt"
	"folio/internal/services"
	"folio/internal/store"
	"net/http"
	"time"
)

type HealthController struct {
	content   services.ContentServiceInterface
	client    store.ClientInterface
	startTime time.Time
}

type healthResponse struct {
	Status          string  `json:"status"`
	Uptime          string  `json:"uptime"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	Content         string  `json:"content"`
	Generation      uint64  `json:"generation"`
	StoreConfigured bool    `json:"store_configured"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		Uptime:          formatDuration(uptime),
		UptimeSeconds:   uptime.Seconds(),
		Content:         hc.content.State().String(),
		Generation:      hc.content.Generation(),
		StoreConfigured: hc.client.Configured(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(content services.ContentServiceInterface, client store.ClientInterface) *HealthController {
	return &HealthController{
		content:   content,
		client:    client,
		startTime: time.Now(),
	}
}
