package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message          string `json:"message" example:"pong"`            // Response message
	TrackedSatellite int    `json:"tracked_satellite" example:"25544"` // NORAD catalog number
	TrackCount       int    `json:"track_count" example:"117"`         // Fixes currently on the ground track
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and how much track history it holds
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:          "pong",
		TrackedSatellite: app.cfg.Tracker.SatelliteID,
		TrackCount:       len(app.trackerService.Track()),
	})
}
