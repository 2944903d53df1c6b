package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"iss-tracker/internal/scene"
	"iss-tracker/internal/tracker"
	"iss-tracker/internal/types"
)

// PositionResponse is the latest satellite fix with derived extras
type PositionResponse struct {
	Position      types.Position `json:"position"`
	Label         string         `json:"label" example:"ISS - [08-27-2026 09:30:15] LAT: 45.1563° LON: -107.6580° ALT: 417.312 km"`
	Heading       *types.Heading `json:"heading,omitempty"`
	NadirTimezone string         `json:"nadir_timezone,omitempty" example:"America/Chicago"` // Empty over open ocean
	NadirPlace    string         `json:"nadir_place,omitempty" example:"United States"`      // Country under the nadir point, empty over open ocean
}

// TrackResponse is the recorded ground track, oldest fix first
type TrackResponse struct {
	Points   []types.Position `json:"points"`
	Count    int              `json:"count" example:"117"`
	Capacity int              `json:"capacity" example:"500"`
}

// handleGetPosition godoc
// @Summary Get latest satellite position
// @Description Retrieve the most recent recorded fix, its marker label, the direction of travel and the timezone under the nadir point
// @Tags track
// @Produce json
// @Success 200 {object} PositionResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/position [get]
func (app *App) handleGetPosition(c *gin.Context) {
	latest, err := app.trackerService.Latest()
	if err != nil {
		if errors.Is(err, tracker.ErrNoFix) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to get latest position", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get latest position"})
		return
	}

	resp := PositionResponse{
		Position: latest,
		Label:    scene.MarkerLabel(latest, time.Now()),
	}

	if heading, err := app.trackerService.Heading(); err == nil {
		resp.Heading = &heading
	}

	tz, err := app.timezoneService.GetTimezone(latest.Latitude, latest.Longitude)
	if err != nil {
		app.logger.Debug("nadir timezone lookup failed",
			"latitude", latest.Latitude,
			"longitude", latest.Longitude,
			"error", err,
		)
	} else {
		resp.NadirTimezone = tz
	}

	place, err := app.geocoder.ReverseLookup(latest.Latitude, latest.Longitude)
	if err != nil {
		app.logger.Debug("nadir place lookup failed",
			"latitude", latest.Latitude,
			"longitude", latest.Longitude,
			"error", err,
		)
	} else if place.OverLand() {
		resp.NadirPlace = place.Address.Country
	}

	c.JSON(http.StatusOK, resp)
}

// handleGetTrack godoc
// @Summary Get the recorded ground track
// @Description Retrieve the bounded ground track history, oldest fix first
// @Tags track
// @Produce json
// @Success 200 {object} TrackResponse
// @Router /api/v1/track [get]
func (app *App) handleGetTrack(c *gin.Context) {
	points := app.trackerService.Track()

	c.JSON(http.StatusOK, TrackResponse{
		Points:   points,
		Count:    len(points),
		Capacity: app.cfg.Tracker.TrackCapacity,
	})
}

// handleGetTrackGeoJSON godoc
// @Summary Export the ground track as GeoJSON
// @Description Retrieve the ground track as a FeatureCollection with a LineString for the track and a Point for the latest fix
// @Tags track
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/track.geojson [get]
func (app *App) handleGetTrackGeoJSON(c *gin.Context) {
	c.JSON(http.StatusOK, scene.TrackFeatureCollection(app.trackerService.Track()))
}

// handleGetScene godoc
// @Summary Get the render payload for the globe page
// @Description Retrieve the marker, the color-bucketed ground track and the predicted forward track in one payload
// @Tags track
// @Produce json
// @Success 200 {object} scene.Scene
// @Router /api/v1/scene [get]
func (app *App) handleGetScene(c *gin.Context) {
	predicted, err := app.trackerService.Prediction(90)
	if err != nil {
		// The globe page can always draw the marker and the trail
		app.logger.Debug("predicted track unavailable", "error", err)
		predicted = nil
	}

	c.JSON(http.StatusOK, scene.Build(app.trackerService.Track(), predicted, time.Now()))
}

// GetPredictionInput defines the query parameters for the prediction endpoint
type GetPredictionInput struct {
	Minutes int `form:"minutes,default=90" binding:"omitempty,min=1,max=360"` // Forward window in minutes
}

// PredictionResponse is the predicted forward ground track
type PredictionResponse struct {
	Points  []types.Position `json:"points"`
	Count   int              `json:"count" example:"91"`
	Minutes int              `json:"minutes" example:"90"`
}

// handleGetPrediction godoc
// @Summary Predict the forward ground track
// @Description Propagate the current element set with SGP4 and return the expected ground track, one point per minute
// @Tags track
// @Produce json
// @Param minutes query int false "Forward window in minutes" minimum(1) maximum(360) default(90)
// @Success 200 {object} PredictionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/prediction [get]
func (app *App) handleGetPrediction(c *gin.Context) {
	var input GetPredictionInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := app.trackerService.Prediction(input.Minutes)
	if err != nil {
		if errors.Is(err, tracker.ErrNoTLE) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to predict ground track",
			"minutes", input.Minutes,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to predict ground track"})
		return
	}

	c.JSON(http.StatusOK, PredictionResponse{
		Points:  points,
		Count:   len(points),
		Minutes: input.Minutes,
	})
}
