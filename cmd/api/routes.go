package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"iss-tracker/web"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Tracker endpoints
	v1 := app.router.Group("/api/v1")
	v1.GET("/position", app.handleGetPosition)
	v1.GET("/track", app.handleGetTrack)
	v1.GET("/track.geojson", app.handleGetTrackGeoJSON)
	v1.GET("/scene", app.handleGetScene)
	v1.GET("/prediction", app.handleGetPrediction)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{})))

	// Embedded globe page
	app.router.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(web.Static()))
	})

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
