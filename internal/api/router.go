// Package api wires the HTTP surface of the genvec server.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/genvec"
	"github.com/gogpu/genvec/internal/api/handlers"
	"github.com/gogpu/genvec/internal/api/middleware"
	"github.com/gogpu/genvec/internal/cache"
	"github.com/gogpu/genvec/internal/config"
	"github.com/gogpu/genvec/internal/metrics"
	_ "github.com/gogpu/genvec/recording/backends/raster"
	_ "github.com/gogpu/genvec/recording/backends/svg"
)

// SetupRouter returns the gin engine serving session. m may be nil.
func SetupRouter(cfg *config.Config, session *genvec.Session, m *metrics.Client, log *slog.Logger, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(middleware.RecoverWithSentry(log))
	if cfg.SentryDSN != "" {
		router.Use(middleware.SentryMiddleware())
	}
	router.Use(middleware.RequestTracking(log))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/api/metrics", handlers.NewMetricsHandler(version).GetMetrics)

	paletteHandler := handlers.NewPaletteHandler(session.Catalog())
	router.GET("/api/palettes", paletteHandler.List)

	exports := cache.New[cache.ExportKey, []byte](cfg.CacheSize)
	sceneHandler := handlers.NewSceneHandler(session, exports, m, cfg.MaxViewport, log)
	pointerHandler := handlers.NewPointerHandler(session)

	api := router.Group("/api")
	{
		api.POST("/generate", sceneHandler.Generate)
		api.GET("/scene.svg", sceneHandler.SVG)
		api.GET("/scene.png", sceneHandler.PNG)
		api.GET("/snapshot.json", sceneHandler.Snapshot)
		api.GET("/stats", sceneHandler.Stats)
		api.POST("/animation/stop", sceneHandler.StopAnimation)

		api.POST("/capture", pointerHandler.Capture)
		api.DELETE("/capture", pointerHandler.ClearCaptured)
		api.POST("/cursor", pointerHandler.Cursor)
	}

	return router
}
