package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gitlab.com/gpufleet/worker-management-service/worker"
)

// SetupRouter wires the worker's local REST surface: a liveness probe and the
// most recent status snapshot.
func SetupRouter(syncer *worker.Syncer) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(getCustomCorsConfig()))

	v1 := router.Group("/api/v1")

	v1.GET("/healthz", HandleHealthz)

	wk := v1.Group("/worker")
	{
		wk.GET("/status", HandleWorkerStatus(syncer))
	}

	return router
}

func getCustomCorsConfig() cors.Config {
	config := DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:10150"}
	return config
}

// DefaultConfig returns a generic default configuration mapped to localhost.
func DefaultConfig() cors.Config {
	return cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Access-Control-Allow-Origin", "Origin", "Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
