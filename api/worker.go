package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gitlab.com/gpufleet/worker-management-service/worker"
)

// HandleHealthz godoc
//
//	@Summary	Liveness probe.
//	@Tags		worker
//	@Success	200	{object}	map[string]string
//	@Router		/api/v1/healthz [get]
func HandleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleWorkerStatus godoc
//
//	@Summary	Most recent worker status snapshot.
//	@Tags		worker
//	@Success	200	{object}	models.Worker
//	@Router		/api/v1/worker/status [get]
func HandleWorkerStatus(syncer *worker.Syncer) gin.HandlerFunc {
	return func(c *gin.Context) {
		latest := syncer.Latest()
		if latest == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no status collected yet"})
			return
		}
		c.JSON(http.StatusOK, latest)
	}
}
