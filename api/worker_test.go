package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/gpufleet/worker-management-service/models"
	"gitlab.com/gpufleet/worker-management-service/worker"
)

func testSyncer(t *testing.T, started bool) *worker.Syncer {
	t.Helper()

	collector := worker.NewStatusCollector(worker.CollectorOptions{
		WorkerName: "worker-A",
		SystemInfo: &models.SystemInfo{
			CPU: &models.CPUInfo{Total: 8},
		},
		GPUDevices: models.GPUDevicesInfo{},
	})
	syncer := worker.NewSyncer(collector, nil, time.Minute)
	if started {
		syncer.Start()
		t.Cleanup(syncer.Stop)
	}
	return syncer
}

func TestHandleHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(testSyncer(t, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleWorkerStatusBeforeFirstSync(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(testSyncer(t, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/worker/status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleWorkerStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(testSyncer(t, true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/worker/status", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Worker
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "worker-A", got.Name)
	assert.Equal(t, models.WorkerStateNotReady, got.State, "first sync is the initial snapshot")
}
