package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/gpufleet/worker-management-service/models"
)

func TestSyncerPublishesInitialSnapshot(t *testing.T) {
	collector := NewStatusCollector(CollectorOptions{
		WorkerName: "worker-A",
		SystemInfo: &models.SystemInfo{CPU: &models.CPUInfo{Total: 8}},
		GPUDevices: models.GPUDevicesInfo{},
	})

	syncer := NewSyncer(collector, nil, time.Minute)
	assert.Nil(t, syncer.Latest())

	syncer.Start()
	defer syncer.Stop()

	latest := syncer.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, models.WorkerStateNotReady, latest.State, "bootstrap snapshot reports not ready")
	assert.Nil(t, latest.Status.GPUDevices, "bootstrap snapshot skips GPU detection")
}
