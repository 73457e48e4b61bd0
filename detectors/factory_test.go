package detectors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/gpufleet/worker-management-service/models"
)

func TestFactoryResolvesOverrides(t *testing.T) {
	systemInfo := &models.SystemInfo{
		CPU: &models.CPUInfo{Total: 8},
	}
	gpuDevices := models.GPUDevicesInfo{
		{Index: 0, Name: "RTX 4090", Vendor: models.GPUVendorNVIDIA},
	}

	factory := NewDetectorFactory(Options{
		GPUDevices: gpuDevices,
		SystemInfo: systemInfo,
	})

	gotInfo, err := factory.DetectSystemInfo()
	require.NoError(t, err)
	assert.Equal(t, systemInfo, gotInfo)

	gotDevices, err := factory.DetectGPUs()
	require.NoError(t, err)
	assert.Equal(t, gpuDevices, gotDevices)
}

func TestFactoryPartialOverride(t *testing.T) {
	factory := NewDetectorFactory(Options{
		GPUDevices: models.GPUDevicesInfo{{Index: 0}},
	})

	_, ok := factory.gpu.(*Custom)
	assert.True(t, ok, "GPU override should resolve to the custom detector")
	_, ok = factory.systemInfo.(*Custom)
	assert.False(t, ok, "system info should stay on the live detector")
}

func TestCustomDetectorUnconfigured(t *testing.T) {
	custom := &Custom{}

	_, err := custom.DetectGPUs()
	assert.Error(t, err)

	_, err = custom.DetectSystemInfo()
	assert.Error(t, err)
}

func TestGPUDetectErrorIsDistinguished(t *testing.T) {
	err := fmt.Errorf("detect: %w", NewGPUDetectError("driver mismatch on %s", "gpu0"))

	var detectErr *GPUDetectError
	require.True(t, errors.As(err, &detectErr))
	assert.Equal(t, "driver mismatch on gpu0", detectErr.Error())

	var notDetectErr *GPUDetectError
	assert.False(t, errors.As(fmt.Errorf("plain failure"), &notDetectErr))
}
