package detectors

import (
	"fmt"

	"gitlab.com/gpufleet/worker-management-service/models"
)

// Custom serves fixed detection results supplied at construction time,
// instead of probing live hardware. Used for static configuration and tests.
type Custom struct {
	gpuDevices models.GPUDevicesInfo
	systemInfo *models.SystemInfo
}

func NewCustomGPUDetector(gpuDevices models.GPUDevicesInfo) *Custom {
	return &Custom{gpuDevices: gpuDevices}
}

func NewCustomSystemInfoDetector(systemInfo *models.SystemInfo) *Custom {
	return &Custom{systemInfo: systemInfo}
}

func (c *Custom) DetectGPUs() (models.GPUDevicesInfo, error) {
	if c.gpuDevices == nil {
		return nil, fmt.Errorf("no GPU devices configured")
	}
	return c.gpuDevices, nil
}

func (c *Custom) DetectSystemInfo() (*models.SystemInfo, error) {
	if c.systemInfo == nil {
		return nil, fmt.Errorf("no system info configured")
	}
	return c.systemInfo, nil
}
