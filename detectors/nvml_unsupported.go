//go:build !(linux && amd64)

package detectors

import (
	"gitlab.com/gpufleet/worker-management-service/models"
)

// NVML is a stub on platforms without NVML support; it reports an empty
// device inventory.
type NVML struct{}

func NewGPUDetector() *NVML {
	return &NVML{}
}

func (n *NVML) DetectGPUs() (models.GPUDevicesInfo, error) {
	return models.GPUDevicesInfo{}, nil
}
