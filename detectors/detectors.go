package detectors

import (
	"fmt"

	"gitlab.com/gpufleet/worker-management-service/models"
)

// SystemInfoDetector probes host-level hardware and OS facts.
type SystemInfoDetector interface {
	DetectSystemInfo() (*models.SystemInfo, error)
}

// GPUDetector probes the GPU device inventory.
type GPUDetector interface {
	DetectGPUs() (models.GPUDevicesInfo, error)
}

// GPUDetectError is the distinguished GPU detection failure. A collector
// receiving it reports the node as not ready with the error text as the state
// message; any other error from DetectGPUs only degrades the snapshot.
type GPUDetectError struct {
	msg string
}

func NewGPUDetectError(format string, args ...interface{}) *GPUDetectError {
	return &GPUDetectError{msg: fmt.Sprintf(format, args...)}
}

func (e *GPUDetectError) Error() string {
	return e.msg
}
