package detectors

import (
	"gitlab.com/gpufleet/worker-management-service/models"
)

// Options carries the optional detection overrides a worker can be configured
// with. A nil field means "probe live hardware" for that concern.
type Options struct {
	GPUDevices models.GPUDevicesInfo
	SystemInfo *models.SystemInfo
}

// DetectorFactory resolves the configured overrides once, at construction,
// into one concrete detector per concern. Callers never branch on which
// overrides were supplied.
type DetectorFactory struct {
	systemInfo SystemInfoDetector
	gpu        GPUDetector
}

func NewDetectorFactory(opts Options) *DetectorFactory {
	factory := &DetectorFactory{
		systemInfo: NewSystemInfoDetector(),
		gpu:        NewGPUDetector(),
	}
	if opts.SystemInfo != nil {
		factory.systemInfo = NewCustomSystemInfoDetector(opts.SystemInfo)
	}
	if opts.GPUDevices != nil {
		factory.gpu = NewCustomGPUDetector(opts.GPUDevices)
	}
	return factory
}

func (f *DetectorFactory) DetectSystemInfo() (*models.SystemInfo, error) {
	return f.systemInfo.DetectSystemInfo()
}

func (f *DetectorFactory) DetectGPUs() (models.GPUDevicesInfo, error) {
	return f.gpu.DetectGPUs()
}
