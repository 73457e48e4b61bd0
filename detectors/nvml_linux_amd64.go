//go:build linux && amd64

package detectors

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gitlab.com/gpufleet/worker-management-service/models"
)

// NVML reads the NVIDIA device inventory through the management library.
type NVML struct{}

func NewGPUDetector() *NVML {
	return &NVML{}
}

func (n *NVML) DetectGPUs() (models.GPUDevicesInfo, error) {
	ret := nvml.Init()
	if ret != nvml.SUCCESS {
		return nil, NewGPUDetectError("NVIDIA Management Library not installed, initialized or configured (reboot recommended for newly installed NVIDIA GPU drivers): %s", nvml.ErrorString(ret))
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, NewGPUDetectError("unable to get NVIDIA device count: %s", nvml.ErrorString(ret))
	}

	devices := make(models.GPUDevicesInfo, 0, count)
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return nil, NewGPUDetectError("unable to get NVIDIA device at index %d: %s", i, nvml.ErrorString(ret))
		}
		devices = append(devices, deviceInfo(device, i))
	}

	return devices, nil
}

// deviceInfo reads per-device facts, tolerating individual query failures the
// way the CLI capacity probes do.
func deviceInfo(device nvml.Device, index int) models.GPUDeviceInfo {
	info := models.GPUDeviceInfo{
		Index:  index,
		Vendor: models.GPUVendorNVIDIA,
	}

	if uuid, ret := device.GetUUID(); ret == nvml.SUCCESS {
		info.UUID = uuid
	}
	if name, ret := device.GetName(); ret == nvml.SUCCESS {
		info.Name = name
	}
	if memory, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
		info.Memory = models.MemoryInfo{
			Total: int64(memory.Total),
			Used:  int64(memory.Used),
		}
		if memory.Total != 0 {
			info.Memory.UtilizationRate = float64(memory.Used) / float64(memory.Total) * 100
		}
	}
	if utilization, ret := device.GetUtilizationRates(); ret == nvml.SUCCESS {
		info.Core.UtilizationRate = float64(utilization.Gpu)
	}
	if cores, ret := device.GetNumGpuCores(); ret == nvml.SUCCESS {
		info.Core.Total = int(cores)
	}
	if temperature, ret := device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		info.Temperature = float64(temperature)
	}

	return info
}
