package models

type GPUVendor string

const (
	GPUVendorNVIDIA  GPUVendor = "NVIDIA"
	GPUVendorAMD     GPUVendor = "AMD"
	GPUVendorApple   GPUVendor = "Apple"
	GPUVendorUnknown GPUVendor = "Unknown"
)

// GPUCoreInfo describes a GPU's compute capacity and load.
type GPUCoreInfo struct {
	Total           int     `json:"total"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// GPUDeviceInfo is one GPU as reported by a detection pass. Index is the
// stable per-device identifier the scheduler keys VRAM claims on.
type GPUDeviceInfo struct {
	UUID        string      `json:"uuid,omitempty"`
	Name        string      `json:"name"`
	Vendor      GPUVendor   `json:"vendor"`
	Index       int         `json:"index"`
	Core        GPUCoreInfo `json:"core"`
	Memory      MemoryInfo  `json:"memory"`
	Temperature float64     `json:"temperature"`
}

type GPUDevicesInfo []GPUDeviceInfo
