package models

// CPUInfo describes the host CPU capacity and load.
type CPUInfo struct {
	Total           int     `json:"total_cores"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// MemoryInfo describes a memory pool, either host RAM or a GPU's VRAM.
// Allocated is the number of bytes currently claimed by scheduled model
// instances; it is filled in by the status collector, not by detection.
type MemoryInfo struct {
	Total           int64   `json:"total"`
	Used            int64   `json:"used"`
	UtilizationRate float64 `json:"utilization_rate"`
	IsUnifiedMemory bool    `json:"is_unified_memory"`
	Allocated       int64   `json:"allocated"`
}

type SwapInfo struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
}

// MountPoint holds usage figures for one filesystem mount point. Byte counts
// throughout.
type MountPoint struct {
	Name       string `json:"name"`
	MountPoint string `json:"mount_point"`
	Total      int64  `json:"total"`
	Used       int64  `json:"used"`
	Free       int64  `json:"free"`
	Available  int64  `json:"available"`
}

type OperatingSystemInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type KernelInfo struct {
	Name         string `json:"name"`
	Release      string `json:"release"`
	Version      string `json:"version"`
	Architecture string `json:"architecture"`
}

// UptimeInfo reports host uptime in seconds plus the boot timestamp (unix
// seconds).
type UptimeInfo struct {
	Uptime   float64 `json:"uptime"`
	BootTime int64   `json:"boot_time"`
}

// SystemInfo is everything a system-info detection pass produces. Nil fields
// mean "not detected", never "zero".
type SystemInfo struct {
	CPU        *CPUInfo             `json:"cpu,omitempty"`
	Memory     *MemoryInfo          `json:"memory,omitempty"`
	Swap       *SwapInfo            `json:"swap,omitempty"`
	Filesystem []MountPoint         `json:"filesystem,omitempty"`
	OS         *OperatingSystemInfo `json:"os,omitempty"`
	Kernel     *KernelInfo          `json:"kernel,omitempty"`
	Uptime     *UptimeInfo          `json:"uptime,omitempty"`
}
