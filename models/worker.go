package models

type WorkerStateEnum string

const (
	WorkerStateReady       WorkerStateEnum = "ready"
	WorkerStateNotReady    WorkerStateEnum = "not_ready"
	WorkerStateUnreachable WorkerStateEnum = "unreachable"
)

// RPCServer is one sidecar relay process serving a single GPU.
type RPCServer struct {
	PID      int `json:"pid"`
	Port     int `json:"port"`
	GPUIndex int `json:"gpu_index"`
}

// WorkerStatus is the full runtime snapshot of a worker node. Every field is
// optional; nil means the corresponding detection or bookkeeping step did not
// produce data for this snapshot.
type WorkerStatus struct {
	CPU        *CPUInfo             `json:"cpu,omitempty"`
	Memory     *MemoryInfo          `json:"memory,omitempty"`
	Swap       *SwapInfo            `json:"swap,omitempty"`
	Filesystem []MountPoint         `json:"filesystem,omitempty"`
	OS         *OperatingSystemInfo `json:"os,omitempty"`
	Kernel     *KernelInfo          `json:"kernel,omitempty"`
	Uptime     *UptimeInfo          `json:"uptime,omitempty"`
	GPUDevices GPUDevicesInfo       `json:"gpu_devices,omitempty"`
	RPCServers map[int]RPCServer    `json:"rpc_servers,omitempty"`
}

// Worker wraps one status snapshot with the node's identity and readiness
// classification. WorkerUUID is only set when the node runs with a worker
// manager; StateMessage carries the GPU detection failure, if one occurred.
type Worker struct {
	Name         string          `json:"name"`
	Hostname     string          `json:"hostname"`
	IP           string          `json:"ip"`
	Port         int             `json:"port"`
	WorkerUUID   *string         `json:"worker_uuid,omitempty"`
	State        WorkerStateEnum `json:"state"`
	StateMessage string          `json:"state_message,omitempty"`
	Status       WorkerStatus    `json:"status"`
}
