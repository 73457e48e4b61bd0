package worker

import (
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"

	"gitlab.com/gpufleet/worker-management-service/detectors"
	"gitlab.com/gpufleet/worker-management-service/models"
)

// ModelInstanceLister is the slice of the cluster API the collector needs:
// the full, unfiltered list of scheduled model instances.
type ModelInstanceLister interface {
	List() ([]models.ModelInstance, error)
}

// ProcessManager is the optional sidecar-process collaborator. When the
// collector runs without one, the snapshot carries no RPC servers and no
// worker UUID.
type ProcessManager interface {
	GetRPCServers() map[int]RPCServerProcess
	GetWorkerUUID() (string, error)
}

// detectorFactory is what the collector needs from the detection layer.
type detectorFactory interface {
	DetectSystemInfo() (*models.SystemInfo, error)
	DetectGPUs() (models.GPUDevicesInfo, error)
}

// CollectorOptions configures a StatusCollector. GPUDevices and SystemInfo
// are optional detection overrides; when nil, live hardware is probed.
type CollectorOptions struct {
	WorkerName     string
	WorkerIP       string
	WorkerPort     int
	ModelInstances ModelInstanceLister
	Manager        ProcessManager
	GPUDevices     models.GPUDevicesInfo
	SystemInfo     *models.SystemInfo
	Logger         *zap.Logger
}

// StatusCollector assembles the runtime snapshot reported to the cluster
// controller. Collect never fails: collaborator errors degrade the snapshot
// or flip readiness, but a record always comes back.
type StatusCollector struct {
	workerName string
	hostname   string
	workerIP   string
	workerPort int
	clientset  ModelInstanceLister
	manager    ProcessManager
	factory    detectorFactory
	workerUUID *string
	log        *zap.Logger
}

func NewStatusCollector(opts CollectorOptions) *StatusCollector {
	hostname, _ := os.Hostname()
	workerName := opts.WorkerName
	if workerName == "" {
		workerName = hostname
	}
	log := opts.Logger
	if log == nil {
		log = zlog.Logger
	}

	c := &StatusCollector{
		workerName: workerName,
		hostname:   hostname,
		workerIP:   opts.WorkerIP,
		workerPort: opts.WorkerPort,
		clientset:  opts.ModelInstances,
		manager:    opts.Manager,
		factory: detectors.NewDetectorFactory(detectors.Options{
			GPUDevices: opts.GPUDevices,
			SystemInfo: opts.SystemInfo,
		}),
		log: log,
	}

	if c.manager != nil {
		uuid, err := c.manager.GetWorkerUUID()
		if err != nil {
			c.log.Sugar().Errorf("failed to resolve worker UUID: %v", err)
		} else {
			c.workerUUID = &uuid
		}
	}

	return c
}

// Collect builds one snapshot. With initial set, GPU detection is skipped so
// the bootstrap report comes back quickly, and the node reports not ready.
func (c *StatusCollector) Collect(initial bool) *models.Worker {
	status := models.WorkerStatus{}
	var stateMessage string

	systemInfo, err := c.factory.DetectSystemInfo()
	if err != nil {
		c.log.Sugar().Errorf("failed to detect system info: %v", err)
	} else {
		status.CPU = systemInfo.CPU
		status.Memory = systemInfo.Memory
		status.Swap = systemInfo.Swap
		status.Filesystem = systemInfo.Filesystem
		status.OS = systemInfo.OS
		status.Kernel = systemInfo.Kernel
		status.Uptime = systemInfo.Uptime
	}

	if !initial {
		gpuDevices, err := c.factory.DetectGPUs()
		var detectErr *detectors.GPUDetectError
		switch {
		case err == nil:
			status.GPUDevices = gpuDevices
		case errors.As(err, &detectErr):
			stateMessage = detectErr.Error()
		default:
			c.log.Sugar().Errorf("failed to detect GPU devices: %v", err)
		}
	}

	c.injectUnifiedMemory(&status)
	c.injectComputedFilesystemUsage(&status)
	c.injectAllocatedResources(&status)

	if c.manager != nil {
		processes := c.manager.GetRPCServers()
		rpcServers := make(map[int]models.RPCServer, len(processes))
		for gpuIndex, process := range processes {
			rpcServers[gpuIndex] = models.RPCServer{
				PID:      process.PID,
				Port:     process.Port,
				GPUIndex: gpuIndex,
			}
		}
		status.RPCServers = rpcServers
	}

	state := models.WorkerStateReady
	if initial || stateMessage != "" {
		state = models.WorkerStateNotReady
	}

	return &models.Worker{
		Name:         c.workerName,
		Hostname:     c.hostname,
		IP:           c.workerIP,
		Port:         c.workerPort,
		WorkerUUID:   c.workerUUID,
		State:        state,
		StateMessage: stateMessage,
		Status:       status,
	}
}

// injectUnifiedMemory copies the first GPU device's unified-memory flag onto
// the host memory record. No devices means explicitly false.
func (c *StatusCollector) injectUnifiedMemory(status *models.WorkerStatus) {
	isUnifiedMemory := false
	if len(status.GPUDevices) != 0 {
		isUnifiedMemory = status.GPUDevices[0].Memory.IsUnifiedMemory
	}

	if status.Memory != nil {
		status.Memory.IsUnifiedMemory = isUnifiedMemory
	}
}

// injectComputedFilesystemUsage appends one aggregate mount-point entry
// summing all real ones. Windows reports filesystem usage per drive only, and
// the controller expects a whole-host figure.
func (c *StatusCollector) injectComputedFilesystemUsage(status *models.WorkerStatus) {
	if status.OS == nil || !strings.Contains(status.OS.Name, "Windows") || status.Filesystem == nil {
		return
	}

	computed := models.MountPoint{
		Name:       "computed",
		MountPoint: "/",
	}
	for _, mountpoint := range status.Filesystem {
		computed.Total += mountpoint.Total
		computed.Used += mountpoint.Used
		computed.Free += mountpoint.Free
		computed.Available += mountpoint.Available
	}

	status.Filesystem = append(status.Filesystem, computed)
}

// injectAllocatedResources folds the cluster's scheduled model instances into
// per-host RAM and per-GPU VRAM allocation totals. A worker is charged both
// for instances it primarily owns and for its subordinate participations in
// distributed instances; the two roles are counted independently. Every GPU
// device ends up with an explicit allocation, zero when nothing is claimed on
// it.
func (c *StatusCollector) injectAllocatedResources(status *models.WorkerStatus) {
	if c.clientset == nil {
		return
	}

	allocated := newAllocated()
	modelInstances, err := c.clientset.List()
	if err != nil {
		c.log.Sugar().Errorf("failed to inject allocated resources: %v", err)
		return
	}

	for _, modelInstance := range modelInstances {
		if modelInstance.DistributedServers != nil {
			for _, subordinate := range modelInstance.DistributedServers.SubordinateWorkers {
				if subordinate.WorkerName != c.workerName {
					continue
				}
				allocated.addClaim(subordinate.ComputedResourceClaim)
			}
		}

		if modelInstance.WorkerName != c.workerName {
			continue
		}
		allocated.addClaim(modelInstance.ComputedResourceClaim)
	}

	if status.Memory != nil {
		status.Memory.Allocated = allocated.ram
	}
	for i := range status.GPUDevices {
		status.GPUDevices[i].Memory.Allocated = allocated.vram[status.GPUDevices[i].Index]
	}
}
