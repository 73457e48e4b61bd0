package detectors

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"gitlab.com/gpufleet/worker-management-service/models"
)

// System probes the live host through gopsutil.
type System struct{}

func NewSystemInfoDetector() *System {
	return &System{}
}

func (s *System) DetectSystemInfo() (*models.SystemInfo, error) {
	info := &models.SystemInfo{}

	cpuCount, err := cpu.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("unable to detect CPU count: %w", err)
	}
	utilization, err := cpu.Percent(0, false)
	if err != nil {
		return nil, fmt.Errorf("unable to detect CPU utilization: %w", err)
	}
	info.CPU = &models.CPUInfo{Total: cpuCount}
	if len(utilization) != 0 {
		info.CPU.UtilizationRate = utilization[0]
	}

	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("unable to detect memory: %w", err)
	}
	info.Memory = &models.MemoryInfo{
		Total:           int64(virtualMemory.Total),
		Used:            int64(virtualMemory.Used),
		UtilizationRate: virtualMemory.UsedPercent,
	}

	swap, err := mem.SwapMemory()
	if err != nil {
		return nil, fmt.Errorf("unable to detect swap: %w", err)
	}
	info.Swap = &models.SwapInfo{
		Total: int64(swap.Total),
		Used:  int64(swap.Used),
	}

	info.Filesystem = detectFilesystem()

	hostInfo, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("unable to detect host info: %w", err)
	}
	info.OS = &models.OperatingSystemInfo{
		Name:    hostInfo.Platform,
		Version: hostInfo.PlatformVersion,
	}
	info.Kernel = &models.KernelInfo{
		Name:         hostInfo.OS,
		Release:      hostInfo.KernelVersion,
		Architecture: hostInfo.KernelArch,
	}
	info.Uptime = &models.UptimeInfo{
		Uptime:   float64(hostInfo.Uptime),
		BootTime: int64(hostInfo.BootTime),
	}

	return info, nil
}

// detectFilesystem walks physical partitions only. Partitions whose usage
// cannot be read (unmounted media, permissions) are skipped rather than
// failing the whole pass.
func detectFilesystem() []models.MountPoint {
	partitions, err := disk.Partitions(false)
	if err != nil {
		zlog.Sugar().Errorf("unable to list disk partitions: %v", err)
		return nil
	}

	var filesystem []models.MountPoint
	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			continue
		}
		filesystem = append(filesystem, models.MountPoint{
			Name:       partition.Device,
			MountPoint: partition.Mountpoint,
			Total:      int64(usage.Total),
			Used:       int64(usage.Used),
			Free:       int64(usage.Free),
			Available:  int64(usage.Free),
		})
	}
	return filesystem
}
