package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gitlab.com/gpufleet/worker-management-service/internal/config"
	"gitlab.com/gpufleet/worker-management-service/worker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Collect and display this node's status",
	Long:  `Run one collection pass against the local hardware and print the snapshot. No data is sent to the controller.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		cfg := config.GetConfig()

		gpuDevices, systemInfo, err := loadDetectorOverrides(cfg)
		if err != nil {
			return err
		}

		collector := worker.NewStatusCollector(worker.CollectorOptions{
			WorkerName: cfg.Worker.Name,
			WorkerIP:   cfg.Worker.IP,
			WorkerPort: cfg.Worker.Port,
			GPUDevices: gpuDevices,
			SystemInfo: systemInfo,
		})
		w := collector.Collect(false)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field", "Value"})
		table.Append([]string{"Name", w.Name})
		table.Append([]string{"Hostname", w.Hostname})
		table.Append([]string{"State", string(w.State)})
		if w.StateMessage != "" {
			table.Append([]string{"State Message", w.StateMessage})
		}
		if w.Status.CPU != nil {
			table.Append([]string{"CPU Cores", fmt.Sprintf("%d", w.Status.CPU.Total)})
		}
		if w.Status.Memory != nil {
			table.Append([]string{"Memory", humanize.IBytes(uint64(w.Status.Memory.Total))})
		}
		if w.Status.OS != nil {
			table.Append([]string{"OS", fmt.Sprintf("%s %s", w.Status.OS.Name, w.Status.OS.Version)})
		}
		for _, device := range w.Status.GPUDevices {
			table.Append([]string{
				fmt.Sprintf("GPU %d", device.Index),
				fmt.Sprintf("%s (%s VRAM)", device.Name, humanize.IBytes(uint64(device.Memory.Total))),
			})
		}
		table.Render()
		return nil
	},
}
