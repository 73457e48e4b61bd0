package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/gpufleet/worker-management-service/api"
	"gitlab.com/gpufleet/worker-management-service/client"
	"gitlab.com/gpufleet/worker-management-service/internal/config"
	"gitlab.com/gpufleet/worker-management-service/models"
	"gitlab.com/gpufleet/worker-management-service/worker"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the worker daemon",
	Long:  `Run the worker: collect status on the configured interval, push it to the cluster controller and serve the local REST API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		cfg := config.GetConfig()

		gpuDevices, systemInfo, err := loadDetectorOverrides(cfg)
		if err != nil {
			return err
		}

		clientset := client.NewClientSet(cfg.Server.URL, cfg.Server.Token)
		manager := worker.NewWorkerManager(cfg.General.DataDir)

		collector := worker.NewStatusCollector(worker.CollectorOptions{
			WorkerName:     cfg.Worker.Name,
			WorkerIP:       cfg.Worker.IP,
			WorkerPort:     cfg.Worker.Port,
			ModelInstances: clientset.ModelInstances,
			Manager:        manager,
			GPUDevices:     gpuDevices,
			SystemInfo:     systemInfo,
		})

		syncer := worker.NewSyncer(collector, clientset, time.Duration(cfg.Worker.SyncInterval)*time.Second)
		syncer.Start()
		defer syncer.Stop()

		zlog.Sugar().Infof("worker daemon started, serving REST on port %d", cfg.Rest.Port)

		router := api.SetupRouter(syncer)
		return router.Run(fmt.Sprintf(":%d", cfg.Rest.Port))
	},
}

// loadDetectorOverrides reads the optional fixed GPU device list and system
// info from the configured JSON files.
func loadDetectorOverrides(cfg *config.Config) (models.GPUDevicesInfo, *models.SystemInfo, error) {
	var gpuDevices models.GPUDevicesInfo
	if cfg.Worker.GPUDevicesFile != "" {
		data, err := os.ReadFile(cfg.Worker.GPUDevicesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to read gpu devices file: %w", err)
		}
		if err := json.Unmarshal(data, &gpuDevices); err != nil {
			return nil, nil, fmt.Errorf("unable to parse gpu devices file: %w", err)
		}
	}

	var systemInfo *models.SystemInfo
	if cfg.Worker.SystemInfoFile != "" {
		data, err := os.ReadFile(cfg.Worker.SystemInfoFile)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to read system info file: %w", err)
		}
		systemInfo = &models.SystemInfo{}
		if err := json.Unmarshal(data, systemInfo); err != nil {
			return nil, nil, fmt.Errorf("unable to parse system info file: %w", err)
		}
	}

	return gpuDevices, systemInfo, nil
}
