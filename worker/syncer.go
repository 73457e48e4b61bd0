package worker

import (
	"sync"
	"time"

	"gitlab.com/gpufleet/worker-management-service/client"
	"gitlab.com/gpufleet/worker-management-service/internal/background_tasks"
	"gitlab.com/gpufleet/worker-management-service/models"
)

// Syncer runs the collector on a cadence and pushes each snapshot to the
// controller. The first run is the initial (bootstrap) snapshot. The latest
// record is kept for the local REST surface.
type Syncer struct {
	collector *StatusCollector
	clientset *client.ClientSet
	scheduler *background_tasks.Scheduler
	interval  time.Duration

	mu     sync.RWMutex
	latest *models.Worker
}

func NewSyncer(collector *StatusCollector, clientset *client.ClientSet, interval time.Duration) *Syncer {
	return &Syncer{
		collector: collector,
		clientset: clientset,
		scheduler: background_tasks.NewScheduler(),
		interval:  interval,
	}
}

// Start publishes the initial snapshot synchronously, then schedules the
// periodic sync. A failed push is logged and retried on the next tick.
func (s *Syncer) Start() {
	if err := s.sync(true); err != nil {
		zlog.Sugar().Errorf("initial status sync failed: %v", err)
	}

	s.scheduler.AddTask(&background_tasks.Task{
		Name:     "worker-status-sync",
		Triggers: []background_tasks.Trigger{&background_tasks.PeriodicTrigger{Interval: s.interval}},
		Function: func() error {
			return s.sync(false)
		},
	})
	s.scheduler.Start()
}

func (s *Syncer) Stop() {
	s.scheduler.Stop()
}

func (s *Syncer) sync(initial bool) error {
	worker := s.collector.Collect(initial)

	s.mu.Lock()
	s.latest = worker
	s.mu.Unlock()

	if s.clientset == nil {
		return nil
	}
	return s.clientset.Workers.UpdateStatus(worker)
}

// Latest returns the most recently collected snapshot, nil before the first
// sync completes.
func (s *Syncer) Latest() *models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
