package background_tasks

import (
	"sync"
	"time"
)

// Scheduler runs registered tasks whenever one of their triggers fires. At
// most one execution of a given task is in flight at a time.
type Scheduler struct {
	tasks        map[int]*Task
	runningTasks map[int]bool
	ticker       *time.Ticker
	stopChan     chan struct{}
	lastTaskID   int
	mu           sync.Mutex
}

// NewScheduler creates a new Scheduler checking task triggers every second.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks:        make(map[int]*Task),
		runningTasks: make(map[int]bool),
		ticker:       time.NewTicker(1 * time.Second),
		stopChan:     make(chan struct{}),
	}
}

// AddTask adds a new task to the scheduler and initializes its state.
func (s *Scheduler) AddTask(task *Task) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.lastTaskID
	task.Enabled = true

	for _, trigger := range task.Triggers {
		trigger.Reset()
	}

	s.tasks[task.ID] = task
	s.lastTaskID++

	return task
}

// RemoveTask removes a task from the scheduler.
func (s *Scheduler) RemoveTask(taskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, taskID)
}

// Start begins the scheduler's task execution loop.
func (s *Scheduler) Start() {
	go func() {
		for {
			select {
			case <-s.stopChan:
				return
			case <-s.ticker.C:
				s.runReadyTasks()
			}
		}
	}()
}

// Stop signals the scheduler to stop running tasks.
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

// runReadyTasks starts every enabled, non-running task with a fired trigger.
func (s *Scheduler) runReadyTasks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if !task.Enabled || s.runningTasks[task.ID] {
			continue
		}

		for _, trigger := range task.Triggers {
			if trigger.IsReady() {
				s.runningTasks[task.ID] = true
				go s.runTask(task.ID)
				trigger.Reset()
				break
			}
		}
	}
}

// runTask executes a task honoring its retry policy.
func (s *Scheduler) runTask(taskID int) {
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.runningTasks[taskID] = false
	}()

	s.mu.Lock()
	task := s.tasks[taskID]
	s.mu.Unlock()
	if task == nil {
		return
	}

	var err error
	for i := 0; i < task.RetryPolicy.MaxRetries+1; i++ {
		if err = task.Function(); err == nil {
			return
		}
		time.Sleep(task.RetryPolicy.Delay)
	}
	zlog.Sugar().Errorf("task %s failed after %d retries: %v", task.Name, task.RetryPolicy.MaxRetries, err)
}
