package background_tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerAddAndRemoveTask(t *testing.T) {
	scheduler := NewScheduler()

	task := &Task{
		Name: "Test Task",
		Function: func() error {
			return nil
		},
		Triggers: []Trigger{&OneTimeTrigger{Delay: 1 * time.Second}},
	}

	addedTask := scheduler.AddTask(task)
	assert.Equal(t, 0, addedTask.ID, "Task ID should be set correctly")

	scheduler.RemoveTask(0)
	assert.Equal(t, 0, len(scheduler.tasks), "Task should be removed from scheduler")
}

func TestSchedulerTaskExecution(t *testing.T) {
	scheduler := NewScheduler()

	triggered := make(chan bool, 1)
	task := &Task{
		Name: "Test Task",
		Function: func() error {
			triggered <- true
			return nil
		},
		Triggers: []Trigger{&OneTimeTrigger{Delay: 1 * time.Millisecond}},
	}

	scheduler.AddTask(task)
	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-triggered:
		// Test passed
	case <-time.After(3 * time.Second):
		t.Error("Task was not executed within the expected time")
	}
}

func TestPeriodicTriggerInterval(t *testing.T) {
	trigger := &PeriodicTrigger{Interval: 10 * time.Millisecond}
	trigger.Reset()

	assert.False(t, trigger.IsReady())
	time.Sleep(20 * time.Millisecond)
	assert.True(t, trigger.IsReady())
}

func TestPeriodicTriggerCronExpr(t *testing.T) {
	trigger := &PeriodicTrigger{CronExpr: "* * * * *"}

	// lastTriggered is the zero time, so the next cron tick is long past.
	assert.True(t, trigger.IsReady())

	trigger.Reset()
	assert.False(t, trigger.IsReady())
}
