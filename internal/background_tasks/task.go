package background_tasks

import (
	"time"
)

// RetryPolicy defines the policy for retrying tasks on failure.
type RetryPolicy struct {
	MaxRetries int           // Maximum number of retries.
	Delay      time.Duration // Delay between retries.
}

// Task represents a schedulable task.
type Task struct {
	ID          int          // Unique identifier for the task.
	Name        string       // Name of the task.
	Triggers    []Trigger    // List of triggers for the task.
	Function    func() error // Function to execute as the task.
	RetryPolicy RetryPolicy  // Retry policy for the task.
	Enabled     bool         // Flag indicating if the task is enabled.
}
