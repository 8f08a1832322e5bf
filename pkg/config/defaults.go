package config

import (
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultOnError        = "raise"
	DefaultBackend        = "local"
	DefaultOutput         = "text"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvOnError = "DATAPARSER_ON_ERROR"
	EnvWorkers = "DATAPARSER_WORKERS"
)

// DefaultJob returns a job with sensible defaults.
func DefaultJob() *Job {
	return &Job{
		OnError: DefaultOnError,
		Backend: DefaultBackend,
		Output:  DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the job.
func (j *Job) applyEnvironmentOverrides() {
	if policy := os.Getenv(EnvOnError); policy != "" {
		j.OnError = policy
	}
	if workers := os.Getenv(EnvWorkers); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			j.Workers = n
		}
	}
}
