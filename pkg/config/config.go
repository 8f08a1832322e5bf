package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhiyong9654/data-parser/pkg/engine"
)

// Load reads and validates a job file.
func Load(_ context.Context, path string) (*Job, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}

	job := DefaultJob()
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}

	job.applyEnvironmentOverrides()

	if err := Validate(job); err != nil {
		return nil, fmt.Errorf("validating job: %w", err)
	}

	return job, nil
}

// Validate checks a job for errors. Pattern compilation and the group/column
// arity check are delegated to the engine, so a job that validates here will
// also construct an engine.
func Validate(job *Job) error {
	if _, err := engine.New(job.EngineConfig()); err != nil {
		return err
	}

	switch job.Output {
	case "", "text", "json", "csv":
	default:
		return fmt.Errorf("output: invalid format %q (must be text, json, or csv)", job.Output)
	}

	// Webhooks are optional, but validate if present
	for i := range job.Webhooks {
		if err := validateWebhook(&job.Webhooks[i]); err != nil {
			name := job.Webhooks[i].Name
			if name == "" {
				name = job.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

// EngineConfig converts the job to an engine configuration.
func (j *Job) EngineConfig() engine.Config {
	return engine.Config{
		Patterns: j.Sources,
		Regex:    j.Pattern,
		Columns:  j.Columns,
		Policy:   engine.Policy(j.OnError),
		Backend:  j.Backend,
		Options: engine.Options{
			Workers:    j.Workers,
			BatchSize:  j.BatchSize,
			Unordered:  j.Unordered,
			AllowEmpty: j.AllowEmpty,
			MaxRows:    j.MaxRows,
		},
	}
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = os.Expand(wh.Token, os.Getenv)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerOnFailures, WebhookTriggerAlways, WebhookTriggerNever:
			// Valid
		default:
			return fmt.Errorf("invalid trigger %q (must be on_failures, always, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerOnFailures
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}
