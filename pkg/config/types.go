// Package config provides YAML job-file loading and validation.
package config

import "time"

// Job is a parse job description loaded from YAML.
type Job struct {
	// Sources is one or more glob patterns selecting input files.
	Sources []string `yaml:"sources"`

	// Pattern is the regular expression applied to each line. Capture groups
	// map to Columns in declaration order.
	Pattern string `yaml:"pattern"`

	// Columns names the output columns; length must equal the capture-group
	// count of Pattern.
	Columns []string `yaml:"columns"`

	// OnError selects the failure policy: raise, skip, or include.
	OnError string `yaml:"on_error,omitempty"`

	// Backend selects the execution substrate. Only "local" is built in.
	Backend string `yaml:"backend,omitempty"`

	// Workers is the worker pool size. Zero means the host core count.
	Workers int `yaml:"workers,omitempty"`

	// BatchSize is the number of lines dispatched per batch.
	BatchSize int `yaml:"batch_size,omitempty"`

	// Unordered opts into completion-order rows for throughput.
	Unordered bool `yaml:"unordered,omitempty"`

	// AllowEmpty treats zero matched files as an empty table, not an error.
	AllowEmpty bool `yaml:"allow_empty,omitempty"`

	// MaxRows caps the assembled table. Zero means unlimited.
	MaxRows int `yaml:"max_rows,omitempty"`

	// Output selects the CLI output format: text, json, or csv.
	Output string `yaml:"output,omitempty"`

	// Webhooks are optional endpoints to send the parse report to.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnFailures fires only when the run had failed lines or
	// unreadable files (default).
	WebhookTriggerOnFailures WebhookTrigger = "on_failures"
	// WebhookTriggerAlways fires after every parse.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending parse reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires. Defaults to "on_failures".
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
