package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validJob = `
sources:
  - "logs/*.log"
pattern: '^([A-Z]) (\d+)$'
columns: [letter, num]
on_error: skip
workers: 4
`

func TestLoad_Valid(t *testing.T) {
	path := writeJobFile(t, validJob)

	job, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(job.Sources) != 1 || job.Sources[0] != "logs/*.log" {
		t.Errorf("Sources = %v", job.Sources)
	}
	if job.OnError != "skip" {
		t.Errorf("OnError = %q, want skip", job.OnError)
	}
	if job.Workers != 4 {
		t.Errorf("Workers = %d, want 4", job.Workers)
	}
	// Defaults fill unset fields.
	if job.Backend != DefaultBackend {
		t.Errorf("Backend = %q, want %q", job.Backend, DefaultBackend)
	}
	if job.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", job.Output, DefaultOutput)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeJobFile(t, "sources: [unclosed")
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_ArityMismatch(t *testing.T) {
	path := writeJobFile(t, `
sources: ["logs/*.log"]
pattern: '^([A-Z]) (\d+)$'
columns: [a, b, c]
`)
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for group/column mismatch")
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeJobFile(t, `
sources: ["logs/*.log"]
pattern: '(\d+)'
columns: [n]
on_error: ignore
`)
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid on_error")
	}
}

func TestLoad_InvalidOutput(t *testing.T) {
	path := writeJobFile(t, `
sources: ["logs/*.log"]
pattern: '(\d+)'
columns: [n]
output: xml
`)
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid output format")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv(EnvOnError, "include")
	t.Setenv(EnvWorkers, "7")

	path := writeJobFile(t, validJob)
	job, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if job.OnError != "include" {
		t.Errorf("OnError = %q, want include (env override)", job.OnError)
	}
	if job.Workers != 7 {
		t.Errorf("Workers = %d, want 7 (env override)", job.Workers)
	}
}

func TestValidate_WebhookDefaults(t *testing.T) {
	job := DefaultJob()
	job.Sources = []string{"logs/*.log"}
	job.Pattern = `(\d+)`
	job.Columns = []string{"n"}
	job.Webhooks = []WebhookConfig{{URL: "https://example.com/hook"}}

	if err := Validate(job); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	wh := job.Webhooks[0]
	if wh.Trigger != WebhookTriggerOnFailures {
		t.Errorf("Trigger = %q, want %q", wh.Trigger, WebhookTriggerOnFailures)
	}
	if wh.Timeout != DefaultWebhookTimeout {
		t.Errorf("Timeout = %v, want %v", wh.Timeout, DefaultWebhookTimeout)
	}
}

func TestValidate_WebhookBadScheme(t *testing.T) {
	job := DefaultJob()
	job.Sources = []string{"logs/*.log"}
	job.Pattern = `(\d+)`
	job.Columns = []string{"n"}
	job.Webhooks = []WebhookConfig{{URL: "ftp://example.com/hook"}}

	if err := Validate(job); err == nil {
		t.Error("Validate() expected error for non-http webhook URL")
	}
}

func TestValidate_WebhookTokenExpansion(t *testing.T) {
	t.Setenv("HOOK_TOKEN", "secret123")

	job := DefaultJob()
	job.Sources = []string{"logs/*.log"}
	job.Pattern = `(\d+)`
	job.Columns = []string{"n"}
	job.Webhooks = []WebhookConfig{{URL: "https://example.com/hook", Token: "${HOOK_TOKEN}"}}

	if err := Validate(job); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if job.Webhooks[0].Token != "secret123" {
		t.Errorf("Token = %q, want expanded value", job.Webhooks[0].Token)
	}
}
