package config

import (
	"testing"
	"time"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServiceURL != defaultServiceURL {
		t.Errorf("ServiceURL = %q, want the default", cfg.ServiceURL)
	}
	if cfg.ListenAddr == "" {
		t.Error("ListenAddr default missing")
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if !cfg.UsingDevSecret() {
		t.Error("expected the built-in dev secret by default")
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	t.Setenv("SNOOZE_SERVICE_URL", "http://localhost:9999")
	t.Setenv("SNOOZE_SESSION_SECRET", "something-else-entirely")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServiceURL != "http://localhost:9999" {
		t.Errorf("ServiceURL = %q, env override ignored", cfg.ServiceURL)
	}
	if cfg.UsingDevSecret() {
		t.Error("dev secret reported despite an override")
	}
}
