package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CheckName != "Netapp health" {
		t.Errorf("check name = %q", cfg.CheckName)
	}
	if cfg.Target.Community != "public" {
		t.Errorf("community = %q, want public", cfg.Target.Community)
	}
	if cfg.Snmp.Port != 161 {
		t.Errorf("snmp port = %d, want 161", cfg.Snmp.Port)
	}
	if cfg.Snmp.GetTimeout() != 5*time.Second {
		t.Errorf("snmp timeout = %v, want 5s", cfg.Snmp.GetTimeout())
	}
	if cfg.Snmp.Retries != 2 {
		t.Errorf("snmp retries = %d, want 2", cfg.Snmp.Retries)
	}
	if cfg.Ping.GetTimeout() != time.Second {
		t.Errorf("ping timeout = %v, want 1s", cfg.Ping.GetTimeout())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check_netapp.yaml")
	content := `check_name: "Filer health"
target:
  host: filer01
  community: storage-ro
snmp:
  timeout_ms: 2000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.CheckName != "Filer health" {
		t.Errorf("check name = %q", cfg.CheckName)
	}
	if cfg.Target.Host != "filer01" {
		t.Errorf("host = %q", cfg.Target.Host)
	}
	if cfg.Target.Community != "storage-ro" {
		t.Errorf("community = %q", cfg.Target.Community)
	}
	if cfg.Snmp.TimeoutMS != 2000 {
		t.Errorf("snmp timeout = %d, want 2000", cfg.Snmp.TimeoutMS)
	}
	// Values the file does not mention keep their defaults.
	if cfg.Snmp.Retries != 2 {
		t.Errorf("snmp retries = %d, want 2", cfg.Snmp.Retries)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Target.Community != "public" {
		t.Errorf("community = %q, want public", cfg.Target.Community)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CHECK_NETAPP_HOST", "filer02")
	t.Setenv("CHECK_NETAPP_COMMUNITY", "secret-ro")
	t.Setenv("CHECK_NETAPP_SNMP_RETRIES", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Target.Host != "filer02" {
		t.Errorf("host = %q, want filer02", cfg.Target.Host)
	}
	if cfg.Target.Community != "secret-ro" {
		t.Errorf("community = %q, want secret-ro", cfg.Target.Community)
	}
	if cfg.Snmp.Retries != 5 {
		t.Errorf("retries = %d, want 5", cfg.Snmp.Retries)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) { c.Target.Host = "filer01" }, ""},
		{"missing host", func(c *Config) {}, "target host is required"},
		{
			"missing community",
			func(c *Config) { c.Target.Host = "filer01"; c.Target.Community = "" },
			"config validation failed",
		},
		{
			"zero snmp timeout",
			func(c *Config) { c.Target.Host = "filer01"; c.Snmp.TimeoutMS = 0 },
			"config validation failed",
		},
		{
			"negative retries",
			func(c *Config) { c.Target.Host = "filer01"; c.Snmp.Retries = -1 },
			"config validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
