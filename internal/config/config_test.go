package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DESKTOP_BREAKPOINT", "PROFILE_CACHE_TTL", "REDIS_URL", "PRIVACY_STATEMENT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DesktopBreakpoint != 768 {
		t.Errorf("DesktopBreakpoint = %d, want 768", cfg.DesktopBreakpoint)
	}
	if cfg.ProfileCacheTTL != 5*time.Minute {
		t.Errorf("ProfileCacheTTL = %v, want 5m", cfg.ProfileCacheTTL)
	}
	if cfg.IsCacheEnabled() {
		t.Error("IsCacheEnabled() = true without REDIS_URL")
	}
	if cfg.PrivacyStatement != DefaultPrivacyStatement {
		t.Errorf("PrivacyStatement = %q, want default", cfg.PrivacyStatement)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DESKTOP_BREAKPOINT", "1024")
	t.Setenv("PROFILE_CACHE_TTL", "30s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()
	if cfg.DesktopBreakpoint != 1024 {
		t.Errorf("DesktopBreakpoint = %d, want 1024", cfg.DesktopBreakpoint)
	}
	if cfg.ProfileCacheTTL != 30*time.Second {
		t.Errorf("ProfileCacheTTL = %v, want 30s", cfg.ProfileCacheTTL)
	}
	if !cfg.IsCacheEnabled() {
		t.Error("IsCacheEnabled() = false with REDIS_URL set")
	}
}

func TestLoad_InvalidBreakpointFallsBack(t *testing.T) {
	tests := []string{"abc", "0", "-5"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DESKTOP_BREAKPOINT", v)
			if got := Load().DesktopBreakpoint; got != 768 {
				t.Errorf("DesktopBreakpoint = %d, want 768", got)
			}
		})
	}
}

func TestProfileURL(t *testing.T) {
	cfg := &Config{BaseURL: "https://ask.example.com"}
	if got := cfg.ProfileURL("mmcm"); got != "https://ask.example.com/communities/mmcm" {
		t.Errorf("ProfileURL() = %q", got)
	}
}

func TestLoadYAMLConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
privacy_statement: "Stay kind."
send_options:
  - key: General
    label: General
    sample: "Say anything"
    icon: chat
  - key: complaint
    label: Complaint
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	yc, err := LoadYAMLConfigFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfigFile() error = %v", err)
	}

	opts := yc.GetSendOptions()
	if len(opts) != 2 {
		t.Fatalf("GetSendOptions() returned %d options, want 2", len(opts))
	}
	if opts[0].Key != "General" || opts[0].Icon != "chat" {
		t.Errorf("first option = %+v", opts[0])
	}

	cfg := &Config{PrivacyStatement: DefaultPrivacyStatement}
	yc.ApplyTo(cfg)
	if cfg.PrivacyStatement != "Stay kind." {
		t.Errorf("PrivacyStatement = %q, want %q", cfg.PrivacyStatement, "Stay kind.")
	}
}

func TestLoadYAMLConfigFile_Missing(t *testing.T) {
	yc, err := LoadYAMLConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadYAMLConfigFile() error = %v, want nil", err)
	}
	if yc != nil {
		t.Error("LoadYAMLConfigFile() should return nil for a missing file")
	}
	if yc.GetSendOptions() != nil {
		t.Error("GetSendOptions() on nil config should return nil")
	}
}
