package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/theme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.DefaultTab != "publishing" {
		t.Errorf("expected default tab %q, got %q", "publishing", cfg.DefaultTab)
	}
	if cfg.Relay.BaseURL != "https://formsubmit.co" {
		t.Errorf("expected default relay base, got %q", cfg.Relay.BaseURL)
	}
	if !cfg.Manager.EnableLogo || !cfg.Manager.EnableCompany {
		t.Error("manager extras should default to enabled")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.pubsite.yml")

	original := DefaultConfig()
	original.SiteName = "Dom Wydawniczy Północ"
	original.Port = 9090
	original.DefaultTab = "contact"
	original.Theme = map[string]string{theme.TokenAccent: "#336699"}
	original.Relay.AttachmentAllow = []string{"*.pdf"}
	original.Manager.EnableLogo = false

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DefaultTab != original.DefaultTab {
		t.Errorf("default_tab: got %q, want %q", loaded.DefaultTab, original.DefaultTab)
	}
	if loaded.Theme[theme.TokenAccent] != "#336699" {
		t.Errorf("theme accent: got %q", loaded.Theme[theme.TokenAccent])
	}
	if len(loaded.Relay.AttachmentAllow) != 1 || loaded.Relay.AttachmentAllow[0] != "*.pdf" {
		t.Errorf("attachment_allow: got %v", loaded.Relay.AttachmentAllow)
	}
	if loaded.Manager.EnableLogo {
		t.Error("enable_logo: got true, want false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("PUBSITE_PORT", "3000")
	defer os.Unsetenv("PUBSITE_PORT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got %d, want 3000", loaded.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptySiteName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SiteName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty site_name")
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port above range")
	}
}

func TestValidateUnknownThemeToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = map[string]string{"--not-a-token": "red"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown theme token")
	}
}

func TestValidateRelayBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Relay.BaseURL = "ftp://relay.example"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-http relay base")
	}
}

func TestRuntimeSwap(t *testing.T) {
	first := DefaultConfig()
	rt := NewRuntime(first)
	if rt.Current() != first {
		t.Fatal("Current should return the initial config")
	}

	second := DefaultConfig()
	second.Port = 9090
	rt.Replace(second)
	if rt.Current().Port != 9090 {
		t.Errorf("after Replace, port = %d, want 9090", rt.Current().Port)
	}
}

func TestThemeSeedCopies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = map[string]string{theme.TokenAccent: "#336699"}

	seed := cfg.ThemeSeed()
	seed[theme.TokenAccent] = "#000000"

	if cfg.Theme[theme.TokenAccent] != "#336699" {
		t.Error("mutating the seed must not change the config")
	}
}
