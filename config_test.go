package slidelens

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{EnvSoffice, EnvPdftoppm, EnvDPI, EnvMaxFileBytes} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()
	if cfg.SofficePath != "soffice" || cfg.PdftoppmPath != "pdftoppm" {
		t.Errorf("binaries = %q, %q", cfg.SofficePath, cfg.PdftoppmPath)
	}
	if cfg.DPI != DefaultDPI {
		t.Errorf("DPI = %d, want %d", cfg.DPI, DefaultDPI)
	}
	if cfg.MaxFileSizeBytes != DefaultMaxFileBytes {
		t.Errorf("MaxFileSizeBytes = %d, want %d", cfg.MaxFileSizeBytes, DefaultMaxFileBytes)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv(EnvSoffice, "/opt/libreoffice/soffice")
	t.Setenv(EnvPdftoppm, "/usr/local/bin/pdftoppm")
	t.Setenv(EnvDPI, "300")
	t.Setenv(EnvMaxFileBytes, "1048576")

	cfg := LoadConfig()
	if cfg.SofficePath != "/opt/libreoffice/soffice" {
		t.Errorf("SofficePath = %q", cfg.SofficePath)
	}
	if cfg.PdftoppmPath != "/usr/local/bin/pdftoppm" {
		t.Errorf("PdftoppmPath = %q", cfg.PdftoppmPath)
	}
	if cfg.DPI != 300 {
		t.Errorf("DPI = %d, want 300", cfg.DPI)
	}
	if cfg.MaxFileSizeBytes != 1048576 {
		t.Errorf("MaxFileSizeBytes = %d, want 1048576", cfg.MaxFileSizeBytes)
	}
}

func TestLoadConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv(EnvDPI, "not-a-number")
	t.Setenv(EnvMaxFileBytes, "-5")

	cfg := LoadConfig()
	if cfg.DPI != DefaultDPI {
		t.Errorf("DPI = %d, want default %d", cfg.DPI, DefaultDPI)
	}
	if cfg.MaxFileSizeBytes != DefaultMaxFileBytes {
		t.Errorf("MaxFileSizeBytes = %d, want default %d", cfg.MaxFileSizeBytes, DefaultMaxFileBytes)
	}
}
