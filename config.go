package slidelens

import (
	"os"
	"strconv"
)

const (
	// EnvSoffice overrides the office converter binary.
	EnvSoffice = "SLIDELENS_SOFFICE"
	// EnvPdftoppm overrides the PDF rasterizer binary.
	EnvPdftoppm = "SLIDELENS_PDFTOPPM"
	// EnvDPI overrides the rasterization resolution.
	EnvDPI = "SLIDELENS_DPI"
	// EnvMaxFileBytes overrides the maximum accepted input file size.
	EnvMaxFileBytes = "SLIDELENS_MAX_FILE_BYTES"

	// DefaultDPI is the rasterization resolution used when unset.
	DefaultDPI = 150
	// DefaultMaxFileBytes is the default maximum input file size (200 MiB),
	// matching the reader's ZIP limit.
	DefaultMaxFileBytes int64 = maxZipTotalSize
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	SofficePath      string
	PdftoppmPath     string
	DPI              int
	MaxFileSizeBytes int64
}

// LoadConfig reads Config from environment variables, falling back to
// defaults for missing or invalid values.
func LoadConfig() *Config {
	cfg := &Config{
		SofficePath:      "soffice",
		PdftoppmPath:     "pdftoppm",
		DPI:              DefaultDPI,
		MaxFileSizeBytes: DefaultMaxFileBytes,
	}
	if v := os.Getenv(EnvSoffice); v != "" {
		cfg.SofficePath = v
	}
	if v := os.Getenv(EnvPdftoppm); v != "" {
		cfg.PdftoppmPath = v
	}
	if v := os.Getenv(EnvDPI); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DPI = n
		}
	}
	if v := os.Getenv(EnvMaxFileBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFileSizeBytes = n
		}
	}
	return cfg
}
