// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the settings that are not part of a quote itself.
type Config struct {
	// CatalogPath replaces the embedded catalog when set.
	CatalogPath string
	// Company is printed in export headers.
	Company string
	// ExportDir is where export writes when --out is a bare file name.
	ExportDir string
	// ExportFormat is used when export is run without --format.
	ExportFormat string
	LogUseCases  bool
}

// DefaultConfig returns the settings used when no variable is set.
func DefaultConfig() Config {
	return Config{
		Company:      "Cotiza",
		ExportDir:    ".",
		ExportFormat: "pdf",
	}
}

// LoadConfig reads COTIZA_* environment variables over the defaults.
// Unparseable values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("COTIZA_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("COTIZA_COMPANY")); v != "" {
		cfg.Company = v
	}
	if v := os.Getenv("COTIZA_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := strings.ToLower(os.Getenv("COTIZA_EXPORT_FORMAT")); v == "pdf" || v == "xlsx" {
		cfg.ExportFormat = v
	}
	if v := os.Getenv("COTIZA_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}
