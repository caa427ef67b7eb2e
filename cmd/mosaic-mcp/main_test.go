package main

import (
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		strict      string
		quality     string
		wantDebug   bool
		wantStrict  bool
		wantQuality int
	}{
		{"defaults", "", "", "", false, false, 95},
		{"debug", "debug", "", "", true, false, 95},
		{"strict", "", "true", "", false, true, 95},
		{"strict numeric", "", "1", "", false, true, 95},
		{"invalid strict ignored", "", "maybe", "", false, false, 95},
		{"quality", "", "", "70", false, false, 70},
		{"quality out of range ignored", "", "", "150", false, false, 95},
		{"quality not a number ignored", "", "", "high", false, false, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MOSAIC_MCP_LOG_LEVEL", tt.level)
			t.Setenv("MOSAIC_MCP_STRICT", tt.strict)
			t.Setenv("MOSAIC_MCP_JPEG_QUALITY", tt.quality)

			cfg := configFromEnv()
			if cfg.Debug != tt.wantDebug {
				t.Errorf("Debug: got %v, want %v", cfg.Debug, tt.wantDebug)
			}
			if cfg.Strict != tt.wantStrict {
				t.Errorf("Strict: got %v, want %v", cfg.Strict, tt.wantStrict)
			}
			if cfg.JPEGQuality != tt.wantQuality {
				t.Errorf("JPEGQuality: got %d, want %d", cfg.JPEGQuality, tt.wantQuality)
			}
			if cfg.Version != Version {
				t.Errorf("Version: got %q, want %q", cfg.Version, Version)
			}
		})
	}
}
