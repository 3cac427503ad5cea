package orrery

import (
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	// With ORRERY_CONFIG unset the engine runs on built-in defaults.
	cfg := orreryConfig()
	if cfg.VSOP87 {
		t.Fatal("VSOP87 must be opt-in")
	}
	if cfg.DistanceKmPerUnit != 1e5 || cfg.SizeKmPerUnit != 2e3 {
		t.Fatalf("default scales %g / %g", cfg.DistanceKmPerUnit, cfg.SizeKmPerUnit)
	}
	if cfg.PlaybackRate != 1 {
		t.Fatalf("default playback rate %g", cfg.PlaybackRate)
	}
	if cfg.LODMajor != 2e4 || cfg.LODSmall != 2e3 || cfg.LODTiny != 5e2 {
		t.Fatalf("default LOD thresholds %g / %g / %g", cfg.LODMajor, cfg.LODSmall, cfg.LODTiny)
	}
	// The config is loaded once and memoized.
	if again := orreryConfig(); again != cfg {
		t.Fatal("config not memoized")
	}
}
