package orrery

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _orreryconfig{}
)

// _orreryconfig is a "hidden" struct, just use `orreryConfig`.
type _orreryconfig struct {
	VSOP87    bool
	VSOP87Dir string

	DistanceKmPerUnit float64
	SizeKmPerUnit     float64
	PlaybackRate      float64

	LODMajor float64
	LODSmall float64
	LODTiny  float64
}

// orreryConfig returns the engine configuration. With the `ORRERY_CONFIG`
// environment variable set, overrides are read from `conf.toml` in that
// directory; otherwise the built-in defaults apply, so the engine starts
// with zero configuration.
func orreryConfig() _orreryconfig {
	if cfgLoaded {
		return config
	}
	cfg := _orreryconfig{
		DistanceKmPerUnit: 1e5,
		SizeKmPerUnit:     2e3,
		PlaybackRate:      1.0,
		LODMajor:          2e4,
		LODSmall:          2e3,
		LODTiny:           5e2,
	}
	if confPath := os.Getenv("ORRERY_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		cfg.VSOP87 = viper.GetBool("VSOP87.enabled")
		cfg.VSOP87Dir = viper.GetString("VSOP87.directory")
		if viper.IsSet("scale.distance_km_per_unit") {
			cfg.DistanceKmPerUnit = viper.GetFloat64("scale.distance_km_per_unit")
		}
		if viper.IsSet("scale.size_km_per_unit") {
			cfg.SizeKmPerUnit = viper.GetFloat64("scale.size_km_per_unit")
		}
		if viper.IsSet("clock.playback_rate") {
			cfg.PlaybackRate = viper.GetFloat64("clock.playback_rate")
		}
		if viper.IsSet("lod.major_moon") {
			cfg.LODMajor = viper.GetFloat64("lod.major_moon")
		}
		if viper.IsSet("lod.small_moon") {
			cfg.LODSmall = viper.GetFloat64("lod.small_moon")
		}
		if viper.IsSet("lod.tiny_moon") {
			cfg.LODTiny = viper.GetFloat64("lod.tiny_moon")
		}
	}
	config = cfg
	cfgLoaded = true
	return config
}
