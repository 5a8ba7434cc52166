package main

import (
	"fmt"

	"github.com/san-kum/kinwave/internal/config"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	for _, o := range []struct {
		flag string
		key  string
		val  float64
	}{
		{"length", config.KeyLength, length},
		{"spacing", config.KeySpacing, spacing},
		{"dt", config.KeyTimeStep, timeStep},
		{"h0", config.KeyUpstreamDepth, upstreamDepth},
		{"q0", config.KeyUpstreamDischarge, upstreamDischarge},
		{"h-down", config.KeyDownstreamDepth, downstreamDepth},
		{"q-down", config.KeyDownstreamDischarge, downstreamDischarge},
	} {
		if flags.Changed(o.flag) {
			cfg.Set(o.key, o.val)
		}
	}

	logger.Debug("resolved parameters",
		"length", cfg.Length, "spacing", cfg.Spacing, "dt", cfg.TimeStep,
		"h0", cfg.Upstream.Depth, "q0", cfg.Upstream.Discharge,
		"h_down", cfg.Downstream.Depth, "q_down", cfg.Downstream.Discharge)
	if keys := cfg.OutOfRange(); len(keys) > 0 {
		logger.Warn("parameters outside the interactive ranges", "keys", keys)
	}

	return cfg, nil
}
