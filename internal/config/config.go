package config

import (
	"math"
	"os"

	"github.com/san-kum/kinwave/internal/wave"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLength              = 5000.0
	DefaultSpacing             = 100.0
	DefaultTimeStep            = 600.0
	DefaultUpstreamDepth       = 1.0
	DefaultUpstreamDischarge   = 10.0
	DefaultDownstreamDepth     = 0.5
	DefaultDownstreamDischarge = 0.0
)

type Config struct {
	Length     float64        `yaml:"length"`
	Spacing    float64        `yaml:"spacing"`
	TimeStep   float64        `yaml:"time_step"`
	Upstream   BoundaryConfig `yaml:"upstream"`
	Downstream BoundaryConfig `yaml:"downstream"`
}

type BoundaryConfig struct {
	Depth     float64 `yaml:"depth"`
	Discharge float64 `yaml:"discharge"`
}

func DefaultConfig() *Config {
	return &Config{
		Length:   DefaultLength,
		Spacing:  DefaultSpacing,
		TimeStep: DefaultTimeStep,
		Upstream: BoundaryConfig{
			Depth:     DefaultUpstreamDepth,
			Discharge: DefaultUpstreamDischarge,
		},
		Downstream: BoundaryConfig{
			Depth:     DefaultDownstreamDepth,
			Discharge: DefaultDownstreamDischarge,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() wave.Params {
	return wave.Params{
		Length:              c.Length,
		Spacing:             c.Spacing,
		TimeStep:            c.TimeStep,
		UpstreamDepth:       c.Upstream.Depth,
		UpstreamDischarge:   c.Upstream.Discharge,
		DownstreamDepth:     c.Downstream.Depth,
		DownstreamDischarge: c.Downstream.Discharge,
	}
}

func FromParams(p wave.Params) *Config {
	return &Config{
		Length:     p.Length,
		Spacing:    p.Spacing,
		TimeStep:   p.TimeStep,
		Upstream:   BoundaryConfig{Depth: p.UpstreamDepth, Discharge: p.UpstreamDischarge},
		Downstream: BoundaryConfig{Depth: p.DownstreamDepth, Discharge: p.DownstreamDischarge},
	}
}

// Get returns the value of the field with the given key, or NaN.
func (c *Config) Get(key string) float64 {
	if f := c.field(key); f != nil {
		return *f
	}
	return math.NaN()
}

// Set assigns a field by key and reports whether the key exists.
func (c *Config) Set(key string, v float64) bool {
	f := c.field(key)
	if f == nil {
		return false
	}
	*f = v
	return true
}

// OutOfRange lists the keys whose values sit outside the interactive ranges.
func (c *Config) OutOfRange() []string {
	var keys []string
	for _, r := range Ranges {
		if !r.Contains(c.Get(r.Key)) {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

func (c *Config) field(key string) *float64 {
	switch key {
	case KeyLength:
		return &c.Length
	case KeySpacing:
		return &c.Spacing
	case KeyTimeStep:
		return &c.TimeStep
	case KeyUpstreamDepth:
		return &c.Upstream.Depth
	case KeyUpstreamDischarge:
		return &c.Upstream.Discharge
	case KeyDownstreamDepth:
		return &c.Downstream.Depth
	case KeyDownstreamDischarge:
		return &c.Downstream.Discharge
	}
	return nil
}
