package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/kinwave/internal/config"
	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addParamFlags(cmd)
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCmd(t))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestResolveConfigPresetThenFlags(t *testing.T) {
	cmd := newTestCmd(t)
	if err := cmd.Flags().Set("preset", "gentle"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("q0", "25"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.TimeStep != 10 {
		t.Errorf("expected preset time step 10, got %v", cfg.TimeStep)
	}
	if cfg.Upstream.Discharge != 25 {
		t.Errorf("expected flag to override preset, got %v", cfg.Upstream.Discharge)
	}
}

func TestResolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reach.yaml")
	file := config.DefaultConfig()
	file.Length = 2000
	file.Spacing = 50
	if err := config.Save(path, file); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCmd(t)
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("spacing", "20"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Length != 2000 {
		t.Errorf("expected length from file, got %v", cfg.Length)
	}
	if cfg.Spacing != 20 {
		t.Errorf("expected spacing from flag, got %v", cfg.Spacing)
	}
}

func TestResolveConfigPresetThenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("length: 3000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCmd(t)
	if err := cmd.Flags().Set("preset", "gentle"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Length != 3000 {
		t.Errorf("expected length from file, got %v", cfg.Length)
	}
	if cfg.TimeStep != 10 {
		t.Errorf("expected preset time step 10 to survive the file, got %v", cfg.TimeStep)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	cmd := newTestCmd(t)
	if err := cmd.Flags().Set("preset", "nonexistent"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}
