package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/kinwave/internal/config"
	"github.com/san-kum/kinwave/internal/export"
	"github.com/san-kum/kinwave/internal/metrics"
	"github.com/san-kum/kinwave/internal/viz"
	"github.com/san-kum/kinwave/internal/wave"
	"github.com/spf13/cobra"
)

func solve(cmd *cobra.Command) (wave.Params, *wave.Profile, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return wave.Params{}, nil, err
	}
	params := cfg.Params()

	start := time.Now()
	prof, err := wave.Solve(params)
	if err != nil {
		return params, nil, fmt.Errorf("solve: %w", err)
	}
	logger.Debug("solved", "cells", prof.Len(), "elapsed", time.Since(start))
	return params, prof, nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	params, prof, err := solve(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	values := metrics.Evaluate(prof, metrics.Default()...)
	fmt.Fprintln(out, viz.Summary(params, prof, values))
	fmt.Fprintln(out)
	fmt.Fprint(out, viz.Plot(prof, viz.PlotOptions{Width: plotWidth, Height: plotHeight}))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, prof, err := solve(cmd)
	if err != nil {
		return err
	}
	return withOutput(cmd.OutOrStdout(), outPath, func(w io.Writer) error {
		return export.WriteCSV(w, prof)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	params, prof, err := solve(cmd)
	if err != nil {
		return err
	}
	values := metrics.Evaluate(prof, metrics.Default()...)
	return withOutput(cmd.OutOrStdout(), outPath, func(w io.Writer) error {
		return export.WriteJSON(w, params, prof, values)
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, prof, err := solve(cmd)
	if err != nil {
		return err
	}
	return withOutput(cmd.OutOrStdout(), outPath, func(w io.Writer) error {
		return export.WriteSVG(w, prof, svgWidth, svgHeight)
	})
}

// withOutput runs fn against the file at path, or stdout when path is empty.
// A file left incomplete by a failed write is removed.
func withOutput(stdout io.Writer, path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	logger.Info("wrote profile", "path", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLENGTH\tSPACING\tDT\tH0\tQ0\tH_DOWN\tQ_DOWN")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			name,
			p.Length,
			p.Spacing,
			p.TimeStep,
			p.Upstream.Depth,
			p.Upstream.Discharge,
			p.Downstream.Depth,
			p.Downstream.Discharge,
		)
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	logger.Info("wrote config", "path", args[0])
	return nil
}

func benchSolver(cmd *cobra.Command, args []string) error {
	if iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	lengths := []float64{1000, 5000, 10000}
	spacings := []float64{10, 100, 500}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking solver (%d solves per grid, dt/dx=%g)\n\n", iterations, ratio)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LENGTH\tSPACING\tCELLS\tTIME/SOLVE\tCELLS/SEC")

	for _, l := range lengths {
		for _, dx := range spacings {
			p := wave.Params{
				Length:              l,
				Spacing:             dx,
				TimeStep:            ratio * dx,
				UpstreamDepth:       config.DefaultUpstreamDepth,
				UpstreamDischarge:   config.DefaultUpstreamDischarge,
				DownstreamDepth:     config.DefaultDownstreamDepth,
				DownstreamDischarge: config.DefaultDownstreamDischarge,
			}
			cells := wave.CellCount(l, dx)

			start := time.Now()
			var err error
			for i := 0; i < iterations && err == nil; i++ {
				_, err = wave.Solve(p)
			}
			elapsed := time.Since(start)

			if err != nil {
				fmt.Fprintf(w, "%.0f\t%.0f\t%d\terror: %v\t-\n", l, dx, cells, err)
				continue
			}

			perSolve := elapsed / time.Duration(iterations)
			cellsPerSec := float64(cells*iterations) / elapsed.Seconds()
			fmt.Fprintf(w, "%.0f\t%.0f\t%d\t%v\t%.0f\n", l, dx, cells, perSolve, cellsPerSec)
		}
	}

	return w.Flush()
}
