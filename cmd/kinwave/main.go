package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/kinwave/internal/config"
	"github.com/san-kum/kinwave/internal/tui"
	"github.com/spf13/cobra"
)

var (
	length              float64
	spacing             float64
	timeStep            float64
	upstreamDepth       float64
	upstreamDischarge   float64
	downstreamDepth     float64
	downstreamDischarge float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Terminal plot size
	plotWidth  int
	plotHeight int
	// SVG image size
	svgWidth  int
	svgHeight int
	// Export target, stdout when empty
	outPath string
	// Bench settings
	iterations int
	ratio      float64

	logLevel string
	logger   = log.NewWithOptions(os.Stderr, log.Options{Prefix: "kinwave"})
)

// main runs the root command and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. With no subcommand the
// interactive parameter panel is started.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kinwave",
		Short:         "kinematic wave profile along a river reach",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	addParamFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute one profile and plot it",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
	addParamFlags(runCmd)
	runCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the profile as CSV",
		Args:  cobra.NoArgs,
		RunE:  exportCSV,
	}
	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the profile and metrics as JSON",
		Args:  cobra.NoArgs,
		RunE:  exportJSON,
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the depth profile as SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	for _, c := range []*cobra.Command{exportCSVCmd, exportJSONCmd, exportSVGCmd} {
		addParamFlags(c)
		c.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when empty)")
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the solver over several grids",
		Args:  cobra.NoArgs,
		RunE:  benchSolver,
	}
	benchCmd.Flags().IntVar(&iterations, "iterations", 1000, "solves per grid")
	benchCmd.Flags().Float64Var(&ratio, "ratio", 0.1, "time step to spacing ratio")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addParamFlags(tuiCmd)

	rootCmd.AddCommand(runCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, initCmd, benchCmd, tuiCmd)
	return rootCmd
}

func addParamFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&length, "length", config.DefaultLength, "length of river (m)")
	f.Float64Var(&spacing, "spacing", config.DefaultSpacing, "grid spacing (m)")
	f.Float64Var(&timeStep, "dt", config.DefaultTimeStep, "time step (s)")
	f.Float64Var(&upstreamDepth, "h0", config.DefaultUpstreamDepth, "water depth at upstream boundary (m)")
	f.Float64Var(&upstreamDischarge, "q0", config.DefaultUpstreamDischarge, "discharge at upstream boundary (m3/s)")
	f.Float64Var(&downstreamDepth, "h-down", config.DefaultDownstreamDepth, "water depth at downstream boundary (m)")
	f.Float64Var(&downstreamDischarge, "q-down", config.DefaultDownstreamDischarge, "discharge at downstream boundary (m3/s)")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}
