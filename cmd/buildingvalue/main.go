package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/buildingvalue/internal/config"
	"github.com/ChicagoDave/buildingvalue/internal/logger"
	"github.com/ChicagoDave/buildingvalue/internal/server"
	"github.com/ChicagoDave/buildingvalue/pkg/structure"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once setup has run.
type app struct {
	cfg            *config.Config
	table          *structure.Table
	jsonOutput     bool
	structuresFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "buildingvalue",
		Short:        "Straight-line depreciation and rent estimates for a building and its land",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&a.structuresFile, "structures", "", "Structure table YAML (overrides STRUCTURES_FILE)")

	rootCmd.AddCommand(a.computeCmd())
	rootCmd.AddCommand(a.scheduleCmd())
	rootCmd.AddCommand(a.scenariosCmd())
	rootCmd.AddCommand(a.structuresCmd())
	rootCmd.AddCommand(a.serveCmd())

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	path := a.structuresFile
	if path == "" {
		path = cfg.StructuresFile
	}
	if path == "" {
		a.table = structure.Default()
		return nil
	}

	table, err := structure.Load(path)
	if err != nil {
		return fmt.Errorf("loading structure table: %w", err)
	}
	slog.Debug("Structure table loaded", "path", path, "rows", len(table.Defs()))
	a.table = table
	return nil
}

func (a *app) computeCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "compute [project-path]",
		Short: "Compute depreciation and rent for a project or for flag inputs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompute(cmd.OutOrStdout(), args, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *app) scheduleCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "schedule [project-path]",
		Short: "Print the year-by-year depreciation schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSchedule(cmd.OutOrStdout(), args, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *app) scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [project-path]",
		Short: "Compare the project's base inputs with its what-if scenarios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenarios(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) structuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structures",
		Short: "List structure types and their useful-life limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStructures(cmd.OutOrStdout())
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Port
			}
			srv := server.New(a.table, a.cfg.ScenarioWorkers, slog.Default())
			return srv.Start(port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port (overrides PORT)")
	return cmd
}
