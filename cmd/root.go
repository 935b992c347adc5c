package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorebar/internal/config"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile       string
	envFile          string
	bendPolicy       string
	cantileverOffset float64
	logLevel         string
	logFormat        string

	// settings is loaded before every command runs
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gorebar",
	Short: "Rebar cutting length and weight calculator",
	Long: `gorebar - Go Rebar Cutting Schedule

A CLI tool that computes reinforcement bar cutting lengths, bend
allowances, stirrup counts and steel weights for reinforced concrete
beams and one-way slabs, then groups the results into a cutting
schedule.

This tool helps site and detailing engineers prepare:
  - Top, bottom and cantilever beam bars
  - 2, 4 and 6 legged stirrups (uniform or L/4 & L/2 spacing)
  - One-way slab main and distribution bars
  - Schedules exported to PDF, CSV and XLSX

Lengths are in mm, weights in kg (d²/162 kg per metre).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gorebar v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Rebar Cutting Schedule                               ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Cutting lengths, bend lengths and steel weights for")
		fmt.Fprintln(out, "  reinforced concrete beams, stirrups and one-way slabs.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Top and bottom bars with 0, 1 or 2 end supports")
		fmt.Fprintln(out, "    • Cantilever top bars (proportional or dead-end)")
		fmt.Fprintln(out, "    • 2, 4 and 6 legged stirrups")
		fmt.Fprintln(out, "    • One-way slab bars")
		fmt.Fprintln(out, "    • Batch job files and an interactive session")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gorebar --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file read for GOREBAR_* settings")
	pf.StringVar(&bendPolicy, "bend-policy", "", "Bend length policy: depth-limited or development")
	pf.Float64Var(&cantileverOffset, "cantilever-offset", detailing.DefaultCantileverOffset, "Offset added to proportional cantilever bars (mm)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

// loadSettings applies config file, environment and flags, in that order
func loadSettings(cmd *cobra.Command) error {
	cfg, err := config.Load(configFile, envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("bend-policy") {
		p, err := detailing.ParseBendLengthPolicy(bendPolicy)
		if err != nil {
			return err
		}
		cfg.Policy.BendLength = p
	}
	if flags.Changed("cantilever-offset") {
		cfg.Policy.CantileverOffset = cantileverOffset
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Policy.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format, os.Stderr)
	logging.Debug("settings loaded",
		"config", configFile,
		"bend_policy", cfg.Policy.BendLength.String(),
		"cantilever_offset", cfg.Policy.CantileverOffset,
		"dead_end_allowance", cfg.Policy.DeadEndAllowance,
		"stirrup_cover", cfg.Policy.StirrupCoverDeduction,
	)

	settings = cfg
	return nil
}
