// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration and logger setup
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/internal/store"
	"github.com/msto63/cleanworld/pkg/core/config"
	"github.com/msto63/cleanworld/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    *cwlog.Logger
)

// errReported is returned by commands that already printed their failure
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   "cleanworld",
	Short: "Cleaning-agent language toolchain",
	Long: `cleanworld runs programs written in the cleaning-agent language.

A program declares a grid world (size, entry, exit, dirt, obstacles),
optional functions, and one agent whose statements move the agent
around the grid and clean it.

Commands:
  run      execute a program
  check    report syntax and semantic errors without running
  parse    print the syntax tree
  tokens   print the token stream and symbol tables
  view     replay a run in the terminal
  history  inspect recorded runs`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: $"+config.EnvConfig+" or ./cleanworld.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err = logging.NewLogger(logging.FromConfig("cleanworld", appConfig.Log))
	if err != nil {
		return err
	}
	if verbose {
		logger.SetLevel(cwlog.LevelDebug)
	}
	cwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", cwlog.Fields{
		"config":    cfgFile,
		"scoping":   appConfig.Interpreter.Scoping,
		"store":     appConfig.Store.Enabled,
		"max_steps": appConfig.Interpreter.MaxSteps,
	})
	return nil
}

// engineOptions builds engine options from the [interpreter] section
func engineOptions() (lang.Options, error) {
	scoping, err := interp.ParseScoping(appConfig.Interpreter.Scoping)
	if err != nil {
		return lang.Options{}, err
	}
	return lang.Options{
		Logger:             logger,
		MaxSteps:           appConfig.Interpreter.MaxSteps,
		Scoping:            scoping,
		RunWithDiagnostics: appConfig.Interpreter.RunWithDiagnostics,
	}, nil
}

func openStore() (*store.SQLiteRunStore, error) {
	cfg := store.DefaultRunConfig()
	if appConfig.Store.Path != "" {
		cfg.Path = appConfig.Store.Path
	}
	return store.NewSQLiteRunStore(cfg)
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error:")+" "+err.Error())
}
