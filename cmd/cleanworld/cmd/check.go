// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: check command: static analysis without running
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/lang"
)

var checkOutput string

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report errors and world warnings without running",
	Long: `Tokenizes, parses and analyzes each file and lints its world.

Exits with status 1 when any file has lexical, syntax or semantic errors.
World warnings (cells outside the grid, dirt under obstacles) never fail
the check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "output format: text, json or yaml (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	format := checkOutput
	if format == "" {
		format = appConfig.Output.Format
	}
	if err := validFormat(format); err != nil {
		return err
	}

	engine := lang.NewEngine(opts)
	failed := false
	var results []*lang.Result

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			return cwerr.Wrap(err, "failed to read program").WithCode(cwerr.CodeInvalidInput)
		}
		_, res, _ := engine.Compile(filepath.Base(path), string(source))
		if res.Status.Failed() {
			failed = true
		}
		results = append(results, res)

		if format != "text" {
			continue
		}
		writeProblems(os.Stdout, res)
		if res.Status.Failed() {
			fmt.Printf("%s %s\n", paint(errorStyle, "FAIL"), path)
		} else {
			fmt.Printf("%s %s\n", paint(successStyle, "ok  "), path)
		}
	}

	if format != "text" {
		if err := encode(os.Stdout, format, results); err != nil {
			return err
		}
	}
	if failed {
		return errReported
	}
	return nil
}
