// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: view command: opens the replay viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/internal/tui/replay"
)

var (
	viewRunID string
	viewSpeed time.Duration
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Replay a run in the terminal",
	Long: `Steps through the actions of a run while drawing the grid.

Either runs the given file first or replays a recorded run (--run, an id or
unique id prefix from 'cleanworld history').

Keys:
  ←/→  h/l   previous / next action
  Space      play / pause
  g / G      first / last action
  + / -      faster / slower
  q          quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewRunID, "run", "", "replay a recorded run")
	viewCmd.Flags().DurationVar(&viewSpeed, "speed", 250*time.Millisecond, "autoplay delay between actions")
}

func runView(cmd *cobra.Command, args []string) error {
	var res *lang.Result
	var err error

	switch {
	case viewRunID != "":
		res, err = recordedResult(cmd.Context(), viewRunID)
	case len(args) == 1:
		res, err = freshResult(args[0])
	default:
		return cwerr.New("give a program file or --run <id>").WithCode(cwerr.CodeInvalidInput)
	}
	if err != nil {
		return err
	}
	if res.Initial == nil {
		writeProblems(os.Stderr, res)
		return errReported
	}

	return replay.Run(replay.Config{
		Title:   res.Name + "  " + string(res.Status) + "  run " + shortID(res.RunID),
		Initial: *res.Initial,
		Events:  res.Events,
		Speed:   viewSpeed,
	})
}

func recordedResult(ctx context.Context, id string) (*lang.Result, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	run, err := st.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return run.Result, nil
}

// freshResult runs the file. Runtime failures still replay up to the
// failing action.
func freshResult(path string) (*lang.Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, cwerr.Wrap(err, "failed to read program").WithCode(cwerr.CodeInvalidInput)
	}
	opts, err := engineOptions()
	if err != nil {
		return nil, err
	}

	res, runErr := lang.NewEngine(opts).Run(context.Background(), filepath.Base(path), string(source))
	if runErr != nil && res.Final == nil {
		writeProblems(os.Stderr, res)
		return nil, errReported
	}
	return res, nil
}
