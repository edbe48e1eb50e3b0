// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: run command with recording and watch mode
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	cwlog "github.com/msto63/cleanworld/foundation/core/log"
	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/foundation/lang/interp"
	"github.com/msto63/cleanworld/internal/store"
)

var (
	runOutput   string
	runRecord   bool
	runWatch    bool
	runForce    bool
	runMaxSteps int
	runScoping  string
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a program",
	Long: `Runs a program through the whole pipeline and prints the action log.

Programs with syntax or semantic errors are not executed unless --force is
given, in which case the best-effort tree runs anyway.

Examples:
  cleanworld run maze.cw
  cleanworld run maze.cw --output json
  cleanworld run maze.cw --record --max-steps 10000
  cleanworld run maze.cw --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output format: text, json or yaml (default from config)")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "store the run in the history database")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "run again whenever the file changes")
	runCmd.Flags().BoolVar(&runForce, "force", false, "execute even when the analyzer reported errors")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", 0, "abort after this many steps (0 = unlimited)")
	runCmd.Flags().StringVar(&runScoping, "scoping", "", "variable scoping: lexical or dynamic")
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-steps") {
		opts.MaxSteps = runMaxSteps
	}
	if runScoping != "" {
		if opts.Scoping, err = interp.ParseScoping(runScoping); err != nil {
			return cwerr.Wrap(err, "invalid --scoping").WithCode(cwerr.CodeInvalidInput)
		}
	}
	if runForce {
		opts.RunWithDiagnostics = true
	}

	format := runOutput
	if format == "" {
		format = appConfig.Output.Format
	}
	if err := validFormat(format); err != nil {
		return err
	}

	var st store.RunStore
	if runRecord || appConfig.Store.Enabled {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		st = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{
		engine: lang.NewEngine(opts),
		store:  st,
		format: format,
		path:   args[0],
	}
	if runWatch {
		return r.watch(ctx)
	}
	return r.once(ctx)
}

type runner struct {
	engine *lang.Engine
	store  store.RunStore
	format string
	path   string
}

// once runs the file a single time. A failed run has already been printed,
// so it yields errReported.
func (r *runner) once(ctx context.Context) error {
	source, err := os.ReadFile(r.path)
	if err != nil {
		return cwerr.Wrap(err, "failed to read program").WithCode(cwerr.CodeInvalidInput)
	}

	res, runErr := r.engine.Run(ctx, filepath.Base(r.path), string(source))
	if err := writeResult(os.Stdout, r.format, res); err != nil {
		return err
	}

	if r.store != nil {
		if err := r.store.Record(ctx, res, string(source)); err != nil {
			return err
		}
		logger.Debug("Run recorded", cwlog.Fields{"run_id": res.RunID})
	}

	if runErr != nil {
		return errReported
	}
	return nil
}

const watchDebounce = 200 * time.Millisecond

// watch runs the file now and again after every save until ctx ends.
// The directory is watched rather than the file so that editors which
// replace the file on save keep triggering runs.
func (r *runner) watch(ctx context.Context) error {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return cwerr.Wrap(err, "failed to resolve path").WithCode(cwerr.CodeInvalidInput)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return cwerr.Wrap(err, "failed to create watcher").WithCode(cwerr.CodeInternal)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return cwerr.Wrap(err, "failed to watch directory").WithCode(cwerr.CodeInternal)
	}

	rerun := func() {
		if err := r.once(ctx); err != nil && err != errReported {
			printError(err)
		}
		os.Stderr.WriteString(paint(mutedStyle, "watching "+r.path+" (Ctrl+C to stop)") + "\n")
	}
	rerun()

	changes := make(chan string)
	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				select {
				case changes <- event.Op.String():
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error", cwlog.Fields{"error": err.Error()})
			}
		}
	}()

	debounce(ctx, changes, watchDebounce, func(op string) {
		logger.Debug("Program changed", cwlog.Fields{"file": abs, "op": op})
		rerun()
	})
	logger.Debug("Stopping watcher")
	return nil
}

// debounce calls fire with the latest value received on in once wait has
// passed without a newer one, so a burst of saves gives one call for the last.
// A value still pending when in closes is fired; one pending when ctx ends is dropped.
func debounce(ctx context.Context, in <-chan string, wait time.Duration, fire func(string)) {
	timer := time.NewTimer(wait)
	timer.Stop()
	defer timer.Stop()

	var pending string
	armed := false
	for {
		select {
		case <-ctx.Done():
			return

		case v, ok := <-in:
			if !ok {
				if armed {
					fire(pending)
				}
				return
			}
			pending, armed = v, true
			timer.Reset(wait)

		case <-timer.C:
			armed = false
			fire(pending)
		}
	}
}
