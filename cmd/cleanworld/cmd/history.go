// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: history commands for recorded runs
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/internal/store"
)

var (
	historyName   string
	historyStatus string
	historySince  time.Duration
	historyLimit  int
	historyOutput string
	pruneOlder    time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long: `Lists runs stored with 'cleanworld run --record' or with [store]
enabled in the config, newest first.

Examples:
  cleanworld history
  cleanworld history --status runtime_error --limit 5
  cleanworld history show 3f2a9c1d
  cleanworld history prune --older-than 168h`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention period",
	RunE:  runHistoryPrune,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count recorded runs by status",
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd, historyDeleteCmd, historyPruneCmd, historyStatsCmd)

	historyCmd.Flags().StringVar(&historyName, "name", "", "only runs of this file name")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "only runs with this status")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only runs started within this duration")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs (0 = all)")
	historyShowCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "output format: text, json or yaml (default from config)")
	historyPruneCmd.Flags().DurationVar(&pruneOlder, "older-than", 0, "age limit (default: store.retention from config)")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	filter := store.RunFilter{
		Name:   historyName,
		Status: lang.Status(historyStatus),
		Limit:  historyLimit,
	}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}

	runs, err := st.List(cmd.Context(), filter)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	table := newTable("ID", "STARTED", "NAME", "AGENT", "STATUS", "CLEANED", "OUTPUTS", "STEPS", "MS")
	for _, r := range runs {
		table.Append([]string{
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Name,
			r.Program,
			string(r.Status),
			strconv.Itoa(r.Cleaned),
			strconv.Itoa(r.Outputs),
			strconv.Itoa(r.Steps),
			strconv.FormatInt(r.DurationMS, 10),
		})
	}
	table.Render()
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	format := historyOutput
	if format == "" {
		format = appConfig.Output.Format
	}
	if err := validFormat(format); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if format != "text" {
		return encode(os.Stdout, format, run)
	}

	fmt.Println(paint(headerStyle, run.Name) + paint(mutedStyle, "  "+run.ID))
	fmt.Println(paint(mutedStyle, fmt.Sprintf("started %s, %d ms, source sha256 %s",
		run.StartedAt.Local().Format(time.RFC3339), run.DurationMS, run.SourceSHA)))
	fmt.Println()
	return writeResult(os.Stdout, "text", run.Result)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := st.Delete(cmd.Context(), run.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted run %s\n", run.ID)
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	age := pruneOlder
	if age == 0 {
		age = appConfig.Store.Retention.Duration
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Prune(cmd.Context(), age)
	if err != nil {
		return err
	}
	fmt.Printf("Pruned %d run(s) older than %s\n", n, age)
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats(cmd.Context())
	if err != nil {
		return err
	}

	table := newTable("STATUS", "RUNS")
	for _, s := range []lang.Status{
		lang.StatusOK, lang.StatusStopped, lang.StatusLexicalError,
		lang.StatusSyntaxError, lang.StatusSemanticError, lang.StatusRuntimeError,
	} {
		if n, ok := stats[string(s)]; ok {
			table.Append([]string{string(s), strconv.FormatInt(n, 10)})
		}
	}
	table.SetFooter([]string{"total", strconv.FormatInt(stats["total"], 10)})
	table.Render()
	return nil
}
