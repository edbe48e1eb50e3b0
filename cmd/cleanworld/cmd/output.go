// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: Text, JSON and YAML rendering of run results
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/lang"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
)

// paint applies style unless colors are turned off in [output]
func paint(style lipgloss.Style, s string) string {
	if appConfig != nil && !appConfig.Output.Color {
		return s
	}
	return style.Render(s)
}

func validFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return cwerr.Newf("unknown output format %q (expected text, json or yaml)", format).
		WithCode(cwerr.CodeInvalidInput)
}

// encode writes v as JSON or YAML
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return validFormat(format)
}

// writeResult renders a run or check result in the requested format
func writeResult(w io.Writer, format string, res *lang.Result) error {
	if format != "text" {
		return encode(w, format, res)
	}

	for _, line := range res.Outputs {
		fmt.Fprintln(w, line)
	}
	writeProblems(w, res)
	fmt.Fprintln(w, summary(res))
	return nil
}

func writeProblems(w io.Writer, res *lang.Result) {
	for _, warning := range res.Warnings {
		fmt.Fprintln(w, paint(warnStyle, "warning: ")+warning)
	}
	for _, msg := range res.Errors() {
		fmt.Fprintln(w, paint(errorStyle, "error: ")+msg)
	}
}

func summary(res *lang.Result) string {
	var parts []string
	if res.Program != "" {
		parts = append(parts, "agent "+res.Program)
	}
	if res.Final != nil {
		parts = append(parts,
			fmt.Sprintf("cleaned %d", res.Final.Cleaned),
			fmt.Sprintf("%d outputs", len(res.Outputs)),
			fmt.Sprintf("%d steps", res.Steps),
		)
	}
	parts = append(parts, "run "+shortID(res.RunID))

	status := string(res.Status)
	if res.Status.Failed() {
		status = paint(errorStyle, status)
	} else {
		status = paint(successStyle, status)
	}
	return status + paint(mutedStyle, " ("+strings.Join(parts, ", ")+")")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
