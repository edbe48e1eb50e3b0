// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: parse command: prints the syntax tree or AST
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/foundation/lang/ast"
	"github.com/msto63/cleanworld/foundation/lang/semantic"
)

var parseAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a program",
	Long: `Prints the concrete syntax tree, one production per line.

With --ast the tree is analyzed and the abstract syntax tree is printed
instead; semantic errors are listed on stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseAST, "ast", false, "print the abstract syntax tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return cwerr.Wrap(err, "failed to read program").WithCode(cwerr.CodeInvalidInput)
	}

	opts, err := engineOptions()
	if err != nil {
		return err
	}
	engine := lang.NewEngine(opts)

	tokens, _, err := engine.Tokenize(string(source))
	if err != nil {
		return err
	}
	root, err := engine.Parse(tokens)
	if err != nil {
		return err
	}

	if !parseAST {
		fmt.Print(root.String())
		return nil
	}

	prog, diags := engine.Analyze(root)
	fmt.Print(ast.Print(prog))
	for _, msg := range semantic.Strings(diags) {
		fmt.Fprintln(os.Stderr, paint(errorStyle, "error: ")+msg)
	}
	if len(diags) > 0 {
		return errReported
	}
	return nil
}
