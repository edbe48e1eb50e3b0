// ============================================================================
// cleanworld - Cleaning Agent Language Toolchain
// ============================================================================
//
// Package:     cmd
// Description: tokens command: prints the token stream
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	cwerr "github.com/msto63/cleanworld/foundation/core/error"
	"github.com/msto63/cleanworld/foundation/lang"
	"github.com/msto63/cleanworld/foundation/lang/lexer"
	"github.com/msto63/cleanworld/foundation/lang/token"
)

var (
	tokensStream bool
	tokensDict   bool
	tokensAll    bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream and the symbol tables",
	Long: `Scans a program and prints its tokens, the symbol table and the
literal table. Use --stream or --dict to print only one of them.

The symbol table lists identifiers only; --all includes the reserved
words.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensStream, "stream", false, "print only the token stream")
	tokensCmd.Flags().BoolVar(&tokensDict, "dict", false, "print only the symbol and literal tables")
	tokensCmd.Flags().BoolVar(&tokensAll, "all", false, "include reserved words in the symbol table")
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return cwerr.Wrap(err, "failed to read program").WithCode(cwerr.CodeInvalidInput)
	}

	opts, err := engineOptions()
	if err != nil {
		return err
	}
	tokens, dict, lexErr := lang.NewEngine(opts).Tokenize(string(source))

	both := !tokensStream && !tokensDict
	if tokensStream || both {
		fmt.Println(paint(headerStyle, "Tokens"))
		writeTokenTable(tokens)
	}
	if tokensDict || both {
		fmt.Println()
		fmt.Println(paint(headerStyle, "Symbols"))
		writeSymbolTable(dict)
		fmt.Println()
		fmt.Println(paint(headerStyle, "Literals"))
		writeLiteralTable(dict)
	}
	return lexErr
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func writeTokenTable(tokens []token.Token) {
	table := newTable("LINE", "ID", "KIND", "LEXEME")
	for _, t := range tokens {
		table.Append([]string{
			strconv.Itoa(t.Line),
			strconv.Itoa(t.Kind.ID()),
			t.Kind.String(),
			t.Value,
		})
	}
	table.Render()
}

func writeSymbolTable(dict *lexer.Dictionary) {
	symbols := dict.Identifiers()
	if tokensAll {
		symbols = dict.Symbols()
	}
	table := newTable("LEXEME", "TOKEN", "KIND", "COUNT")
	for _, s := range symbols {
		table.Append([]string{s.Lexeme, s.Token.String(), string(s.Kind), strconv.Itoa(s.Count)})
	}
	table.Render()
}

func writeLiteralTable(dict *lexer.Dictionary) {
	table := newTable("VALUE", "COUNT")
	for _, l := range dict.Literals() {
		table.Append([]string{strconv.FormatInt(l.Value, 10), strconv.Itoa(l.Count)})
	}
	table.Render()
}
