package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"veil/internal/lexer"
	"veil/internal/source"
	"veil/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize a JavaScript source file",
	Long:  `Tokenize breaks down a JavaScript source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type tokenDump struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	file, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	lx := lexer.New(file, lexer.Options{})
	var dumps []tokenDump
	for {
		tok := lx.Next()
		pos := file.Pos(tok.Span.Start)
		dumps = append(dumps, tokenDump{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Line:  pos.Line,
			Col:   pos.Col,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	switch format {
	case "pretty":
		for _, d := range dumps {
			if d.Text != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%q\n", d.Line, d.Col, d.Kind, d.Text)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", d.Line, d.Col, d.Kind)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dumps)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
