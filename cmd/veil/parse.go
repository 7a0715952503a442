package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"veil/internal/codegen"
	"veil/internal/parser"
	"veil/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Parse a JavaScript source file",
	Long: `Parse checks that a JavaScript source file is accepted by the pipeline
frontend. With --emit the normalized program is printed back.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("emit", false, "print the regenerated program")
	parseCmd.Flags().Bool("compact", false, "use compact output with --emit")
}

func runParse(cmd *cobra.Command, args []string) error {
	file, err := source.Load(args[0])
	if err != nil {
		return err
	}

	prog, err := parser.Parse(file, parser.Options{AttachComments: true})
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	emit, _ := cmd.Flags().GetBool("emit")
	if !emit {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d top-level statements\n", file.Path, len(prog.Body))
		return nil
	}

	compact, _ := cmd.Flags().GetBool("compact")
	out, err := codegen.Generate(prog, file, codegen.Options{Compact: compact})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Code)
	return nil
}
