package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	editor "github.com/ionut-t/richedit/core"
	"github.com/ionut-t/richedit/document"
)

func parseFile(path string) (*document.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return document.Parse(editor.SanitizeHTML(string(content))), nil
}

// newStatsCommand creates the stats command
func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print block, word and character counts of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			text := doc.GetPlainText()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Blocks:     %s\n", humanize.Comma(int64(doc.BlockCount())))
			fmt.Fprintf(out, "Words:      %s\n", humanize.Comma(int64(editor.CountWords(text))))
			fmt.Fprintf(out, "Characters: %s\n", humanize.Comma(int64(editor.CountCharacters(text))))
			return nil
		},
	}
}

// newStripCommand creates the strip command
func newStripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <file>",
		Short: "Print the plain text of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.GetPlainText())
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of richedit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "richedit version %s\n", version)
		},
	}
}
