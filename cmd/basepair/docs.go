package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/TuftsBCB/basepair/cmd/util"
)

var docsCmd = &cobra.Command{
	Use:    "docs output-dir",
	Short:  "Write Markdown documentation for every command",
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		util.Assert(os.MkdirAll(args[0], 0755),
			"Could not create '%s'", args[0])
		rootCmd.DisableAutoGenTag = true
		util.Assert(doc.GenMarkdownTree(rootCmd, args[0]),
			"Could not write documentation")
	},
}
