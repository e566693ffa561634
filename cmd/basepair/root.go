package main

import (
	"github.com/spf13/cobra"

	"github.com/TuftsBCB/basepair/cmd/util"
)

var rootCmd = &cobra.Command{
	Use:   "basepair",
	Short: "Find and classify base pairs in nucleic acid structures",
	Long: `Find and classify base pairs in nucleic acid structures by superposing
residue pairs onto idealized Leontis-Westhof class templates and comparing
their hydrogen bonds with the expected patterns.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.FlagInit()
	},
}

func init() {
	util.FlagUse(rootCmd.PersistentFlags(), "cpu", "verbose")
	rootCmd.AddCommand(findCmd, classifyCmd, templatesCmd, docsCmd)
}
