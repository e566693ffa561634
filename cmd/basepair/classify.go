package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/basepair/cmd/util"
	"github.com/TuftsBCB/basepair/config"
	"github.com/TuftsBCB/basepair/pair"
)

var classifyCmd = &cobra.Command{
	Use:   "classify pdb-file residue1 residue2",
	Short: "Report the best and second best class of one residue pair",
	Long: `Report the best and second best class of one residue pair, and a
confidence in [0, 1] from the score gap between them. Residues are named
"<chain>.<number>", e.g., "A.12".`,
	Args: cobra.ExactArgs(3),
	Run:  classify,
}

func init() {
	flags := classifyCmd.Flags()
	util.FlagUse(flags, "templates", "settings")
	config.AddFlags(flags)
	flags.StringVar(&flagHBondsSuffix, "hbonds-suffix", flagHBondsSuffix,
		"The hydrogen bonds of 'x.pdb' are read from 'x' plus this suffix.")
	flags.BoolVar(&flagJSON, "json", flagJSON,
		"When set, the classification is written as JSON.")
}

func classify(cmd *cobra.Command, args []string) {
	pdbFile, id1, id2 := args[0], args[1], args[2]

	cfg := util.Config(cmd.Flags())
	analyzer, err := pair.NewAnalyzer(
		util.TemplateLibrary(util.FlagTemplates), cfg)
	util.Assert(err)

	s := util.StructureRead(pdbFile, util.HBondsPath(pdbFile, flagHBondsSuffix))
	c, err := analyzer.ClassifyPair(s, id1, id2)
	util.Assert(err, "Could not classify %s-%s", id1, id2)

	report := newClassificationReport(c)
	if flagJSON {
		util.WriteJSON(os.Stdout, report)
		return
	}
	report.writeText(os.Stdout)
}
