package main

import (
	"github.com/spf13/cobra"

	"github.com/TuftsBCB/basepair/cmd/util"
	"github.com/TuftsBCB/basepair/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates pdb-dir library-file",
	Short: "Build a template library from idealized base pair PDB files",
	Long: `Build a template library from a directory of idealized base pair PDB
files. Each file must be named "<class>_<name>.pdb" (e.g., "cWW_GC.pdb") and
hold exactly two nucleotides. The library is written in a binary format that
'find' and 'classify' read with --templates.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		util.AssertIsDir(args[0])
		lib, err := template.FromPDBDir(args[0])
		util.Assert(err, "Could not build templates from '%s'", args[0])
		util.TemplateLibraryWrite(args[1], lib)
		util.Verbosef("%s\n", lib)
	},
}
