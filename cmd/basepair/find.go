package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/basepair/batch"
	"github.com/TuftsBCB/basepair/cmd/util"
	"github.com/TuftsBCB/basepair/config"
	"github.com/TuftsBCB/basepair/pair"
)

var (
	flagHBondsSuffix = ".hbonds"
	flagJSON         = false
	flagAll          = false
)

var findCmd = &cobra.Command{
	Use:   "find (pdb-file | pdb-dir) ...",
	Short: "Find the base pairs of one or more structures",
	Long: `Find the base pairs of one or more structures. Every candidate pair of
residues is scored against the templates of each class, and a set of valid
pairs in which no residue pairs twice is selected greedily by score.

Output is one tab separated line per selected pair, or JSON with --json:

	structure residue1 residue2 sequence class score rmsd hbonds angle selected`,
	Args: cobra.MinimumNArgs(1),
	Run:  find,
}

func init() {
	flags := findCmd.Flags()
	util.FlagUse(flags, "templates", "settings")
	config.AddFlags(flags)
	flags.StringVar(&flagHBondsSuffix, "hbonds-suffix", flagHBondsSuffix,
		"The hydrogen bonds of 'x.pdb' are read from 'x' plus this suffix.")
	flags.BoolVar(&flagJSON, "json", flagJSON,
		"When set, results are written as JSON.")
	flags.BoolVar(&flagAll, "all", flagAll,
		"When set, every candidate is reported instead of only the\n"+
			"selected pairs.")
}

func find(cmd *cobra.Command, args []string) {
	cfg := util.Config(cmd.Flags())
	lib := util.TemplateLibrary(util.FlagTemplates)
	util.Verbosef("Using template library %s.\n", lib)

	analyzer, err := pair.NewAnalyzer(lib, cfg)
	util.Assert(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pdbFiles := util.PDBFiles(args)
	pool := batch.NewPool(ctx, analyzer, util.FlagCpu)
	progress := util.NewProgress(len(pdbFiles))

	results := make(map[int]pair.Result, len(pdbFiles))
	collected := make(chan struct{})
	go func() {
		for out := range pool.Results() {
			results[out.Index] = out.Result
			progress.JobDone(nil)
		}
		collected <- struct{}{}
	}()

	enqueued := 0
	for _, pdbFile := range pdbFiles {
		s, err := util.ReadStructure(pdbFile,
			util.HBondsPath(pdbFile, flagHBondsSuffix))
		if err != nil {
			progress.JobDone(err)
			continue
		}
		if err := pool.Enqueue(s); err != nil {
			break
		}
		enqueued++
	}
	pool.Done()
	<-collected
	progress.Close()
	util.Assert(ctx.Err(), "Interrupted")

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	reports := make([]structureReport, enqueued)
	for i := range reports {
		reports[i] = newStructureReport(results[i], flagAll)
	}
	if flagJSON {
		util.WriteJSON(w, reports)
		return
	}
	for _, r := range reports {
		r.writeText(w)
	}
}
