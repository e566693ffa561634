package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/TuftsBCB/basepair/hbond"
	"github.com/TuftsBCB/basepair/pair"
	"github.com/TuftsBCB/basepair/pdb"
	"github.com/TuftsBCB/basepair/template"
)

const idealDir = "../template/testdata/ideal"

func structures(t *testing.T, n int) []pair.Structure {
	entry, err := pdb.ReadPDB(idealDir + "/cWW_GC.pdb")
	if err != nil {
		t.Fatal(err)
	}
	bonds := make(hbond.List)
	for _, atoms := range [][2]string{{"N1", "N3"}, {"N2", "O2"}, {"N4", "O6"}} {
		bonds.Add("A.1", "B.1", hbond.HBond{
			Donor: atoms[0], Acceptor: atoms[1], Distance: 2.9,
		})
	}

	ss := make([]pair.Structure, n)
	for i := range ss {
		ss[i] = pair.Structure{
			Name:     fmt.Sprintf("gc%d", i),
			Residues: entry.Residues,
			HBonds:   bonds,
		}
	}
	return ss
}

func library(t *testing.T) *template.Library {
	lib, err := template.FromPDBDir(idealDir)
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func TestRun(t *testing.T) {
	ss := structures(t, 25)
	seen := make(map[int]bool)
	err := Run(context.Background(), 4, ss, library(t), pair.DefaultConfig(),
		func(out Output) {
			if seen[out.Index] {
				t.Errorf("structure %d visited twice", out.Index)
			}
			seen[out.Index] = true
			if out.Result.Name != ss[out.Index].Name {
				t.Errorf("result %s delivered for structure %s",
					out.Result.Name, ss[out.Index].Name)
			}
			if len(out.Result.Selected) != 1 {
				t.Errorf("%s: selected %d pairs, want 1",
					out.Result.Name, len(out.Result.Selected))
			}
		})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != len(ss) {
		t.Errorf("visited %d of %d structures", len(seen), len(ss))
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	visited := 0
	err := Run(ctx, 2, structures(t, 50), library(t), pair.DefaultConfig(),
		func(Output) { visited++ })
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if visited != 0 {
		t.Errorf("%d structures analyzed after cancellation", visited)
	}
}

func TestRunInvalid(t *testing.T) {
	err := Run(context.Background(), 2, nil, nil, pair.DefaultConfig(),
		func(Output) {})
	if err == nil {
		t.Errorf("run without templates succeeded")
	}
}

func TestPool(t *testing.T) {
	a, err := pair.NewAnalyzer(library(t), pair.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	p := NewPool(context.Background(), a, 0)

	ss := structures(t, 5)
	go func() {
		for _, s := range ss {
			if err := p.Enqueue(s); err != nil {
				t.Error(err)
			}
		}
		p.Done()
	}()

	count := 0
	for range p.Results() {
		count++
	}
	if count != len(ss) {
		t.Errorf("got %d results, want %d", count, len(ss))
	}
}
