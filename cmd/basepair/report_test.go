package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TuftsBCB/basepair/cmd/util"
	"github.com/TuftsBCB/basepair/pair"
	"github.com/TuftsBCB/basepair/template"
)

var idealDir = filepath.Join("..", "..", "template", "testdata", "ideal")

func analyzeIdeal(t *testing.T) pair.Result {
	lib, err := template.FromPDBDir(idealDir)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	hbPath := filepath.Join(dir, "gc.hbonds")
	bonds := "A.1 B.1 N1 N3 2.9\nA.1 B.1 N2 O2 2.8\nB.1 A.1 N4 O6 2.9\n"
	if err := os.WriteFile(hbPath, []byte(bonds), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := util.ReadStructure(filepath.Join(idealDir, "cWW_GC.pdb"), hbPath)
	if err != nil {
		t.Fatal(err)
	}
	res, err := pair.Analyze(s, lib, pair.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestStructureReport(t *testing.T) {
	sr := newStructureReport(analyzeIdeal(t), true)
	if len(sr.Pairs) != 1 {
		t.Fatalf("expected one pair, got %+v", sr.Pairs)
	}
	p := sr.Pairs[0]
	if !p.Selected || p.Best.Class != "cWW" || p.Best.RMSD == nil {
		t.Errorf("unexpected report %+v", p)
	}

	var buf bytes.Buffer
	sr.writeText(&buf)
	fields := strings.Split(strings.TrimSpace(buf.String()), "\t")
	if len(fields) != 10 || fields[0] != "cWW_GC.pdb" || fields[4] != "cWW" {
		t.Errorf("unexpected text report %q", buf.String())
	}
}

func TestClassificationReportJSON(t *testing.T) {
	lib, err := template.FromPDBDir(idealDir)
	if err != nil {
		t.Fatal(err)
	}
	a, err := pair.NewAnalyzer(lib, pair.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s, err := util.ReadStructure(filepath.Join(idealDir, "cWW_GC.pdb"),
		filepath.Join(t.TempDir(), "none.hbonds"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.ClassifyPair(s, "A.1", "B.1")
	if err != nil {
		t.Fatal(err)
	}

	// Classes without a template have an infinite RMSD, which must not
	// break encoding.
	b, err := json.Marshal(newClassificationReport(c))
	if err != nil {
		t.Fatal(err)
	}
	var decoded classificationReport
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.SecondBest == nil || decoded.SecondBest.RMSD != nil {
		t.Errorf("runner-up %+v should have no RMSD", decoded.SecondBest)
	}
}
