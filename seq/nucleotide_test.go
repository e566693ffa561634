package seq

import (
	"testing"
)

func TestParentBase(t *testing.T) {
	tests := []struct {
		name string
		base byte
		ok   bool
	}{
		{"G", 'G', true},
		{" DA", 'A', true},
		{"psu", 'U', true},
		{"5MC", 'C', true},
		{"DT", 'T', true},
		{"ALA", 0, false},
		{"HOH", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		base, ok := ParentBase(tt.name)
		if ok != tt.ok || base != tt.base {
			t.Errorf("ParentBase(%q) = (%c, %v), want (%c, %v)",
				tt.name, base, ok, tt.base, tt.ok)
		}
	}
}

func TestNormalizePair(t *testing.T) {
	tests := map[string]string{
		"GC": "GC",
		"at": "AU",
		"TP": "UU",
		"gN": "GN",
	}
	for in, want := range tests {
		if got := NormalizePair(in); got != want {
			t.Errorf("NormalizePair(%s) = %s, want %s", in, got, want)
		}
	}
	if got := ReversePair("GA"); got != "AG" {
		t.Errorf("ReversePair(GA) = %s", got)
	}
}

func TestIsCanonical(t *testing.T) {
	for _, pair := range []string{"GC", "CG", "AU", "UA", "GU", "UG", "AT", "tg"} {
		if !IsCanonical(pair) {
			t.Errorf("%s is canonical", pair)
		}
	}
	for _, pair := range []string{"GA", "AA", "CU", "GG", "AC", "G"} {
		if IsCanonical(pair) {
			t.Errorf("%s is not canonical", pair)
		}
	}
}

func TestRingAtoms(t *testing.T) {
	if n := len(RingAtoms('G')); n != 9 {
		t.Errorf("purine ring has %d atoms", n)
	}
	if n := len(RingAtoms('T')); n != 6 {
		t.Errorf("pyrimidine ring has %d atoms", n)
	}
	if RingAtoms('X') != nil {
		t.Errorf("unknown base has ring atoms")
	}
	if GlycosidicNitrogen('a') != "N9" || GlycosidicNitrogen('C') != "N1" {
		t.Errorf("wrong glycosidic nitrogens")
	}
}
