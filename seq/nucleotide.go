package seq

import (
	"strings"
)

// NucleotideThreeToOne maps residue names found in structure files to the
// single letter code of their parent nucleotide. Both ribo- and deoxyribo-
// nucleotides are included, as are the chemically modified bases that show
// up most often in deposited RNA structures.
var NucleotideThreeToOne = map[string]byte{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "T": 'T',
	"DA": 'A', "DC": 'C', "DG": 'G', "DU": 'U', "DT": 'T',
	"ADE": 'A', "CYT": 'C', "GUA": 'G', "URA": 'U', "THY": 'T',
	"RA": 'A', "RC": 'C', "RG": 'G', "RU": 'U',

	// Modified adenosines.
	"1MA": 'A', "2MA": 'A', "6MA": 'A', "MA6": 'A', "A2M": 'A', "T6A": 'A',
	"MIA": 'A', "AET": 'A', "ATP": 'A', "ADP": 'A', "AMP": 'A',

	// Modified cytidines.
	"5MC": 'C', "OMC": 'C', "4OC": 'C', "CBR": 'C', "CCC": 'C', "DOC": 'C',
	"CSL": 'C', "5CM": 'C', "CTP": 'C',

	// Modified guanosines.
	"1MG": 'G', "2MG": 'G', "M2G": 'G', "7MG": 'G', "OMG": 'G', "YYG": 'G',
	"YG": 'G', "QUO": 'G', "GTP": 'G', "GDP": 'G', "GMP": 'G', "G7M": 'G',

	// Modified uridines.
	"PSU": 'U', "H2U": 'U', "5MU": 'U', "4SU": 'U', "OMU": 'U', "5BU": 'U',
	"UR3": 'U', "2MU": 'U', "UMP": 'U', "UTP": 'U', "S4U": 'U',
}

// oneLetterParent maps single letter codes that are not one of ACGU to the
// parent base used when comparing hydrogen bond patterns.
var oneLetterParent = map[byte]byte{
	'T': 'U', // thymine pairs like uracil
	'P': 'U', // pseudouridine
}

// ParentBase returns the single letter code of the parent nucleotide of the
// residue name given. The residue name is matched case insensitively after
// surrounding whitespace is removed.
func ParentBase(name string) (byte, bool) {
	b, ok := NucleotideThreeToOne[strings.ToUpper(strings.TrimSpace(name))]
	return b, ok
}

// NormalizeBase maps a single letter base to the alphabet {A, C, G, U}.
// Thymine becomes uracil. Unknown letters are returned upper cased.
func NormalizeBase(b byte) byte {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if parent, ok := oneLetterParent[b]; ok {
		return parent
	}
	return b
}

// NormalizePair normalizes every base of a pair sequence (usually two
// letters) with NormalizeBase.
func NormalizePair(pair string) string {
	bs := []byte(pair)
	for i := range bs {
		bs[i] = NormalizeBase(bs[i])
	}
	return string(bs)
}

// ReversePair returns the pair sequence with its residues swapped.
func ReversePair(pair string) string {
	bs := []byte(pair)
	for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
		bs[i], bs[j] = bs[j], bs[i]
	}
	return string(bs)
}

// canonicalPairs are the Watson-Crick pairs and the G-U wobble, in both
// orders, over the normalized alphabet.
var canonicalPairs = map[string]bool{
	"GC": true, "CG": true,
	"AU": true, "UA": true,
	"GU": true, "UG": true,
}

// IsCanonical returns true when the pair sequence, after normalization, is
// one of the Watson-Crick or wobble combinations.
func IsCanonical(pair string) bool {
	return canonicalPairs[NormalizePair(pair)]
}

// IsPurine returns true for adenine and guanine (after normalization).
func IsPurine(b byte) bool {
	b = NormalizeBase(b)
	return b == 'A' || b == 'G'
}

// IsPyrimidine returns true for cytosine, uracil and thymine.
func IsPyrimidine(b byte) bool {
	b = NormalizeBase(b)
	return b == 'C' || b == 'U'
}

// PurineRing lists the ring atoms of adenine and guanine in ring order.
var PurineRing = []string{"N9", "C8", "N7", "C5", "C6", "N1", "C2", "N3", "C4"}

// PyrimidineRing lists the ring atoms of cytosine, uracil and thymine.
var PyrimidineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6"}

// RingAtoms returns the names of the ring atoms for the base given. Nil is
// returned for letters that are not nucleotides.
func RingAtoms(b byte) []string {
	switch {
	case IsPurine(b):
		return PurineRing
	case IsPyrimidine(b):
		return PyrimidineRing
	}
	return nil
}

// GlycosidicNitrogen returns the name of the base atom bonded to C1': N9 for
// purines and N1 for pyrimidines.
func GlycosidicNitrogen(b byte) string {
	if IsPurine(b) {
		return "N9"
	}
	return "N1"
}
