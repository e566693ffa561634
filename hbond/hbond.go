/*
Package hbond compares observed hydrogen bonds between two nucleotides with
the bonds expected for a given pair sequence and Leontis-Westhof class.

Hydrogen bonds are not detected here. Callers supply them, typically from an
external detector, as a list of HBond values per residue pair.
*/
package hbond

import (
	"fmt"
	"strings"
)

// Context says which parts of the two nucleotides a hydrogen bond connects.
type Context int

const (
	// BaseBase is a bond between atoms of the two bases.
	BaseBase Context = iota

	// Other is any other bond (base-backbone, backbone-backbone, ...).
	Other
)

// ParseContext parses "base_base" (or "base-base") and "other".
func ParseContext(s string) (Context, error) {
	switch strings.ToLower(strings.Replace(s, "-", "_", -1)) {
	case "base_base":
		return BaseBase, nil
	case "other":
		return Other, nil
	}
	return Other, fmt.Errorf("Unknown hydrogen bond context '%s'.", s)
}

func (c Context) String() string {
	switch c {
	case BaseBase:
		return "base_base"
	case Other:
		return "other"
	}
	return fmt.Sprintf("Context(%d)", int(c))
}

// HBond is an observed hydrogen bond between two residues. The donor and
// acceptor labels come from the detector and are not always right, so they
// are matched in both directions.
type HBond struct {
	Donor    string
	Acceptor string
	Distance float64
	Context  Context
}

func (hb HBond) String() string {
	return fmt.Sprintf("%s-%s (%0.2f, %s)",
		hb.Donor, hb.Acceptor, hb.Distance, hb.Context)
}

// Matches returns true if the bond connects the two atoms given, in either
// direction.
func (hb HBond) Matches(donor, acceptor string) bool {
	return (hb.Donor == donor && hb.Acceptor == acceptor) ||
		(hb.Donor == acceptor && hb.Acceptor == donor)
}
