package hbond

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ResiduePair is an unordered pair of residue identifiers. Use NewResiduePair
// so that both orders of the same two residues produce the same value.
type ResiduePair struct {
	A, B string
}

// NewResiduePair returns the pair with its identifiers in lexical order.
func NewResiduePair(id1, id2 string) ResiduePair {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return ResiduePair{id1, id2}
}

// List holds the observed hydrogen bonds of one structure, grouped by the
// pair of residues they connect.
type List map[ResiduePair][]HBond

// Add records a bond between residues id1 and id2.
func (l List) Add(id1, id2 string, hb HBond) {
	key := NewResiduePair(id1, id2)
	l[key] = append(l[key], hb)
}

// Between returns the bonds recorded between residues id1 and id2, in
// either order.
func (l List) Between(id1, id2 string) []HBond {
	return l[NewResiduePair(id1, id2)]
}

// ReadList reads hydrogen bonds, one per line, in the whitespace separated
// format
//
//	residue1 residue2 donor-atom acceptor-atom distance [context]
//
// where context is "base_base" (the default when omitted) or "other". Blank
// lines and lines starting with '#' are skipped.
func ReadList(r io.Reader) (List, error) {
	list := make(List)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 && len(fields) != 6 {
			return nil, fmt.Errorf("Line %d: expected 5 or 6 fields but "+
				"found %d.", lineno, len(fields))
		}
		dist, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("Line %d: could not parse distance '%s': "+
				"%s.", lineno, fields[4], err)
		}
		ctx := BaseBase
		if len(fields) == 6 {
			if ctx, err = ParseContext(fields[5]); err != nil {
				return nil, fmt.Errorf("Line %d: %s", lineno, err)
			}
		}
		list.Add(fields[0], fields[1], HBond{
			Donor:    fields[2],
			Acceptor: fields[3],
			Distance: dist,
			Context:  ctx,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
