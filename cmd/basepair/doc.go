/*
basepair finds and classifies base pairs in RNA and DNA structures.

Observed pairs are superposed onto idealized templates of each
Leontis-Westhof class, and the fit is combined with the hydrogen bonds found
between the two bases and the angle between their planes. Hydrogen bonds are
not detected here; each PDB file needs a companion file (by default the PDB
file name with a ".hbonds" extension) with one bond per line:

	residue1 residue2 donor-atom acceptor-atom distance [base_base|other]

Residues are named "<chain>.<number>[insertion code]", e.g., "A.12".

Usage:
	basepair templates pdb-dir library-file
	basepair find [flags] (pdb-file | pdb-dir) ...
	basepair classify [flags] pdb-file residue1 residue2
	basepair docs output-dir

Settings

Every threshold and weight can be set in a YAML, TOML or JSON settings file
(--settings, or basepair.yaml in the current directory) and with BASEPAIR_*
environment variables, e.g., BASEPAIR_MIN_SCORE=0.7. Command line flags take
precedence over both.
*/
package main
