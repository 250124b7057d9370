// 17 Oct 2026

package restype

import (
	"strings"
)

// A Category is one class in the residue lattice. A type belongs to
// many categories at once. RNA adenine is a purine, a W base, an M base
// and an RNA residue, all at the same time.
type Category uint8

const (
	NucleicAcid Category = iota
	AminoAcid
	RNA
	DNA
	Phosphate
	Ribose
	Ribose5
	Purine
	Pyrimidine
	W // A or T/U
	S // G or C
	M // A or C
	K // G or T/U
	B // not A
	D // not C
	H // not G
	V // not T/U
	RPurine
	RPyrimidine
	RW
	RS
	RM
	RK
	RB
	RD
	RH
	RV
	DPurine
	DPyrimidine
	DW
	DS
	DM
	DK
	DB
	DD
	DH
	DV
	A
	C
	G
	U
	T
	RA
	RC
	RG
	RU
	DA
	DC
	DG
	DT
	ALA
	ARG
	ASN
	ASP
	CYS
	GLN
	GLU
	GLY
	HIS
	ILE
	LEU
	LYS
	MET
	PHE
	PRO
	SER
	THR
	TRP
	TYR
	VAL
	nCategory // must be last
)

var catNames = [nCategory]string{
	NucleicAcid: "NucleicAcid", AminoAcid: "AminoAcid", RNA: "RNA", DNA: "DNA",
	Phosphate: "Phosphate", Ribose: "Ribose", Ribose5: "Ribose5",
	Purine: "Purine", Pyrimidine: "Pyrimidine",
	W: "W", S: "S", M: "M", K: "K", B: "B", D: "D", H: "H", V: "V",
	RPurine: "RPurine", RPyrimidine: "RPyrimidine",
	RW: "RW", RS: "RS", RM: "RM", RK: "RK", RB: "RB", RD: "RD", RH: "RH", RV: "RV",
	DPurine: "DPurine", DPyrimidine: "DPyrimidine",
	DW: "DW", DS: "DS", DM: "DM", DK: "DK", DB: "DB", DD: "DD", DH: "DH", DV: "DV",
	A: "A", C: "C", G: "G", U: "U", T: "T",
	RA: "RA", RC: "RC", RG: "RG", RU: "RU",
	DA: "DA", DC: "DC", DG: "DG", DT: "DT",
	ALA: "ALA", ARG: "ARG", ASN: "ASN", ASP: "ASP", CYS: "CYS",
	GLN: "GLN", GLU: "GLU", GLY: "GLY", HIS: "HIS", ILE: "ILE",
	LEU: "LEU", LYS: "LYS", MET: "MET", PHE: "PHE", PRO: "PRO",
	SER: "SER", THR: "THR", TRP: "TRP", TYR: "TYR", VAL: "VAL",
}

// NCategory is the number of categories. Useful for sizing tables.
const NCategory = int(nCategory)

// String gives the name of the category, as used by ParseCategory.
func (c Category) String() string {
	if c >= nCategory {
		return "Category(?)"
	}
	return catNames[c]
}

// ParseCategory takes a category name, ignoring case, and returns the
// category. ok is false if the name is not recognised.
func ParseCategory(name string) (c Category, ok bool) {
	for i, s := range catNames {
		if strings.EqualFold(s, name) {
			return Category(i), true
		}
	}
	return 0, false
}

// catSet is a bitset of categories. There are more than 64 of them,
// so we use two words.
type catSet [2]uint64

func (cs catSet) has(c Category) bool {
	return cs[c/64]&(1<<(c%64)) != 0
}

func (cs *catSet) add(c ...Category) {
	for _, x := range c {
		cs[x/64] |= 1 << (x % 64)
	}
}

func (cs catSet) empty() bool { return cs[0] == 0 && cs[1] == 0 }

// list returns the members in enumeration order.
func (cs catSet) list() []Category {
	ret := make([]Category, 0, 16)
	for c := Category(0); c < nCategory; c++ {
		if cs.has(c) {
			ret = append(ret, c)
		}
	}
	return ret
}
