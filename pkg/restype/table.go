// 17 Oct 2026
// The fixed table of named types and all their spellings.
// Adding a category means adding a row here, not writing new code.

package restype

// Name picks out one of the named types held by every registry.
type Name uint8

const (
	NameNull Name = iota
	NameNucleicAcid
	NameRNA
	NameDNA
	NamePhosphate
	NameRibose
	NameRibose5
	NameAminoAcid
	NamePurine
	NameRPurine
	NameDPurine
	NamePyrimidine
	NameRPyrimidine
	NameDPyrimidine
	NameW
	NameS
	NameM
	NameK
	NameB
	NameD
	NameH
	NameV
	NameRW
	NameRS
	NameRM
	NameRK
	NameRB
	NameRD
	NameRH
	NameRV
	NameDW
	NameDS
	NameDM
	NameDK
	NameDB
	NameDD
	NameDH
	NameDV
	NameA
	NameC
	NameG
	NameU
	NameT
	NameRA
	NameRC
	NameRG
	NameRU
	NameDA
	NameDC
	NameDG
	NameDT
	NameALA
	NameARG
	NameASN
	NameASP
	NameCYS
	NameGLN
	NameGLU
	NameGLY
	NameHIS
	NameILE
	NameLEU
	NameLYS
	NameMET
	NamePHE
	NamePRO
	NameSER
	NameTHR
	NameTRP
	NameTYR
	NameVAL
	nName // must be last
)

// NName is the number of named types.
const NName = int(nName)

// String returns the display code of the named type. The Null type
// has an empty code, so we print something visible instead.
func (n Name) String() string {
	if n >= nName {
		return "Name(?)"
	}
	if n == NameNull {
		return "Null"
	}
	return seedTable[n].code
}

// A seed is one row of the table. cats must include defining.
type seed struct {
	code     string
	long     string
	defining Category
	leaf     bool
	cats     []Category
	aliases  []string // Other spellings. The code is always registered.
}

// Ambiguity classes which contain each base.
var baseClasses = map[Category][]Category{
	A: {Purine, W, M, D, H, V},
	C: {Pyrimidine, S, M, B, H, V},
	G: {Purine, S, K, B, D, V},
	U: {Pyrimidine, W, K, B, D, H},
	T: {Pyrimidine, W, K, B, D, H},
}

// rnaOf and dnaOf give the qualified version of an unqualified category.
var rnaOf = map[Category]Category{
	Purine: RPurine, Pyrimidine: RPyrimidine,
	W: RW, S: RS, M: RM, K: RK, B: RB, D: RD, H: RH, V: RV,
	A: RA, C: RC, G: RG, U: RU,
}

var dnaOf = map[Category]Category{
	Purine: DPurine, Pyrimidine: DPyrimidine,
	W: DW, S: DS, M: DM, K: DK, B: DB, D: DD, H: DH, V: DV,
	A: DA, C: DC, G: DG, T: DT,
}

// seedTable is indexed by Name.
var seedTable = makeSeeds()

// makeSeeds builds the table. Bases get their ambiguity classes from
// baseClasses, and the qualified forms pick up the RNA or DNA version of
// every class as well.
func makeSeeds() [nName]seed {
	var tbl [nName]seed
	tbl[NameNull] = seed{leaf: true}
	tbl[NameNucleicAcid] = seed{
		code: "(N:N)", defining: NucleicAcid,
		cats:    []Category{NucleicAcid},
		aliases: []string{"N", "NUC", "NUCLEICACID"},
	}
	tbl[NameRNA] = seed{
		code: "(R:N)", defining: RNA,
		cats:    []Category{NucleicAcid, RNA},
		aliases: []string{"RN", "RNA"},
	}
	tbl[NameDNA] = seed{
		code: "(D:N)", defining: DNA,
		cats:    []Category{NucleicAcid, DNA},
		aliases: []string{"DN", "DNA"},
	}
	tbl[NamePhosphate] = seed{
		code: "Phosphate", long: "PO4", defining: Phosphate, leaf: true,
		cats:    []Category{Phosphate},
		aliases: []string{"PO4"},
	}
	tbl[NameRibose] = seed{
		code: "Ribose", long: "RIB", defining: Ribose, leaf: true,
		cats:    []Category{Ribose},
		aliases: []string{"RIB"},
	}
	tbl[NameRibose5] = seed{
		code: "Ribose5", long: "RIB5", defining: Ribose5, leaf: true,
		cats:    []Category{Ribose, Ribose5},
		aliases: []string{"RIB5"},
	}
	tbl[NameAminoAcid] = seed{
		code: "AminoAcid", defining: AminoAcid,
		cats:    []Category{AminoAcid},
		aliases: []string{"AA", "PX"},
	}

	// Purine, pyrimidine and the ambiguity letters, each in three flavours
	type amb struct {
		n          Name
		letter     string
		c          Category
		rn, dn     Name
		alsoUnqual []string
	}
	ambs := []amb{
		{NamePurine, "R", Purine, NameRPurine, NameDPurine, []string{"PURINE"}},
		{NamePyrimidine, "Y", Pyrimidine, NameRPyrimidine, NameDPyrimidine, []string{"PYRIMIDINE"}},
		{NameW, "W", W, NameRW, NameDW, nil},
		{NameS, "S", S, NameRS, NameDS, nil},
		{NameM, "M", M, NameRM, NameDM, nil},
		{NameK, "K", K, NameRK, NameDK, nil},
		{NameB, "B", B, NameRB, NameDB, nil},
		{NameD, "D", D, NameRD, NameDD, nil},
		{NameH, "H", H, NameRH, NameDH, nil},
		{NameV, "V", V, NameRV, NameDV, nil},
	}
	for _, a := range ambs {
		tbl[a.n] = seed{
			code: "(N:" + a.letter + ")", defining: a.c,
			cats:    []Category{NucleicAcid, a.c},
			aliases: append([]string{a.letter}, a.alsoUnqual...),
		}
		tbl[a.rn] = seed{
			code: "(R:" + a.letter + ")", defining: rnaOf[a.c],
			cats:    []Category{NucleicAcid, RNA, a.c, rnaOf[a.c]},
			aliases: []string{"R" + a.letter},
		}
		tbl[a.dn] = seed{
			code: "(D:" + a.letter + ")", defining: dnaOf[a.c],
			cats:    []Category{NucleicAcid, DNA, a.c, dnaOf[a.c]},
			aliases: []string{"D" + a.letter},
		}
	}

	// Unqualified bases. These are categories: (N:A) covers RNA and DNA adenine.
	for _, b := range []struct {
		n Name
		c Category
	}{{NameA, A}, {NameC, C}, {NameG, G}, {NameU, U}, {NameT, T}} {
		cats := append([]Category{NucleicAcid, b.c}, baseClasses[b.c]...)
		tbl[b.n] = seed{
			code: "(N:" + b.c.String() + ")", defining: b.c,
			cats: cats,
		}
	}

	// Concrete bases. The 5' and 3' terminal spellings are the same type
	// as the one in the middle of a chain.
	type base struct {
		n       Name
		c       Category
		code    string
		long    string
		aliases []string
	}
	rnaBases := []base{
		{NameRA, A, "A", "ADE", []string{"ADE", "RA", "RA5", "RA3"}},
		{NameRC, C, "C", "CYT", []string{"CYT", "RC", "RC5", "RC3"}},
		{NameRG, G, "G", "GUA", []string{"GUA", "RG", "RG5", "RG3"}},
		{NameRU, U, "U", "URA", []string{"URA", "URI", "RU", "RU5", "RU3"}},
	}
	for _, b := range rnaBases {
		cats := []Category{NucleicAcid, RNA, b.c, rnaOf[b.c]}
		for _, cl := range baseClasses[b.c] {
			cats = append(cats, cl, rnaOf[cl])
		}
		tbl[b.n] = seed{
			code: b.code, long: b.long, defining: rnaOf[b.c], leaf: true,
			cats: cats, aliases: b.aliases,
		}
	}
	dnaBases := []base{
		{NameDA, A, "DA", "DA", []string{"DA5", "DA3"}},
		{NameDC, C, "DC", "DC", []string{"DC5", "DC3"}},
		{NameDG, G, "DG", "DG", []string{"DG5", "DG3"}},
		{NameDT, T, "DT", "DT", []string{"DT5", "DT3", "T", "THY", "TYM"}},
	}
	for _, b := range dnaBases {
		cats := []Category{NucleicAcid, DNA, b.c, dnaOf[b.c]}
		for _, cl := range baseClasses[b.c] {
			cats = append(cats, cl, dnaOf[cl])
		}
		tbl[b.n] = seed{
			code: b.code, long: b.long, defining: dnaOf[b.c], leaf: true,
			cats: cats, aliases: b.aliases,
		}
	}

	// Amino acids, with a single letter alias prefixed by P.
	aminos := []struct {
		n      Name
		c      Category
		letter string
	}{
		{NameALA, ALA, "A"}, {NameARG, ARG, "R"}, {NameASN, ASN, "N"},
		{NameASP, ASP, "D"}, {NameCYS, CYS, "C"}, {NameGLN, GLN, "Q"},
		{NameGLU, GLU, "E"}, {NameGLY, GLY, "G"}, {NameHIS, HIS, "H"},
		{NameILE, ILE, "I"}, {NameLEU, LEU, "L"}, {NameLYS, LYS, "K"},
		{NameMET, MET, "M"}, {NamePHE, PHE, "F"}, {NamePRO, PRO, "P"},
		{NameSER, SER, "S"}, {NameTHR, THR, "T"}, {NameTRP, TRP, "W"},
		{NameTYR, TYR, "Y"}, {NameVAL, VAL, "V"},
	}
	for _, a := range aminos {
		s := a.c.String()
		tbl[a.n] = seed{
			code: s, long: s, defining: a.c, leaf: true,
			cats:    []Category{AminoAcid, a.c},
			aliases: []string{"P" + a.letter},
		}
	}

	for i := range tbl { // Categories have the same long and short code
		if tbl[i].long == "" {
			tbl[i].long = tbl[i].code
		}
	}
	return tbl
}
