// 17 Oct 2026

package restype

// Generalize returns the narrowest category covering both t1 and t2, or
// nil if there is none, as for an amino acid and a base, or anything
// with Null or an unknown type.
// The rules are tried in order and the first that fits wins. Categories
// overlap, so the order matters.
func (r *Registry) Generalize(t1, t2 *Type) *Type {
	if t1 == nil || t2 == nil {
		return nil
	}
	if t1 == t2 {
		return t1
	}
	if t1.Has(RNA) && t2.Has(RNA) {
		return r.qualified(t1, t2, NameRNA, NameRPurine, NameRPyrimidine)
	}
	if t1.Has(DNA) && t2.Has(DNA) {
		return r.qualified(t1, t2, NameDNA, NameDPurine, NameDPyrimidine)
	}
	if t1.Has(NucleicAcid) && t2.Has(NucleicAcid) {
		for _, b := range []struct {
			c Category
			n Name
		}{{A, NameA}, {C, NameC}, {G, NameG}, {U, NameU}, {T, NameT}} {
			if t1.Has(b.c) && t2.Has(b.c) {
				return r.named[b.n]
			}
		}
		return r.qualified(t1, t2, NameNucleicAcid, NamePurine, NamePyrimidine)
	}
	if t1.Has(AminoAcid) && t2.Has(AminoAcid) {
		return r.named[NameAminoAcid]
	}
	return nil
}

// qualified picks between purine, pyrimidine and the whole group for
// two types already known to be in the same group.
func (r *Registry) qualified(t1, t2 *Type, all, pur, pyr Name) *Type {
	switch {
	case t1.Has(Purine) && t2.Has(Pyrimidine),
		t1.Has(Pyrimidine) && t2.Has(Purine):
		return r.named[all]
	case t1.Has(Purine) && t2.Has(Purine):
		return r.named[pur]
	case t1.Has(Pyrimidine) && t2.Has(Pyrimidine):
		return r.named[pyr]
	}
	return r.named[all]
}
