// 17 Oct 2026

// Package restype classifies residues. A residue type is a nucleotide,
// an amino acid, an IUPAC ambiguity code or a structural marker such as
// phosphate. Every type carries a fixed set of categories and there is
// exactly one instance per spelling, owned by a Registry.
//
// Types are only obtained from a Registry, usually by Parse. They may
// be compared with == since the registry guarantees one instance per
// key. Membership is tested with Has(category) and the least general
// common category of two types comes from Registry.Generalize.
package restype

// What sort of entry is this ?
type kind byte

const (
	kUnknown kind = iota // made up on the fly by Parse or Invalidate
	kNamed               // one of the seeded constants
	kNull                // the sentinel with an empty code
)

// Type is one residue type. Nothing changes after the registry has
// made it. Only types handed out by a Registry are interned. One made
// with new(Type) or a composite literal is in no table, is never == to
// anything a registry returns, not even the Null type, and behaves like
// an unknown type with an empty code.
type Type struct {
	code     string
	longCode string
	cats     catSet
	defining Category // The category this type stands for
	broad    bool     // false if it stands for nothing but itself
	kind     kind
	invalid  bool // came from the invalid table
}

// Code returns the short display code, like "A" or "(R:R)".
func (t *Type) Code() string { return t.code }

// LongCode returns the long form, like "ADE".
func (t *Type) LongCode() string { return t.longCode }

// PDBCode is the name one would write in a PDB file. Amino acids use
// their long code, everything else the short one.
func (t *Type) PDBCode() string {
	if t.cats.has(AminoAcid) {
		return t.longCode
	}
	return t.code
}

// String makes a type printable. It is the short code.
func (t *Type) String() string { return t.code }

// Has says whether the type belongs to category c.
// t.Has(Purine) replaces all the isPurine() style predicates.
func (t *Type) Has(c Category) bool {
	if c >= nCategory {
		return false
	}
	return t.cats.has(c)
}

// Categories returns every category the type belongs to.
func (t *Type) Categories() []Category { return t.cats.list() }

// Describes says if other falls inside the category this type stands
// for. The purine type describes every type with the Purine category.
// A leaf type, like a concrete base or amino acid, only describes itself.
func (t *Type) Describes(other *Type) bool {
	if other == nil {
		return false
	}
	if !t.broad {
		return t == other
	}
	return other.cats.has(t.defining)
}

// IsInstanceOf is the other direction of Describes.
// rA.IsInstanceOf(purine) is purine.Describes(rA).
func (t *Type) IsInstanceOf(rep *Type) bool {
	if rep == nil {
		return false
	}
	return rep.Describes(t)
}

// IsUnknown is true for types the registry made up because it did not
// recognise the text.
func (t *Type) IsUnknown() bool { return t.kind == kUnknown }

// IsNull is true only for the Null sentinel.
func (t *Type) IsNull() bool { return t.kind == kNull }

// IsInvalid is true if the type came from Registry.Invalidate.
func (t *Type) IsInvalid() bool { return t.invalid }

// Less orders types by their codes, byte by byte.
func (t *Type) Less(other *Type) bool { return t.code < other.code }
