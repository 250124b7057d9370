package restype_test

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/restype/pkg/restype"
)

// TestSpellings checks every seeded spelling, in upper and lower case,
// gives back exactly the named instance.
func TestSpellings(t *testing.T) {
	reg := NewRegistry(nil)
	for n := Name(0); int(n) < NName; n++ {
		want := reg.Named(n)
		for _, s := range Spellings(n) {
			if got := reg.Parse(s); got != want {
				t.Errorf("Parse(%q) gave %q, wanted %q", s, got, want)
			}
			if got := reg.Parse(strings.ToLower(s)); got != want {
				t.Errorf("Parse(lower %q) gave %q, wanted %q", s, got, want)
			}
		}
	}
}

// TestRoundTrip: the code of every named type parses back to itself.
func TestRoundTrip(t *testing.T) {
	reg := NewRegistry(nil)
	for n := Name(0); int(n) < NName; n++ {
		typ := reg.Named(n)
		if reg.Parse(typ.Code()) != typ {
			t.Errorf("code %q of %v does not round trip", typ.Code(), n)
		}
	}
}

var sameType = []struct {
	name string
	s    []string
}{
	{"RNA adenine", []string{"ade", "ADE", "A", "a", "RA", "ra5", "RA3"}},
	{"RNA cytosine", []string{"C", "CYT", "RC5", "rc3"}},
	{"RNA guanine", []string{"G", "GUA", "rg"}},
	{"RNA uracil", []string{"U", "URA", "URI", "RU5"}},
	{"DNA thymine", []string{"dt5", "T", "TYM", "THY", "DT", "DT3"}},
	{"DNA adenine", []string{"DA", "da5", "DA3"}},
	{"alanine", []string{"ala", "ALA", "PA", "pa"}},
	{"tryptophan", []string{"TRP", "PW"}},
	{"RNA purine", []string{"(R:R)", "RR", "(r:r)"}},
	{"purine", []string{"R", "PURINE", "(N:R)"}},
	{"phosphate", []string{"Phosphate", "PO4", "phosphate"}},
	{"amino acid", []string{"AminoAcid", "AA", "PX"}},
}

func TestSameType(t *testing.T) {
	reg := NewRegistry(nil)
	for _, tt := range sameType {
		first := reg.Parse(tt.s[0])
		for _, s := range tt.s[1:] {
			if reg.Parse(s) != first {
				t.Errorf("%s: %q and %q differ", tt.name, tt.s[0], s)
			}
		}
	}
}

func TestDistinctNames(t *testing.T) {
	reg := NewRegistry(nil)
	seen := make(map[*Type]Name)
	codes := make(map[string]Name)
	for n := Name(0); int(n) < NName; n++ {
		typ := reg.Named(n)
		require.NotNil(t, typ)
		if old, ok := seen[typ]; ok {
			t.Errorf("%v and %v share an instance", old, n)
		}
		seen[typ] = n
		if old, ok := codes[strings.ToUpper(typ.Code())]; ok {
			t.Errorf("%v and %v share code %q", old, n, typ.Code())
		}
		codes[strings.ToUpper(typ.Code())] = n
	}
}

func TestUnknown(t *testing.T) {
	reg := NewRegistry(nil)
	n0 := reg.Len()
	u := reg.Parse("unknownxyz")
	require.True(t, u.IsUnknown())
	require.False(t, u.Has(NucleicAcid))
	require.Empty(t, u.Categories())
	require.Equal(t, "UNKNOWNXYZ", u.Code())
	require.Equal(t, "UNKNOWNXYZ", u.LongCode())
	require.Same(t, u, reg.Parse("UnknownXYZ"))
	require.Equal(t, n0+1, reg.Len())
	require.False(t, reg.Parse("A").IsUnknown())
}

// TestNonASCII: only a to z are folded. Bytes that are not UTF-8 and
// letters outside ASCII keep their own keys, even where Unicode would
// upper case them to a seeded spelling ("ſ" to "S").
func TestNonASCII(t *testing.T) {
	reg := NewRegistry(nil)
	ff, fe := reg.Parse("\xff"), reg.Parse("\xfe")
	require.NotSame(t, ff, fe)
	require.Equal(t, "\xff", ff.Code())
	require.Equal(t, "\xfe", fe.Code())
	require.Same(t, ff, reg.Parse("\xff"))

	ser := reg.Named(NameSER)
	long := reg.Parse("pſ")
	require.True(t, long.IsUnknown())
	require.NotSame(t, ser, long)
	require.Equal(t, "Pſ", long.Code())
	require.Same(t, ser, reg.Parse("ps"))

	require.Equal(t, "ÄDE", reg.Parse("äde").Code())
	require.NotSame(t, reg.Parse("ADE"), reg.Parse("ädE"))
	require.Equal(t, "X\xffY", reg.Parse("x\xffy").Code())
}

// TestZeroType: a Type not made by a registry is in no table.
func TestZeroType(t *testing.T) {
	reg := NewRegistry(nil)
	var z Type
	require.True(t, z.IsUnknown())
	require.False(t, z.IsNull())
	require.Empty(t, z.Categories())
	require.NotSame(t, &z, reg.Parse(""))
	require.NotSame(t, &z, reg.Parse(z.Code()))
	require.False(t, reg.Null().Describes(&z))
	require.True(t, z.Describes(&z))
	require.Nil(t, reg.Generalize(&z, reg.Parse("A")))
}

func TestNull(t *testing.T) {
	reg := NewRegistry(nil)
	null := reg.Null()
	require.Same(t, null, reg.Named(NameNull))
	require.Same(t, null, reg.Parse(""))
	require.True(t, null.IsNull())
	require.False(t, null.IsUnknown())
	require.Equal(t, "", null.Code())
	require.Equal(t, "Null", NameNull.String())
}

func TestInvalidate(t *testing.T) {
	reg := NewRegistry(nil)
	a := reg.Parse("A")
	inv := reg.Invalidate(a)
	require.Same(t, inv, reg.Invalidate(a))
	require.Same(t, inv, reg.Invalidate(reg.Parse("ADE"))) // same code, "A"
	require.NotSame(t, inv, a)
	require.Equal(t, a.Code(), inv.Code())
	require.True(t, inv.IsInvalid())
	require.True(t, inv.IsUnknown())
	require.False(t, a.IsInvalid())
	require.NotSame(t, inv, reg.Invalidate(reg.Parse("G")))
	require.Same(t, a, reg.Parse("A"), "invalidating must not touch the valid table")
	require.Equal(t, 2, reg.NInvalid())

	u := reg.Parse("xyz")
	require.NotSame(t, u, reg.Invalidate(u))
}

// TestRegistriesIndependent checks that instances are per registry.
func TestRegistriesIndependent(t *testing.T) {
	r1, r2 := NewRegistry(nil), NewRegistry(nil)
	require.NotSame(t, r1.Parse("A"), r2.Parse("A"))
	r1.Parse("only_in_r1")
	require.Equal(t, r1.Len(), r2.Len()+1)
	require.Same(t, Default(), Default())
}

func TestKeysSorted(t *testing.T) {
	reg := NewRegistry(nil)
	keys := reg.Keys()
	require.Len(t, keys, reg.Len())
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted at %d: %q %q", i, keys[i-1], keys[i])
		}
	}
	require.Contains(t, keys, "TYM")
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(log.New(&buf, "", 0))
	reg.Parse("A")
	require.Zero(t, buf.Len(), "known keys should not be logged")
	reg.Invalidate(reg.Parse("weird"))
	require.Contains(t, buf.String(), `new unknown residue type "WEIRD"`)
	require.Contains(t, buf.String(), `invalidated residue type "WEIRD"`)
}

// TestConcurrentParse has many goroutines racing on the same new keys.
// Everyone must get the same instance.
func TestConcurrentParse(t *testing.T) {
	const nGo = 16
	keys := []string{"new1", "NEW1", "new2", "x9", "A", "dt5"}
	reg := NewRegistry(nil)
	got := make([][]*Type, nGo)
	inv := make([][]*Type, nGo)
	var wg sync.WaitGroup
	for i := 0; i < nGo; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, k := range keys {
				typ := reg.Parse(k)
				got[i] = append(got[i], typ)
				inv[i] = append(inv[i], reg.Invalidate(typ))
			}
		}(i)
	}
	wg.Wait()
	for i := 1; i < nGo; i++ {
		for j := range keys {
			if got[i][j] != got[0][j] {
				t.Errorf("goroutine %d got a different %q", i, keys[j])
			}
			if inv[i][j] != inv[0][j] {
				t.Errorf("goroutine %d got a different invalid %q", i, keys[j])
			}
		}
	}
	require.Same(t, got[0][0], got[0][1])
}
