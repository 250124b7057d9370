// 17 Oct 2026

package restype

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
)

// Registry owns every Type. It maps spellings to a single shared
// instance. There are two tables. byKey holds the valid types and
// grows when Parse sees something new. invalid holds the types made by
// Invalidate and never shares an instance with byKey.
// Neither table is ever emptied.
type Registry struct {
	mu      sync.RWMutex
	byKey   map[string]*Type
	muInv   sync.RWMutex
	invalid map[string]*Type
	named   [nName]*Type
	log     *log.Logger
}

// NewRegistry builds a registry with all the named types and their
// spellings. If lg is nil, nothing is logged.
func NewRegistry(lg *log.Logger) *Registry {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	r := &Registry{
		byKey:   make(map[string]*Type, 256),
		invalid: make(map[string]*Type),
		log:     lg,
	}
	for i, sd := range seedTable {
		t := &Type{
			code:     sd.code,
			longCode: sd.long,
			defining: sd.defining,
			broad:    !sd.leaf,
			kind:     kNamed,
		}
		t.cats.add(sd.cats...)
		if Name(i) == NameNull {
			t.kind = kNull
		}
		r.named[i] = t
		r.registerAlias(sd.code, t)
		for _, a := range sd.aliases {
			r.registerAlias(a, t)
		}
	}
	return r
}

var (
	dfltReg  *Registry
	dfltOnce sync.Once
)

// Default returns the process wide registry, building it the first
// time it is asked for.
func Default() *Registry {
	dfltOnce.Do(func() { dfltReg = NewRegistry(nil) })
	return dfltReg
}

// normKey upper cases the ASCII letters a to z and leaves every other
// byte alone. Non-ASCII text and bytes that are not UTF-8 must never
// fold into somebody else's key.
func normKey(s string) string {
	i := 0
	for i < len(s) && (s[i] < 'a' || s[i] > 'z') {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if 'a' <= b[i] && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// registerAlias is only used while seeding. A key given twice must
// point to the same type. Anything else is a bug in the table.
func (r *Registry) registerAlias(key string, t *Type) {
	key = normKey(key)
	if old, ok := r.byKey[key]; ok && old != t {
		panic(fmt.Sprintf("restype: key %q given to %q and %q", key, old.code, t.code))
	}
	r.byKey[key] = t
}

// newUnknown makes a type we know nothing about.
func newUnknown(key string, invalid bool) *Type {
	return &Type{code: key, longCode: key, kind: kUnknown, invalid: invalid}
}

// Parse returns the type for a piece of text. The case of ASCII letters
// is ignored. Text that is not recognised gets a new unknown type, whose
// code is the text with a to z upper cased, and later calls with the
// same text get the same instance. Parse never fails.
func (r *Registry) Parse(s string) *Type {
	key := normKey(s)
	r.mu.RLock()
	t, ok := r.byKey[key]
	r.mu.RUnlock()
	if ok {
		return t
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok = r.byKey[key]; ok { // Someone beat us to it
		return t
	}
	t = newUnknown(key, false)
	r.byKey[key] = t
	r.log.Printf("new unknown residue type %q", key)
	return t
}

// Invalidate returns the invalid twin of t. It is looked up by t's
// code in a table of its own, so it is never the same instance as
// anything Parse returns. Calling it twice with the same code gives
// the same instance.
func (r *Registry) Invalidate(t *Type) *Type {
	key := normKey(t.code)
	r.muInv.RLock()
	inv, ok := r.invalid[key]
	r.muInv.RUnlock()
	if ok {
		return inv
	}
	r.muInv.Lock()
	defer r.muInv.Unlock()
	if inv, ok = r.invalid[key]; ok {
		return inv
	}
	inv = newUnknown(key, true)
	r.invalid[key] = inv
	r.log.Printf("invalidated residue type %q", key)
	return inv
}

// Named returns one of the seeded types. It panics if n is out of range.
func (r *Registry) Named(n Name) *Type {
	return r.named[n]
}

// Null returns the sentinel used where there is no type.
func (r *Registry) Null() *Type { return r.named[NameNull] }

// Len is the number of keys in the valid table.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}

// NInvalid is the number of keys in the invalid table.
func (r *Registry) NInvalid() int {
	r.muInv.RLock()
	defer r.muInv.RUnlock()
	return len(r.invalid)
}

// Keys returns a sorted copy of the keys in the valid table.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	ret := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		ret = append(ret, k)
	}
	r.mu.RUnlock()
	sort.Strings(ret)
	return ret
}
