package vivy

import (
	"fmt"
	"slices"
)

// ResolveBase returns the unrefined material mapped to an external name.
//
// Entries are scanned in stored order and the first one without a refinement
// wins; later unrefined entries for the same name are never reached. When the
// name maps only to refined variants, ok is false and err is nil.
//
// It fails with ErrUnknownName when name is not in the mapping table, and with
// ErrDanglingReference when the winning entry names a missing material.
func (d *Data) ResolveBase(name string) (m Material, ok bool, err error) {
	return d.resolve(name, func(e Mapping) bool {
		return e.IsBase()
	})
}

// Resolve returns the material mapped to an external name for refinement kind k.
// It follows the same first-match rules as ResolveBase.
func (d *Data) Resolve(name string, k RefinementKind) (m Material, ok bool, err error) {
	return d.resolve(name, func(e Mapping) bool {
		r, set := e.Refinement.Get()
		return set && r == string(k)
	})
}

// resolve returns the material of the first entry accepted by match.
func (d *Data) resolve(name string, match func(Mapping) bool) (Material, bool, error) {
	entries, ok := d.Mapping[name]
	if !ok {
		return Material{}, false, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	i := slices.IndexFunc(entries, match)
	if i < 0 {
		return Material{}, false, nil
	}

	key := entries[i].Material
	m, ok := d.Materials[key]
	if !ok {
		return Material{}, false, fmt.Errorf("%w: mapping %q entry %d names %q", ErrDanglingReference, name, i, key)
	}

	return m, true, nil
}

// Material returns the material stored under key.
func (d *Data) Material(key string) (Material, bool) {
	m, ok := d.Materials[key]
	return m, ok
}

// Entries returns a copy of the candidate list for an external name.
func (d *Data) Entries(name string) ([]Mapping, bool) {
	entries, ok := d.Mapping[name]
	if !ok {
		return nil, false
	}

	return slices.Clone(entries), true
}
