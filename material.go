package vivy

import (
	"maps"
	"slices"
)

// Data represents a decoded Vivy document.
//
// Values are built once by decoding or by a composite literal and are not
// modified afterwards, so a Data may be shared between goroutines.
type Data struct {
	Materials map[string]Material  // Materials keyed by Vivy material name
	Mapping   map[string][]Mapping // External material name to ordered candidates
}

// Material represents one entry of the materials table.
// It has no name of its own; it is known by its key in Data.Materials.
type Material struct {
	BaseMaterial string                // Shading model the material is built on
	Desc         string                // Human-readable description
	Passes       Passes                // Node names per pass
	Refinements  Optional[Refinements] // Alternate variants, absent when unsupported
}

// Passes holds the node name used for each pass.
type Passes struct {
	Diffuse  string           // Diffuse node, always present
	Specular Optional[string] // Specular node
	Normal   Optional[string] // Normal node
}

// Refinements holds the material each variant resolves to.
type Refinements struct {
	Emissive   Optional[string] // Emissive variant
	Reflective Optional[string] // Reflective variant
	Metallic   Optional[string] // Metallic variant
	Glass      Optional[string] // Glass variant
	FallbackN  Optional[string] // Fallback without normal pass
	FallbackS  Optional[string] // Fallback without specular pass
	Fallback   Optional[string] // Generic fallback
}

// Mapping represents one candidate for an external material name.
type Mapping struct {
	Material   string           // Key into Data.Materials
	Refinement Optional[string] // Refinement that produced this entry, absent for the base form
}

// Get returns the material named by refinement kind k.
func (r Refinements) Get(k RefinementKind) Optional[string] {
	if f := r.field(k); f != nil {
		return *f
	}

	return None[string]()
}

// field returns the slot for k, or nil for an unknown kind.
func (r *Refinements) field(k RefinementKind) *Optional[string] {
	switch k {
	case RefinementEmissive:
		return &r.Emissive
	case RefinementReflective:
		return &r.Reflective
	case RefinementMetallic:
		return &r.Metallic
	case RefinementGlass:
		return &r.Glass
	case RefinementFallbackN:
		return &r.FallbackN
	case RefinementFallbackS:
		return &r.FallbackS
	case RefinementFallback:
		return &r.Fallback
	default:
		return nil
	}
}

// Refinement returns the material named by refinement kind k.
// It is absent when the material declares no refinements at all.
func (m Material) Refinement(k RefinementKind) Optional[string] {
	r, ok := m.Refinements.Get()
	if !ok {
		return None[string]()
	}

	return r.Get(k)
}

// Kind returns the refinement kind of the entry.
// ok is false for base entries and for refinement names outside the known set.
func (m Mapping) Kind() (RefinementKind, bool) {
	s, ok := m.Refinement.Get()
	if !ok {
		return "", false
	}

	return ParseRefinementKind(s)
}

// IsBase reports whether the entry denotes the unrefined material.
func (m Mapping) IsBase() bool {
	return !m.Refinement.IsSet()
}

// Equal reports whether two documents hold the same materials and mappings.
// Entry order inside each mapping is significant.
func (d *Data) Equal(o *Data) bool {
	if d == nil || o == nil {
		return d == o
	}

	return maps.Equal(d.Materials, o.Materials) &&
		maps.EqualFunc(d.Mapping, o.Mapping, slices.Equal[[]Mapping])
}

// MaterialKeys returns the material keys in sorted order.
func (d *Data) MaterialKeys() []string {
	return slices.Sorted(maps.Keys(d.Materials))
}

// MappingNames returns the external names in sorted order.
func (d *Data) MappingNames() []string {
	return slices.Sorted(maps.Keys(d.Mapping))
}
