package vivy

// RefinementKind names one of the refinement slots of a material.
// The value is the key used in the document.
type RefinementKind string

const (
	// RefinementEmissive is the emissive variant.
	RefinementEmissive RefinementKind = "emissive"
	// RefinementReflective is the reflective variant.
	RefinementReflective RefinementKind = "reflective"
	// RefinementMetallic is the metallic variant.
	RefinementMetallic RefinementKind = "metallic"
	// RefinementGlass is the glass variant.
	RefinementGlass RefinementKind = "glass"
	// RefinementFallbackN is the fallback used when the normal pass is unsupported.
	RefinementFallbackN RefinementKind = "fallback_n"
	// RefinementFallbackS is the fallback used when the specular pass is unsupported.
	RefinementFallbackS RefinementKind = "fallback_s"
	// RefinementFallback is the generic fallback.
	RefinementFallback RefinementKind = "fallback"
)

// refinementKinds is the canonical key order.
var refinementKinds = []RefinementKind{
	RefinementEmissive,
	RefinementReflective,
	RefinementMetallic,
	RefinementGlass,
	RefinementFallbackN,
	RefinementFallbackS,
	RefinementFallback,
}

// RefinementKinds returns all refinement kinds in canonical order.
func RefinementKinds() []RefinementKind {
	out := make([]RefinementKind, len(refinementKinds))
	copy(out, refinementKinds)
	return out
}

// ParseRefinementKind returns the kind named by s.
func ParseRefinementKind(s string) (RefinementKind, bool) {
	for _, k := range refinementKinds {
		if string(k) == s {
			return k, true
		}
	}

	return "", false
}

// IsFallback reports whether k is one of the fallback kinds.
func (k RefinementKind) IsFallback() bool {
	switch k {
	case RefinementFallbackN, RefinementFallbackS, RefinementFallback:
		return true
	default:
		return false
	}
}

// String returns the document key of k.
func (k RefinementKind) String() string {
	return string(k)
}
