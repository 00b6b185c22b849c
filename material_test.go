package vivy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	var zero Optional[string]
	assert.False(t, zero.IsSet())
	assert.Equal(t, None[string](), zero)
	assert.Equal(t, "def", zero.Or("def"))

	empty := Some("")
	assert.True(t, empty.IsSet())
	assert.NotEqual(t, zero, empty)
	assert.Equal(t, "", empty.Or("def"))

	v, ok := Some("Normal").Get()
	assert.True(t, ok)
	assert.Equal(t, "Normal", v)
}

func TestRefinementKinds(t *testing.T) {
	kinds := RefinementKinds()
	assert.Equal(t, []RefinementKind{
		RefinementEmissive,
		RefinementReflective,
		RefinementMetallic,
		RefinementGlass,
		RefinementFallbackN,
		RefinementFallbackS,
		RefinementFallback,
	}, kinds)

	kinds[0] = "changed"
	assert.Equal(t, RefinementEmissive, RefinementKinds()[0])

	for _, k := range RefinementKinds() {
		got, ok := ParseRefinementKind(k.String())
		assert.True(t, ok, k)
		assert.Equal(t, k, got)
	}

	_, ok := ParseRefinementKind("reflecive")
	assert.False(t, ok)

	assert.True(t, RefinementFallback.IsFallback())
	assert.True(t, RefinementFallbackN.IsFallback())
	assert.True(t, RefinementFallbackS.IsFallback())
	assert.False(t, RefinementGlass.IsFallback())
}

func TestRefinementsGet(t *testing.T) {
	r := Refinements{Metallic: Some("Chrome"), FallbackS: Some("")}
	assert.Equal(t, Some("Chrome"), r.Get(RefinementMetallic))
	assert.Equal(t, Some(""), r.Get(RefinementFallbackS))
	assert.False(t, r.Get(RefinementGlass).IsSet())
	assert.False(t, r.Get("unknown").IsSet())

	m := Material{Refinements: Some(r)}
	assert.Equal(t, Some("Chrome"), m.Refinement(RefinementMetallic))
	assert.False(t, Material{}.Refinement(RefinementMetallic).IsSet())
}

func TestMappingKind(t *testing.T) {
	k, ok := Mapping{Material: "PBR", Refinement: Some("emissive")}.Kind()
	assert.True(t, ok)
	assert.Equal(t, RefinementEmissive, k)

	_, ok = Mapping{Material: "PBR", Refinement: Some("shiny")}.Kind()
	assert.False(t, ok)

	base := Mapping{Material: "PBR"}
	_, ok = base.Kind()
	assert.False(t, ok)
	assert.True(t, base.IsBase())
}

func TestDataEqual(t *testing.T) {
	a := referenceData()
	b := referenceData()
	assert.True(t, a.Equal(b))

	b.Mapping["Simple"] = []Mapping{b.Mapping["Simple"][1], b.Mapping["Simple"][0]}
	assert.False(t, a.Equal(b), "entry order is significant")

	c := referenceData()
	pbr := c.Materials["PBR"]
	pbr.Refinements = None[Refinements]()
	c.Materials["PBR"] = pbr
	assert.False(t, a.Equal(c))

	e := referenceData()
	simple := e.Materials["Simple"]
	simple.Refinements = Some(Refinements{})
	e.Materials["Simple"] = simple
	assert.False(t, a.Equal(e), "empty refinements differ from absent refinements")

	var nilData *Data
	assert.True(t, nilData.Equal(nil))
	assert.False(t, a.Equal(nil))
}
