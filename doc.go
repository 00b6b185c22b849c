/*
Package vivy provides decoding, encoding, validation, and mapping resolution for
Vivy material description documents.

A document has two tables. "materials" holds Vivy materials keyed by name, each
with a base material, a description, its passes, and optional refinements
(emissive, reflective, metallic, glass, and fallbacks). "mapping" associates a
material name from the authoring tool with an ordered list of (material,
refinement) candidates.

Optional keys are modeled with Optional, so a key that is absent and a key that
holds an empty string stay distinct through a decode and encode round trip.
Documents may be stored as JSON, YAML, or TOML; all three share one tree shape.

Reader example:

	d, err := vivy.DecodeFile("materials.json", nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := vivy.Format(d, &vivy.EncodeOptions{Syntax: vivy.SyntaxYAML})
	if err != nil {
		// handle error
	}

Resolver example:

	m, ok, err := d.ResolveBase("Principled BSDF")
	switch {
	case errors.Is(err, vivy.ErrUnknownName):
		// name is not mapped
	case errors.Is(err, vivy.ErrDanglingReference):
		// mapping names a missing material
	case !ok:
		// only refined variants are mapped
	default:
		_ = m.Passes.Diffuse
	}

Validator example:

	issues := vivy.Validate(d, nil)
	if len(issues) != 0 {
		// handle validation issues
	}
*/
package vivy
