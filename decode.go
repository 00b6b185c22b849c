package vivy

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
)

// Document keys.
const (
	keyMaterials    = "materials"
	keyMapping      = "mapping"
	keyBaseMaterial = "base_material"
	keyDesc         = "desc"
	keyPasses       = "passes"
	keyRefinements  = "refinements"
	keyDiffuse      = "diffuse"
	keySpecular     = "specular"
	keyNormal       = "normal"
	keyMaterial     = "material"
	keyRefinement   = "refinement"
)

// Parse parses a Vivy document from bytes.
func Parse(data []byte, opt *DecodeOptions) (*Data, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses a Vivy document from reader.
func Decode(r io.Reader, opt *DecodeOptions) (*Data, error) {
	dopt := opt.normalize()
	tree, err := readTree(r, dopt.Syntax)
	if err != nil {
		return nil, err
	}

	return DecodeValue(tree, &dopt)
}

// DecodeFile parses a Vivy document from a file.
// The syntax is taken from the options or, when unset, from the file extension.
func DecodeFile(path string, opt *DecodeOptions) (*Data, error) {
	dopt := opt.normalize()
	if dopt.Syntax == "" {
		s, err := SyntaxFromPath(path)
		if err != nil {
			return nil, err
		}
		dopt.Syntax = s
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f, &dopt)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return d, nil
}

// DecodeValue builds a Data from a generic tree as produced by a JSON, YAML
// or TOML decoder into any. Decoding is all-or-nothing: on error no partial
// document is returned.
func DecodeValue(tree any, opt *DecodeOptions) (*Data, error) {
	dc := &decoder{opt: opt.normalize()}
	d, err := dc.decodeData(tree)
	if err != nil {
		return nil, err
	}

	dc.opt.Logger.Debug("decoded vivy document",
		slog.Int("materials", len(d.Materials)),
		slog.Int("mapping", len(d.Mapping)))

	return d, nil
}

// decoder converts a generic tree into the model.
type decoder struct {
	opt DecodeOptions // Normalized options
}

// decodeData decodes the top-level document.
func (dc *decoder) decodeData(tree any) (*Data, error) {
	root, err := dc.object(tree, "")
	if err != nil {
		return nil, err
	}
	if err := dc.checkKeys(root, "", keyMaterials, keyMapping); err != nil {
		return nil, err
	}

	rawMats, err := dc.requiredObject(root, keyMaterials, "")
	if err != nil {
		return nil, err
	}
	rawMapping, err := dc.requiredObject(root, keyMapping, "")
	if err != nil {
		return nil, err
	}

	d := &Data{
		Materials: make(map[string]Material, len(rawMats)),
		Mapping:   make(map[string][]Mapping, len(rawMapping)),
	}

	for _, key := range slices.Sorted(maps.Keys(rawMats)) {
		m, err := dc.decodeMaterial(rawMats[key], joinKey(keyMaterials, key))
		if err != nil {
			return nil, err
		}
		d.Materials[key] = m
	}

	for _, name := range slices.Sorted(maps.Keys(rawMapping)) {
		entries, err := dc.decodeEntries(rawMapping[name], joinKey(keyMapping, name))
		if err != nil {
			return nil, err
		}
		d.Mapping[name] = entries
	}

	return d, nil
}

// decodeMaterial decodes one materials table entry.
func (dc *decoder) decodeMaterial(v any, path string) (Material, error) {
	obj, err := dc.object(v, path)
	if err != nil {
		return Material{}, err
	}
	if err := dc.checkKeys(obj, path, keyBaseMaterial, keyDesc, keyPasses, keyRefinements); err != nil {
		return Material{}, err
	}

	var m Material
	if m.BaseMaterial, err = dc.requiredString(obj, keyBaseMaterial, path); err != nil {
		return Material{}, err
	}
	if m.Desc, err = dc.requiredString(obj, keyDesc, path); err != nil {
		return Material{}, err
	}

	rawPasses, ok := obj[keyPasses]
	if !ok {
		return Material{}, &PathError{Path: joinKey(path, keyPasses), Err: ErrMissingField}
	}
	if m.Passes, err = dc.decodePasses(rawPasses, joinKey(path, keyPasses)); err != nil {
		return Material{}, err
	}

	// Presence of the key, not its content, decides whether refinements exist.
	if rawRef, ok := obj[keyRefinements]; ok {
		r, err := dc.decodeRefinements(rawRef, joinKey(path, keyRefinements))
		if err != nil {
			return Material{}, err
		}
		m.Refinements = Some(r)
	}

	return m, nil
}

// decodePasses decodes a passes object.
func (dc *decoder) decodePasses(v any, path string) (Passes, error) {
	obj, err := dc.object(v, path)
	if err != nil {
		return Passes{}, err
	}
	if err := dc.checkKeys(obj, path, keyDiffuse, keySpecular, keyNormal); err != nil {
		return Passes{}, err
	}

	var p Passes
	if p.Diffuse, err = dc.requiredString(obj, keyDiffuse, path); err != nil {
		return Passes{}, err
	}
	if p.Specular, err = dc.optionalString(obj, keySpecular, path); err != nil {
		return Passes{}, err
	}
	if p.Normal, err = dc.optionalString(obj, keyNormal, path); err != nil {
		return Passes{}, err
	}

	return p, nil
}

// decodeRefinements decodes a refinements object.
func (dc *decoder) decodeRefinements(v any, path string) (Refinements, error) {
	obj, err := dc.object(v, path)
	if err != nil {
		return Refinements{}, err
	}

	known := make([]string, len(refinementKinds))
	for i, k := range refinementKinds {
		known[i] = string(k)
	}
	if err := dc.checkKeys(obj, path, known...); err != nil {
		return Refinements{}, err
	}

	var r Refinements
	for _, k := range refinementKinds {
		val, err := dc.optionalString(obj, string(k), path)
		if err != nil {
			return Refinements{}, err
		}
		*r.field(k) = val
	}

	return r, nil
}

// decodeEntries decodes the ordered candidate list of one external name.
func (dc *decoder) decodeEntries(v any, path string) ([]Mapping, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, dc.malformed(path, valueArray, v)
	}

	out := make([]Mapping, 0, len(arr))
	for i, raw := range arr {
		ipath := joinIndex(path, i)
		obj, err := dc.object(raw, ipath)
		if err != nil {
			return nil, err
		}
		if err := dc.checkKeys(obj, ipath, keyMaterial, keyRefinement); err != nil {
			return nil, err
		}

		var m Mapping
		if m.Material, err = dc.requiredString(obj, keyMaterial, ipath); err != nil {
			return nil, err
		}
		if m.Refinement, err = dc.optionalString(obj, keyRefinement, ipath); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// object asserts v is a string-keyed object.
func (dc *decoder) object(v any, path string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, dc.malformed(path, valueObject, v)
	}

	return obj, nil
}

// requiredObject reads a required object-valued key.
func (dc *decoder) requiredObject(obj map[string]any, key, path string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, &PathError{Path: joinKey(path, key), Err: ErrMissingField}
	}

	return dc.object(v, joinKey(path, key))
}

// requiredString reads a required string-valued key.
func (dc *decoder) requiredString(obj map[string]any, key, path string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", &PathError{Path: joinKey(path, key), Err: ErrMissingField}
	}

	s, ok := v.(string)
	if !ok {
		return "", dc.malformed(joinKey(path, key), valueString, v)
	}

	return s, nil
}

// optionalString reads a string-valued key only when it is present.
// A present key holding a non-string, null included, is malformed.
func (dc *decoder) optionalString(obj map[string]any, key, path string) (Optional[string], error) {
	v, ok := obj[key]
	if !ok {
		return None[string](), nil
	}

	s, ok := v.(string)
	if !ok {
		return None[string](), dc.malformed(joinKey(path, key), valueString, v)
	}

	return Some(s), nil
}

// checkKeys reports keys outside known, ignoring them unless disallowed.
func (dc *decoder) checkKeys(obj map[string]any, path string, known ...string) error {
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		if slices.Contains(known, key) {
			continue
		}
		if dc.opt.DisallowUnknownKeys {
			return &PathError{Path: joinKey(path, key), Err: ErrUnknownKey}
		}

		dc.opt.Logger.Debug("ignoring unknown key", slog.String("path", joinKey(path, key)))
	}

	return nil
}

// malformed builds a shape error.
func (dc *decoder) malformed(path string, want valueKind, got any) error {
	return &PathError{
		Path: path,
		Err:  fmt.Errorf("%w: expected %s, got %s", ErrMalformed, want, kindOf(got)),
	}
}
