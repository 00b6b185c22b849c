package vivy

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Encode writes a Data to writer.
func Encode(w io.Writer, d *Data, opt *EncodeOptions) error {
	eopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	if err := writeTree(bw, EncodeValue(d), eopt); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Data to a file.
// The syntax is taken from the options or, when unset, from the file extension.
func EncodeFile(path string, d *Data, opt *EncodeOptions) error {
	eopt := opt.normalize()
	if eopt.Syntax == "" {
		s, err := SyntaxFromPath(path)
		if err != nil {
			return err
		}
		eopt.Syntax = s
	}

	b, err := Format(d, &eopt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Data to bytes.
func Format(d *Data, opt *EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeValue builds the generic tree for d. Required fields are always
// written; optional fields only when present.
func EncodeValue(d *Data) map[string]any {
	mats := make(map[string]any)
	mapping := make(map[string]any)
	if d != nil {
		for key, m := range d.Materials {
			mats[key] = encodeMaterial(m)
		}
		for name, entries := range d.Mapping {
			mapping[name] = encodeEntries(entries)
		}
	}

	return map[string]any{
		keyMaterials: mats,
		keyMapping:   mapping,
	}
}

// encodeMaterial builds the object for one material.
func encodeMaterial(m Material) map[string]any {
	out := map[string]any{
		keyBaseMaterial: m.BaseMaterial,
		keyDesc:         m.Desc,
		keyPasses:       encodePasses(m.Passes),
	}
	// A present refinements block is written even when all of its fields are absent.
	if r, ok := m.Refinements.Get(); ok {
		out[keyRefinements] = encodeRefinements(r)
	}

	return out
}

// encodePasses builds the passes object.
func encodePasses(p Passes) map[string]any {
	out := map[string]any{keyDiffuse: p.Diffuse}
	putOptional(out, keySpecular, p.Specular)
	putOptional(out, keyNormal, p.Normal)
	return out
}

// encodeRefinements builds the refinements object.
func encodeRefinements(r Refinements) map[string]any {
	out := make(map[string]any)
	for _, k := range refinementKinds {
		putOptional(out, string(k), r.Get(k))
	}

	return out
}

// encodeEntries builds the candidate array of one external name.
func encodeEntries(entries []Mapping) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		obj := map[string]any{keyMaterial: e.Material}
		putOptional(obj, keyRefinement, e.Refinement)
		out = append(out, obj)
	}

	return out
}

// putOptional sets key only when v is present.
func putOptional(obj map[string]any, key string, v Optional[string]) {
	if s, ok := v.Get(); ok {
		obj[key] = s
	}
}
