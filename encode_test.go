package vivy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeValueOmitsAbsent(t *testing.T) {
	tree := EncodeValue(referenceData())

	mats := tree[keyMaterials].(map[string]any)
	simple := mats["Simple"].(map[string]any)
	assert.NotContains(t, simple, keyRefinements)
	assert.Equal(t, map[string]any{"diffuse": "Diffuse"}, simple[keyPasses])

	pbr := mats["PBR"].(map[string]any)
	assert.Equal(t, map[string]any{"emissive": "BPR_Emit", "fallback": "Simple"}, pbr[keyRefinements])

	mapping := tree[keyMapping].(map[string]any)
	assert.Equal(t, []any{
		map[string]any{"material": "Simple"},
		map[string]any{"material": "PBR", "refinement": "fallback"},
	}, mapping["Simple"])
}

func TestEncodeValueNil(t *testing.T) {
	tree := EncodeValue(nil)
	assert.Equal(t, map[string]any{
		"materials": map[string]any{},
		"mapping":   map[string]any{},
	}, tree)
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []Syntax{SyntaxJSON, SyntaxYAML, SyntaxTOML} {
		t.Run(string(s), func(t *testing.T) {
			want := referenceData()
			out, err := Format(want, &EncodeOptions{Syntax: s})
			require.NoError(t, err)

			got, err := Parse(out, &DecodeOptions{Syntax: s})
			require.NoError(t, err)
			require.True(t, want.Equal(got), "round-trip mismatch:\n%s\n%s", out, spew.Sdump(got))
		})
	}
}

func TestRoundTripPresenceStates(t *testing.T) {
	want := &Data{
		Materials: map[string]Material{
			"Empty": {
				BaseMaterial: "",
				Desc:         "",
				Passes:       Passes{Diffuse: "D", Specular: Some(""), Normal: None[string]()},
				Refinements:  Some(Refinements{}),
			},
			"Bare": {
				BaseMaterial: "B",
				Desc:         "D",
				Passes:       Passes{Diffuse: "D"},
			},
			"Glass": {
				BaseMaterial: "G",
				Desc:         "Glass",
				Passes:       Passes{Diffuse: "D", Normal: Some("N")},
				Refinements:  Some(Refinements{Reflective: Some(""), Glass: Some("Glass")}),
			},
		},
		Mapping: map[string][]Mapping{
			"X": {
				{Material: "Glass", Refinement: Some("")},
				{Material: "Bare"},
				{Material: "Empty"},
			},
			"Nothing": {},
		},
	}

	for _, s := range []Syntax{SyntaxJSON, SyntaxYAML} {
		t.Run(string(s), func(t *testing.T) {
			out, err := Format(want, &EncodeOptions{Syntax: s})
			require.NoError(t, err)

			got, err := Parse(out, &DecodeOptions{Syntax: s})
			require.NoError(t, err)
			require.True(t, want.Equal(got), "round-trip mismatch:\n%s\n%s", out, spew.Sdump(got))

			assert.True(t, got.Materials["Empty"].Refinements.IsSet())
			assert.False(t, got.Materials["Bare"].Refinements.IsSet())
			assert.Equal(t, Some(""), got.Materials["Glass"].Refinement(RefinementReflective))
		})
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := Format(referenceData(), nil)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "{\n    \"mapping\": {"), s)
	assert.True(t, strings.HasSuffix(s, "}\n"), s)
	assert.NotContains(t, s, "null")

	out, err = Format(referenceData(), &EncodeOptions{Indent: "\t"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "{\n\t\"mapping\": {"))
}

func TestFormatUnknownSyntax(t *testing.T) {
	_, err := Format(referenceData(), &EncodeOptions{Syntax: "xml"})
	assert.ErrorIs(t, err, ErrUnknownSyntax)
}

func TestEncodeFileDecodeFile(t *testing.T) {
	dir := t.TempDir()
	want := referenceData()

	for _, name := range []string{"out.json", "out.yml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, EncodeFile(path, want, nil))

			got, err := DecodeFile(path, nil)
			require.NoError(t, err)
			assert.True(t, want.Equal(got))
		})
	}
}

func TestDecodeFileErrors(t *testing.T) {
	_, err := DecodeFile(filepath.Join("testdata", "data.xml"), nil)
	assert.ErrorIs(t, err, ErrUnknownSyntax)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"materials": {}}`), 0o600))
	_, err = DecodeFile(path, nil)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), path)
}

func TestSyntaxFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Syntax
		wantErr bool
	}{
		{path: "materials.json", want: SyntaxJSON},
		{path: "dir/Materials.JSON", want: SyntaxJSON},
		{path: "materials.yaml", want: SyntaxYAML},
		{path: "materials.yml", want: SyntaxYAML},
		{path: "materials.toml", want: SyntaxTOML},
		{path: "materials.rvmat", wantErr: true},
		{path: "materials", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := SyntaxFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSyntax)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
