package vivy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Syntax names a text syntax a Vivy document can be stored in.
type Syntax string

const (
	// SyntaxJSON is the native JSON form.
	SyntaxJSON Syntax = "json"
	// SyntaxYAML is YAML with the same structure.
	SyntaxYAML Syntax = "yaml"
	// SyntaxTOML is TOML with the same structure; mapping lists become arrays of tables.
	SyntaxTOML Syntax = "toml"
)

// SyntaxFromPath detects the syntax from a file extension.
func SyntaxFromPath(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SyntaxJSON, nil
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	case ".toml":
		return SyntaxTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSyntax, filepath.Ext(path))
	}
}

// readTree reads raw text into a generic tree.
func readTree(r io.Reader, s Syntax) (any, error) {
	var tree any
	switch s {
	case "", SyntaxJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&tree); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		// Reject trailing data after the document.
		if dec.More() {
			return nil, errors.New("json: unexpected data after document")
		}

	case SyntaxYAML:
		if err := yaml.NewDecoder(r).Decode(&tree); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("yaml: empty document")
			}
			return nil, fmt.Errorf("yaml: %w", err)
		}

	case SyntaxTOML:
		var m map[string]any
		if err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
		tree = m

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSyntax, string(s))
	}

	return tree, nil
}

// writeTree writes a generic tree as raw text.
func writeTree(w io.Writer, tree map[string]any, opt EncodeOptions) error {
	switch opt.Syntax {
	case "", SyntaxJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", opt.Indent)
		return enc.Encode(tree)

	case SyntaxYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(opt.yamlIndent())
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()

	case SyntaxTOML:
		return toml.NewEncoder(w).Encode(tree)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownSyntax, string(opt.Syntax))
	}
}
