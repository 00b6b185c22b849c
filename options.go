package vivy

import (
	"log/slog"
	"strings"
)

// DecodeOptions controls decoding behavior.
type DecodeOptions struct {
	// Logger receives debug records about ignored keys and decoded documents.
	// Nothing is logged when nil.
	Logger *slog.Logger
	// Syntax selects the text syntax for Parse and Decode (default is JSON).
	// DecodeFile detects it from the file extension when empty.
	Syntax Syntax
	// DisallowUnknownKeys fails decoding on keys outside the document grammar
	// instead of ignoring them.
	DisallowUnknownKeys bool
}

// EncodeOptions controls writer formatting.
type EncodeOptions struct {
	// Syntax selects the text syntax for Format and Encode (default is JSON).
	// EncodeFile detects it from the file extension when empty.
	Syntax Syntax
	// Indent is the indentation string for nested JSON objects (default is four spaces).
	// YAML output uses its width.
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableReferenceCheck disables checks that mapping entries name existing materials.
	DisableReferenceCheck bool
	// DisableRefinementCheck disables checks of mapping refinement names against
	// known kinds and the referenced material's refinements.
	DisableRefinementCheck bool
	// DisableTargetCheck disables checks that refinement values name a known
	// material or external name.
	DisableTargetCheck bool
	// DisableShadowCheck disables warnings about unreachable unrefined entries.
	DisableShadowCheck bool
}

// normalize normalizes the DecodeOptions.
func (o *DecodeOptions) normalize() DecodeOptions {
	if o == nil {
		return DecodeOptions{Logger: discardLogger}
	}

	out := *o
	if out.Logger == nil {
		out.Logger = discardLogger
	}

	return out
}

// normalize normalizes the EncodeOptions.
func (o *EncodeOptions) normalize() EncodeOptions {
	if o == nil {
		return EncodeOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}

// yamlIndent returns the YAML indent width derived from Indent.
func (o EncodeOptions) yamlIndent() int {
	n := len(strings.ReplaceAll(o.Indent, "\t", "    "))
	if n < 2 {
		return 2
	}

	return n
}

var discardLogger = slog.New(slog.DiscardHandler)
