package vivy

import "errors"

var (
	// ErrMissingField indicates a required key is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformed indicates a value has the wrong structural type.
	ErrMalformed = errors.New("malformed value")

	// ErrUnknownKey indicates an unrecognized key when unknown keys are disallowed.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownName indicates an external name absent from the mapping table.
	ErrUnknownName = errors.New("unknown external name")

	// ErrDanglingReference indicates a mapping entry names a material that does not exist.
	ErrDanglingReference = errors.New("dangling material reference")

	// ErrUnknownSyntax indicates an unsupported document syntax.
	ErrUnknownSyntax = errors.New("unknown syntax")
)

// PathError records a decode failure and where in the document it happened.
type PathError struct {
	Path string // Dotted path to the offending value, e.g. materials.PBR.passes.diffuse
	Err  error  // Underlying error, one of the sentinels above
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
