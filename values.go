package vivy

import (
	"strconv"
)

// valueKind represents the structural kind of a generic tree value.
type valueKind int

const (
	// valueNull indicates a null or missing value.
	valueNull valueKind = iota
	// valueString indicates a string.
	valueString
	// valueObject indicates a string-keyed object.
	valueObject
	// valueArray indicates an array.
	valueArray
	// valueScalar indicates any other scalar (number, bool, time).
	valueScalar
)

// String returns the kind name used in error messages.
func (k valueKind) String() string {
	switch k {
	case valueNull:
		return "null"
	case valueString:
		return "string"
	case valueObject:
		return "object"
	case valueArray:
		return "array"
	default:
		return "scalar"
	}
}

// kindOf classifies a value produced by a generic JSON, YAML or TOML decoder.
func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return valueNull
	case string:
		return valueString
	case map[string]any:
		return valueObject
	case []any:
		return valueArray
	default:
		return valueScalar
	}
}

// joinKey appends an object key to a document path.
func joinKey(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

// joinIndex appends an array index to a document path.
func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
