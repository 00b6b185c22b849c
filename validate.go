package vivy

import "fmt"

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeDanglingMaterial        = "dangling_material"
	CodeEmptyDiffuse            = "empty_diffuse"
	CodeUnknownRefinement       = "unknown_refinement"
	CodeUndeclaredRefinement    = "undeclared_refinement"
	CodeUnknownRefinementTarget = "unknown_refinement_target"
	CodeShadowedBaseMapping     = "shadowed_base_mapping"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected value
}

// Validate checks cross references of a decoded document and returns issues.
// Decoding never performs these checks; a document with issues still decodes
// and resolves, failing only on the queries that hit a broken reference.
func Validate(d *Data, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	if d == nil {
		return nil
	}

	var out []Issue
	for _, key := range d.MaterialKeys() {
		out = append(out, validateMaterial(d, key, vopt)...)
	}
	for _, name := range d.MappingNames() {
		out = append(out, validateEntries(d, name, vopt)...)
	}

	return out
}

// validateMaterial validates one material.
func validateMaterial(d *Data, key string, opt ValidateOptions) []Issue {
	m := d.Materials[key]
	path := joinKey(keyMaterials, key)

	var out []Issue
	if m.Passes.Diffuse == "" {
		out = append(out, Issue{
			Level:   IssueError,
			Code:    CodeEmptyDiffuse,
			Message: "diffuse pass is empty",
			Path:    joinKey(joinKey(path, keyPasses), keyDiffuse),
		})
	}

	r, ok := m.Refinements.Get()
	if !ok || opt.DisableTargetCheck {
		return out
	}

	for _, k := range refinementKinds {
		target, ok := r.Get(k).Get()
		if !ok {
			continue
		}
		// A refinement may point at a material key or at an external name.
		if _, ok := d.Materials[target]; ok {
			continue
		}
		if _, ok := d.Mapping[target]; ok {
			continue
		}

		out = append(out, Issue{
			Level:   IssueWarning,
			Code:    CodeUnknownRefinementTarget,
			Message: fmt.Sprintf("refinement target %q is neither a material nor a mapped name", target),
			Path:    joinKey(joinKey(path, keyRefinements), string(k)),
		})
	}

	return out
}

// validateEntries validates the candidate list of one external name.
func validateEntries(d *Data, name string, opt ValidateOptions) []Issue {
	path := joinKey(keyMapping, name)

	var out []Issue
	bases := 0
	for i, e := range d.Mapping[name] {
		ipath := joinIndex(path, i)

		if e.IsBase() {
			bases++
			if bases > 1 && !opt.DisableShadowCheck {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    CodeShadowedBaseMapping,
					Message: "unrefined entry is unreachable, the first unrefined entry wins",
					Path:    ipath,
				})
			}
		}

		m, ok := d.Materials[e.Material]
		if !ok {
			if !opt.DisableReferenceCheck {
				out = append(out, Issue{
					Level:   IssueError,
					Code:    CodeDanglingMaterial,
					Message: fmt.Sprintf("material %q does not exist", e.Material),
					Path:    joinKey(ipath, keyMaterial),
				})
			}
			continue
		}

		if e.IsBase() || opt.DisableRefinementCheck {
			continue
		}

		ref, _ := e.Refinement.Get()
		k, known := e.Kind()
		if !known {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    CodeUnknownRefinement,
				Message: fmt.Sprintf("unknown refinement %q", ref),
				Path:    joinKey(ipath, keyRefinement),
			})
			continue
		}
		if !m.Refinement(k).IsSet() {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    CodeUndeclaredRefinement,
				Message: fmt.Sprintf("material %q does not declare refinement %q", e.Material, ref),
				Path:    joinKey(ipath, keyRefinement),
			})
		}
	}

	return out
}
