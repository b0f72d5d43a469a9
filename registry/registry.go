package registry

import (
	"fmt"

	"github.com/farmlogix/compliance"
)

// Registry is the validated, immutable catalog of compliance modules.
type Registry struct {
	modules    []Module
	byKey      map[string]int
	byCategory map[CategoryKey][]int
}

// New builds a registry from the given modules, failing fast on structural
// invariant violations: empty or duplicate keys, unknown categories, and
// categories left without a single module. Construction is the only place
// these are errors; at aggregation time the catalog is trusted.
func New(modules ...Module) (*Registry, error) {
	const op = "registry.New"

	if len(modules) == 0 {
		return nil, compliance.NewValidationError(op, fmt.Errorf("at least one module is required"))
	}

	r := &Registry{
		modules:    make([]Module, 0, len(modules)),
		byKey:      make(map[string]int, len(modules)),
		byCategory: make(map[CategoryKey][]int),
	}

	for _, m := range modules {
		if err := m.Validate(); err != nil {
			if !m.Category.IsValid() {
				return nil, compliance.NewValidationError(op, compliance.ErrUnknownCategory).
					WithContext(map[string]any{"module": m.Key, "category": string(m.Category)})
			}
			return nil, compliance.NewValidationError(op, err)
		}
		if _, exists := r.byKey[m.Key]; exists {
			return nil, compliance.NewValidationError(op, compliance.ErrDuplicateModule).
				WithContext(map[string]any{"module": m.Key})
		}

		idx := len(r.modules)
		r.modules = append(r.modules, m)
		r.byKey[m.Key] = idx
		r.byCategory[m.Category] = append(r.byCategory[m.Category], idx)
	}

	for _, c := range AllCategories() {
		if len(r.byCategory[c]) == 0 {
			return nil, compliance.NewValidationError(op, compliance.ErrEmptyCategory).
				WithContext(map[string]any{"category": string(c)})
		}
	}

	return r, nil
}

// Len returns the total number of registered modules.
func (r *Registry) Len() int {
	return len(r.modules)
}

// Modules returns all modules in registration order.
func (r *Registry) Modules() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Module returns the module registered under key.
func (r *Registry) Module(key string) (Module, error) {
	idx, ok := r.byKey[key]
	if !ok {
		return Module{}, compliance.NewNotFoundError("Registry.Module", compliance.ErrModuleNotFound).
			WithContext(map[string]any{"module": key})
	}
	return r.modules[idx], nil
}

// ModulesByCategory returns the modules belonging to the given category in
// registration order. Unknown categories yield an empty slice.
func (r *Registry) ModulesByCategory(category CategoryKey) []Module {
	idxs := r.byCategory[category]
	out := make([]Module, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.modules[i])
	}
	return out
}

// GapText returns the remediation hint for a module, falling back to a
// generic score label when the module has no detector, the detector cannot
// determine a gap, or the key is unknown. It never returns an empty string
// and never panics: a misbehaving detector degrades to the generic label.
func (r *Registry) GapText(key string, data Blob, score int) string {
	fallback := fmt.Sprintf("Score: %d%%", score)

	idx, ok := r.byKey[key]
	if !ok {
		return fallback
	}

	m := r.modules[idx]
	if m.Detector == nil {
		return fallback
	}

	if hint := safeDetect(m.Detector, data); hint != "" {
		return hint
	}
	return fallback
}

// safeDetect runs a detector with panic containment. Detectors inspect
// arbitrary nested data and must fail open, not crash a dashboard render.
func safeDetect(d GapDetector, data Blob) (hint string) {
	defer func() {
		if recover() != nil {
			hint = ""
		}
	}()
	return d(data)
}
