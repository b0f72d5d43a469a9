package registry

import "fmt"

// CategoryKey identifies a grouping of related compliance modules used for
// rollup reporting.
type CategoryKey string

const (
	// CategoryManagement covers food safety management system modules.
	CategoryManagement CategoryKey = "management"

	// CategoryTraining covers training and people modules.
	CategoryTraining CategoryKey = "training"

	// CategoryFieldOps covers growing and harvest operation modules.
	CategoryFieldOps CategoryKey = "field_ops"

	// CategorySuppliers covers supplier and input control modules.
	CategorySuppliers CategoryKey = "suppliers"

	// CategoryMonitoring covers testing and monitoring modules.
	CategoryMonitoring CategoryKey = "monitoring"

	// CategorySafety covers worker protection and incident modules.
	CategorySafety CategoryKey = "safety"
)

// IsValid returns true if the category key is part of the catalog's category
// set.
func (c CategoryKey) IsValid() bool {
	switch c {
	case CategoryManagement, CategoryTraining, CategoryFieldOps,
		CategorySuppliers, CategoryMonitoring, CategorySafety:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category key.
func (c CategoryKey) String() string {
	return string(c)
}

// Label returns the human-readable display name for the category.
func (c CategoryKey) Label() string {
	switch c {
	case CategoryManagement:
		return "Food Safety Management"
	case CategoryTraining:
		return "Training & People"
	case CategoryFieldOps:
		return "Field Operations"
	case CategorySuppliers:
		return "Suppliers & Inputs"
	case CategoryMonitoring:
		return "Testing & Monitoring"
	case CategorySafety:
		return "Worker Protection"
	default:
		return string(c)
	}
}

// AllCategories returns every category key in rollup display order.
func AllCategories() []CategoryKey {
	return []CategoryKey{
		CategoryManagement,
		CategoryTraining,
		CategoryFieldOps,
		CategorySuppliers,
		CategoryMonitoring,
		CategorySafety,
	}
}

// Blob is the read-only, JSON-like domain data handed to gap detectors. It is
// typically the decoded form of the console's domain snapshot.
type Blob map[string]any

// Int returns the integer at the given nested path. Numeric JSON values
// arrive as float64 after decoding; both forms are accepted. The second
// return value is false when the path is absent or not numeric.
func (b Blob) Int(path ...string) (int, bool) {
	v, ok := b.value(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// String returns the string at the given nested path, or false when the path
// is absent or not a string.
func (b Blob) String(path ...string) (string, bool) {
	v, ok := b.value(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Len returns the length of the slice at the given nested path, or false
// when the path is absent or not a slice.
func (b Blob) Len(path ...string) (int, bool) {
	v, ok := b.value(path)
	if !ok {
		return 0, false
	}
	s, ok := v.([]any)
	if !ok {
		return 0, false
	}
	return len(s), true
}

func (b Blob) value(path []string) (any, bool) {
	var cur any = map[string]any(b)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// GapDetector inspects the domain blob for one module and returns a short
// remediation hint, or an empty string when the requirement is satisfied or
// the gap cannot be determined from the available data.
type GapDetector func(data Blob) string

// Module describes one compliance sub-checklist tracked with an independent
// 0-100 score. Modules are immutable once registered.
type Module struct {
	// Key is the stable, unique identifier joined against the score map.
	Key string

	// Label is the display name shown in rollups and action hints.
	Label string

	// Category is the rollup grouping this module belongs to.
	Category CategoryKey

	// NavTarget is an opaque navigation key threaded through to action
	// items; the engine does not interpret it.
	NavTarget string

	// Detector is the optional gap detector for this module.
	Detector GapDetector
}

// Validate checks the module's structural invariants.
func (m Module) Validate() error {
	if m.Key == "" {
		return fmt.Errorf("module key is required")
	}
	if m.Label == "" {
		return fmt.Errorf("module %s: label is required", m.Key)
	}
	if !m.Category.IsValid() {
		return fmt.Errorf("module %s: invalid category %q", m.Key, m.Category)
	}
	return nil
}
