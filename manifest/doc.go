// Package manifest provides loading and parsing of catalog.yaml files:
// configuration-driven compliance catalogs for operations that track a
// checklist different from the built-in one.
//
// A manifest lists modules (key, label, category, navigation target) and may
// attach a gap rule to each as a CEL expression over the domain blob. Parsed
// manifests build a fully validated registry.Registry, so configuration
// mistakes surface at load time rather than at render time.
package manifest
