// Package registry provides the static catalog of compliance checklist
// modules.
//
// Each module carries a stable key, a display label, a category tag, a
// navigation target, and a gap detector: a function that inspects the
// domain data blob and returns either an empty string (requirement
// satisfied) or a short remediation hint. Detectors are only consulted for
// modules scoring below the ready threshold, and they never panic outward:
// a detector that cannot determine a gap yields the generic score-based
// label instead.
//
// The catalog is append-only static configuration validated at construction
// time; there is no runtime registration API. Catalogs can be defined in Go
// (see Default) or loaded from a YAML manifest with CEL gap expressions (see
// the manifest package and CompileDetector).
package registry
