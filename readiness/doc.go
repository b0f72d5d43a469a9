// Package readiness rolls compliance module scores up into per-category and
// overall readiness metrics for the certification dashboard.
//
// Scores are integers in [0,100], joined against the module catalog by key.
// A module with no reported score counts as 0 (not started), which is the
// worst case and therefore drives attention correctly. Every derived value
// is a pure projection recomputed from its inputs on each call; nothing is
// cached or persisted.
package readiness
