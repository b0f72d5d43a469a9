// Package compliance is the root of the farm-compliance signal aggregation
// engine: a pure, in-process library that reduces heterogeneous compliance
// records (module scores, overdue-date windows, vulnerability flags) to
// readiness metrics, a single worst-case risk level, and a ranked list of
// actionable items.
//
// The engine never performs I/O. Every entry point takes a fully-materialized
// snapshot of input data and returns plain, serializable values. Fetching
// scores, persisting forms, and rendering dashboards are the embedding
// application's responsibility.
//
// # Packages
//
//   - tier: shared threshold classification (good/warning/critical and the
//     module lifecycle pipeline).
//   - registry: the static catalog of compliance checklist modules and their
//     gap detectors.
//   - readiness: per-category and overall readiness rollups.
//   - risk: vulnerability finding aggregation with manual-override support.
//   - urgency: normalization of unrelated domain records into one prioritized
//     action-item list.
//   - manifest: YAML catalog configuration with CEL gap expressions.
//   - dashboard: the single-pass console snapshot facade.
//   - snapshot: optional Redis-backed snapshot store for server-side consoles.
//   - telemetry: OpenTelemetry tracer wiring for embedding applications.
//
// # Error Handling
//
// Data-shape problems (missing scores, unparsable dates, absent nested
// fields) never produce errors; the engine degrades to "show nothing" rather
// than crash a dashboard. Errors are reserved for programming invariant
// violations caught at construction time, such as a module referencing an
// unregistered category.
package compliance
