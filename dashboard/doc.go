// Package dashboard is the single-pass facade over the engine: one Build
// call turns the console's materialized input snapshot into the category
// rollups, the worst-case risk level, and the urgent-action list.
//
// Build is pure with respect to its inputs (identical inputs always yield
// an identical snapshot) and safe to call on every refresh tick. The only
// side effects are OpenTelemetry spans and counters recorded through the
// global providers (see the telemetry package for a collector-free setup).
package dashboard
