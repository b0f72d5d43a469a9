// Package tier provides threshold classification shared by every rollup in
// the compliance engine.
//
// A Scale is an ordered list of inclusive-lower boundaries evaluated from the
// highest threshold down; the first boundary a value meets or exceeds wins.
// Two canonical scales are defined:
//
//   - Readiness: good (>= 80), warning (60-79), critical (< 60). Used for
//     category and overall dashboard status.
//   - Pipeline: not_started (<= 0), in_progress (1-79), compliant (>= 80).
//     Used for per-module lifecycle state.
//
// The 60 and 80 cutoffs appear in several rollups across the console; this
// package is their single home (ReadyScore and GoodScore).
package tier
