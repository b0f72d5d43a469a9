// Package urgency normalizes records from unrelated domains (pesticide
// applications, PUR reporting state, water test schedules, disease alerts)
// into a single prioritized action-item list for the console's urgent-action
// banner.
//
// Each rule aggregates its matching records into at most one item (counts
// are pluralized into the label, never exploded into one item per record)
// and rules are evaluated against an explicit "now" passed by the caller, so
// classification is deterministic and testable. Missing or unparsable dates
// make the owning rule skip the record rather than fail: the banner degrades
// to showing nothing, it never crashes.
//
// Output order is rule-declaration order with the priority embedded per
// rule. Callers that need strict priority-sorted output apply SortByPriority
// themselves.
package urgency
