package urgency

import "sort"

// Priority represents the urgency tier of an action item.
type Priority string

const (
	// PriorityHigh indicates an item requiring immediate action.
	PriorityHigh Priority = "high"

	// PriorityMedium indicates an item that should be handled soon.
	PriorityMedium Priority = "medium"

	// PriorityLow indicates an upcoming item surfaced for planning.
	PriorityLow Priority = "low"
)

// Rank returns the numeric rank of the priority; higher is more urgent.
// Returns 0 for invalid priorities.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid returns true if the priority is valid.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// ActionItem is a single user-facing, prioritized thing to do, aggregated
// from the records matching one classification rule.
type ActionItem struct {
	// ID identifies the emitting rule; stable across refreshes so consumers
	// can de-duplicate and track items.
	ID string `json:"id"`

	// Priority is the urgency tier embedded by the emitting rule.
	Priority Priority `json:"priority"`

	// Label is the human-readable summary, with the record count pluralized
	// in.
	Label string `json:"label"`

	// CTALabel is the call-to-action button text.
	CTALabel string `json:"cta_label"`

	// NavTarget is the opaque navigation key for the target screen; the
	// engine threads it through without interpreting it.
	NavTarget string `json:"nav_target"`

	// Count is the number of underlying records aggregated into this item.
	Count int `json:"count"`
}

// Dedupe returns the items with duplicate IDs removed, keeping the first
// occurrence and preserving order.
func Dedupe(items []ActionItem) []ActionItem {
	seen := make(map[string]bool, len(items))
	out := make([]ActionItem, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

// SortByPriority stable-sorts items from highest to lowest priority,
// preserving insertion order within a tier. Classification output is in
// rule-declaration order; callers needing strict priority order apply this
// themselves.
func SortByPriority(items []ActionItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() > items[j].Priority.Rank()
	})
}
