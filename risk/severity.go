package risk

import "fmt"

// Severity represents the severity level of a vulnerability finding.
type Severity string

const (
	// SeverityHigh indicates a vulnerability requiring immediate mitigation.
	// Examples: single uncontracted supplier for a key input, open access to
	// water sources
	SeverityHigh Severity = "high"

	// SeverityMedium indicates a vulnerability that needs a documented
	// mitigation plan.
	// Examples: seasonal labor spikes without verification, partial
	// traceability gaps
	SeverityMedium Severity = "medium"

	// SeverityLow indicates a vulnerability that is monitored but acceptable.
	// Examples: long-standing suppliers with spot checks, sealed storage
	SeverityLow Severity = "low"
)

// severityWeights maps severity levels to numeric weights for comparison and
// prioritization. Higher weights indicate more severe findings.
var severityWeights = map[Severity]int{
	SeverityHigh:   3,
	SeverityMedium: 2,
	SeverityLow:    1,
}

// IsValid returns true if the severity level is valid.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Weight returns the numeric weight associated with the severity level.
// Returns 0 for invalid severity levels.
func (s Severity) Weight() int {
	if weight, ok := severityWeights[s]; ok {
		return weight
	}
	return 0
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity level.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}

// CompareSeverity compares two severity levels.
// Returns:
//   - negative if s1 < s2
//   - zero if s1 == s2
//   - positive if s1 > s2
func CompareSeverity(s1, s2 Severity) int {
	return s1.Weight() - s2.Weight()
}

// MaxSeverity returns the more severe of two severity levels.
func MaxSeverity(s1, s2 Severity) Severity {
	if CompareSeverity(s1, s2) >= 0 {
		return s1
	}
	return s2
}

// AllSeverities returns all valid severity levels in order from high to low.
func AllSeverities() []Severity {
	return []Severity{
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}
