package risk

import (
	"time"

	"github.com/google/uuid"
)

// Finding represents one specific vulnerability sub-type within a composite
// risk assessment.
type Finding struct {
	// Key identifies the vulnerability type (e.g., "supplier_concentration",
	// "water_access", "seasonal_labor").
	Key string `json:"key"`

	// Vulnerable indicates whether this vulnerability applies to the
	// operation.
	Vulnerable bool `json:"vulnerable"`

	// Severity is the severity assigned to this finding. Only consulted when
	// Vulnerable is true.
	Severity Severity `json:"severity"`

	// Mitigation describes the mitigation in place or planned.
	Mitigation string `json:"mitigation,omitempty"`
}

// DeriveOverall computes the overall severity for a set of findings using a
// high-water-mark rule: the maximum severity among vulnerable findings wins.
// Non-vulnerable findings never contribute. With no vulnerable findings the
// result is SeverityLow, the floor, not "unknown".
func DeriveOverall(findings []Finding) Severity {
	overall := SeverityLow
	for _, f := range findings {
		if !f.Vulnerable {
			continue
		}
		overall = MaxSeverity(overall, f.Severity)
	}
	return overall
}

// Assessment is a named set of findings plus the derived (or manually
// overridden) overall severity for one risk record.
//
// An Assessment is the analogue of one open assessment form: it is confined
// to a single edit session and is not safe for concurrent use.
type Assessment struct {
	// ID is a unique identifier for the assessment.
	ID string `json:"id"`

	// Name labels the assessment (e.g., the commodity or operation assessed).
	Name string `json:"name"`

	// Findings are the vulnerability findings, in declaration order.
	Findings []Finding `json:"findings"`

	// Overall is the displayed overall severity. Derived from the findings
	// while in automatic mode, frozen while manually overridden.
	Overall Severity `json:"overall_severity"`

	// ManualOverride is true when the user has explicitly chosen the overall
	// severity. It survives until UseSuggested is called or the assessment is
	// replaced from the data source.
	ManualOverride bool `json:"is_manual_override"`

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAssessment creates an assessment in automatic mode with the overall
// severity derived from the given findings.
func NewAssessment(name string, findings []Finding) *Assessment {
	return &Assessment{
		ID:        uuid.New().String(),
		Name:      name,
		Findings:  findings,
		Overall:   DeriveOverall(findings),
		UpdatedAt: time.Now(),
	}
}

// SetFinding upserts a finding by key. While in automatic mode the overall
// severity is re-derived immediately; while overridden the displayed severity
// is left untouched.
func (a *Assessment) SetFinding(f Finding) {
	replaced := false
	for i := range a.Findings {
		if a.Findings[i].Key == f.Key {
			a.Findings[i] = f
			replaced = true
			break
		}
	}
	if !replaced {
		a.Findings = append(a.Findings, f)
	}

	if !a.ManualOverride {
		a.Overall = DeriveOverall(a.Findings)
	}
	a.UpdatedAt = time.Now()
}

// SetOverride pins the overall severity to an explicit user choice and enters
// manual mode. Subsequent finding edits no longer recompute the displayed
// severity. Invalid severities are ignored; the surrounding form constrains
// input to the enum, so there is no error path here.
func (a *Assessment) SetOverride(s Severity) {
	if !s.IsValid() {
		return
	}
	a.Overall = s
	a.ManualOverride = true
	a.UpdatedAt = time.Now()
}

// UseSuggested exits manual mode, re-deriving the overall severity from the
// current findings.
func (a *Assessment) UseSuggested() {
	a.ManualOverride = false
	a.Overall = DeriveOverall(a.Findings)
	a.UpdatedAt = time.Now()
}

// Suggested returns the severity the derivation rule would produce for the
// current findings, regardless of override state.
func (a *Assessment) Suggested() Severity {
	return DeriveOverall(a.Findings)
}
