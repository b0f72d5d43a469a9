package urgency

import (
	"fmt"
	"math"
	"time"
)

// Application status values as reported by the applications source.
const (
	// StatusPendingSignature marks an application awaiting the applicator's
	// signature.
	StatusPendingSignature = "pending_signature"

	// StatusComplete marks a finished application.
	StatusComplete = "complete"
)

// PUR (Pesticide Use Report) status values.
const (
	// PURSubmitted marks a record already submitted to the PUR system.
	PURSubmitted = "submitted_to_pur"

	// PURDraft marks a report started but not yet filed.
	PURDraft = "draft"
)

// Disease alert priority values that surface on the banner.
const (
	AlertPriorityCritical = "critical"
	AlertPriorityHigh     = "high"
)

// DueSoonWindowDays is the look-ahead window for water tests that are coming
// due but not yet overdue.
const DueSoonWindowDays = 7

// Application is a pesticide application record.
type Application struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	PURStatus string `json:"pur_status,omitempty"`
}

// ApplicationEvent is a PUR reporting event attached to an application.
type ApplicationEvent struct {
	ID        string `json:"id"`
	PURStatus string `json:"pur_status"`
}

// WaterSource is a water source with its testing schedule. LastTestDate is
// an ISO date string; an empty or unparsable date means the schedule rules
// do not fire for this source.
type WaterSource struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	LastTestDate      string `json:"last_test_date"`
	TestFrequencyDays int    `json:"test_frequency_days"`
}

// DiseaseAlert is a crop disease alert from the monitoring feed.
type DiseaseAlert struct {
	ID       string `json:"id"`
	Active   bool   `json:"is_active"`
	Priority string `json:"priority"`
}

// Sources are the labeled record arrays the classifier consumes. All arrays
// may be empty or nil.
type Sources struct {
	Applications      []Application      `json:"applications"`
	ApplicationEvents []ApplicationEvent `json:"application_events"`
	WaterSources      []WaterSource      `json:"water_sources"`
	DiseaseAlerts     []DiseaseAlert     `json:"disease_alerts"`
}

// Classify reduces the source records to the banner's action-item list. All
// rules are independent, evaluated against the supplied now, and each emits
// zero or one aggregated item. Output is in rule-declaration order; the
// priority tier is embedded per rule.
func Classify(s Sources, now time.Time) []ActionItem {
	var items []ActionItem

	// Applications awaiting signature.
	if n := countApplications(s.Applications, func(a Application) bool {
		return a.Status == StatusPendingSignature
	}); n > 0 {
		items = append(items, ActionItem{
			ID:        "pending_signatures",
			Priority:  PriorityHigh,
			Label:     fmt.Sprintf("%d %s awaiting signature", n, plural(n, "application", "applications")),
			CTALabel:  "Review & Sign",
			NavTarget: "applications/pending",
			Count:     n,
		})
	}

	// Overdue water tests. The worst-case lag drives the headline number;
	// the count reflects all offending sources.
	if n, lag := overdueWater(s.WaterSources, now); n > 0 {
		items = append(items, ActionItem{
			ID:       "water_tests_overdue",
			Priority: PriorityHigh,
			Label: fmt.Sprintf("%d water %s overdue for testing (%d %s past due)",
				n, plural(n, "source", "sources"), lag, plural(lag, "day", "days")),
			CTALabel:  "Schedule Test",
			NavTarget: "water/testing",
			Count:     n,
		})
	}

	// Completed applications not yet submitted to PUR.
	if n := countApplications(s.Applications, func(a Application) bool {
		return a.Status == StatusComplete && a.PURStatus != PURSubmitted
	}); n > 0 {
		items = append(items, ActionItem{
			ID:        "pur_submissions_pending",
			Priority:  PriorityMedium,
			Label:     fmt.Sprintf("%d %s ready for PUR submission", n, plural(n, "application", "applications")),
			CTALabel:  "Submit to PUR",
			NavTarget: "pur/export",
			Count:     n,
		})
	}

	// Draft PUR reports.
	if n := countEvents(s.ApplicationEvents, func(e ApplicationEvent) bool {
		return e.PURStatus == PURDraft
	}); n > 0 {
		items = append(items, ActionItem{
			ID:        "pur_drafts",
			Priority:  PriorityMedium,
			Label:     fmt.Sprintf("%d draft PUR %s", n, plural(n, "report", "reports")),
			CTALabel:  "Finish Report",
			NavTarget: "pur/drafts",
			Count:     n,
		})
	}

	// Active high-priority disease alerts.
	if n := countAlerts(s.DiseaseAlerts, func(a DiseaseAlert) bool {
		return a.Active && (a.Priority == AlertPriorityCritical || a.Priority == AlertPriorityHigh)
	}); n > 0 {
		items = append(items, ActionItem{
			ID:        "disease_alerts",
			Priority:  PriorityHigh,
			Label:     fmt.Sprintf("%d active disease %s", n, plural(n, "alert", "alerts")),
			CTALabel:  "View Alerts",
			NavTarget: "alerts/disease",
			Count:     n,
		})
	}

	// Water tests coming due within the next week but not yet overdue.
	if n := dueSoonWater(s.WaterSources, now); n > 0 {
		items = append(items, ActionItem{
			ID:        "water_tests_due_soon",
			Priority:  PriorityLow,
			Label:     fmt.Sprintf("%d water %s due within %d days", n, plural(n, "test", "tests"), DueSoonWindowDays),
			CTALabel:  "Schedule Test",
			NavTarget: "water/testing",
			Count:     n,
		})
	}

	return items
}

func countApplications(apps []Application, match func(Application) bool) int {
	n := 0
	for _, a := range apps {
		if match(a) {
			n++
		}
	}
	return n
}

func countEvents(events []ApplicationEvent, match func(ApplicationEvent) bool) int {
	n := 0
	for _, e := range events {
		if match(e) {
			n++
		}
	}
	return n
}

func countAlerts(alerts []DiseaseAlert, match func(DiseaseAlert) bool) int {
	n := 0
	for _, a := range alerts {
		if match(a) {
			n++
		}
	}
	return n
}

// overdueWater counts sources whose last test is older than their test
// frequency and returns the worst-case lag in days across them.
func overdueWater(sources []WaterSource, now time.Time) (count, worstLag int) {
	for _, w := range sources {
		since, ok := daysSince(w.LastTestDate, now)
		if !ok || w.TestFrequencyDays <= 0 {
			continue
		}
		if since > w.TestFrequencyDays {
			count++
			if lag := since - w.TestFrequencyDays; lag > worstLag {
				worstLag = lag
			}
		}
	}
	return count, worstLag
}

// dueSoonWater counts sources due within the look-ahead window but not yet
// overdue.
func dueSoonWater(sources []WaterSource, now time.Time) int {
	n := 0
	for _, w := range sources {
		since, ok := daysSince(w.LastTestDate, now)
		if !ok || w.TestFrequencyDays <= 0 {
			continue
		}
		remaining := w.TestFrequencyDays - since
		if remaining > 0 && remaining <= DueSoonWindowDays {
			n++
		}
	}
	return n
}

// daysSince parses an ISO date string and returns the whole days elapsed to
// now. Unparsable or empty dates report not-ok so the owning rule simply
// does not fire.
func daysSince(date string, now time.Time) (int, bool) {
	t, ok := parseDate(date)
	if !ok {
		return 0, false
	}
	return int(math.Floor(now.Sub(t).Hours() / 24)), true
}

// dateLayouts are the accepted ISO date forms, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
