package readiness

import (
	"fmt"
	"math"

	"github.com/farmlogix/compliance"
	"github.com/farmlogix/compliance/registry"
	"github.com/farmlogix/compliance/tier"
)

// ScoreMap maps module keys to their current 0-100 scores. Keys may be
// omitted; a missing score reads as 0.
type ScoreMap map[string]int

// Score returns the score for a module key, with missing keys reading as 0.
func (m ScoreMap) Score(key string) int {
	return m[key]
}

// ModuleGap describes one module that needs attention, with its remediation
// hint and navigation target.
type ModuleGap struct {
	// Key is the module's catalog key.
	Key string `json:"key"`

	// Label is the module's display name.
	Label string `json:"label"`

	// Score is the module's current score (0 when unreported).
	Score int `json:"score"`

	// Hint is the remediation hint from the module's gap detector, or the
	// generic score label when no specific gap could be determined.
	Hint string `json:"hint"`

	// NavTarget is the opaque navigation key for the module's screen.
	NavTarget string `json:"nav_target,omitempty"`
}

// CategoryReadiness is the derived rollup for one category. It is recomputed
// on every input change and never persisted.
type CategoryReadiness struct {
	// Category is the rollup category key.
	Category registry.CategoryKey `json:"category"`

	// Label is the category display name.
	Label string `json:"label"`

	// ReadyCount is the number of modules scoring at or above the ready
	// threshold.
	ReadyCount int `json:"ready_count"`

	// TotalCount is the fixed number of modules in the category.
	TotalCount int `json:"total_count"`

	// AverageScore is the rounded mean score across all modules in the
	// category, with unreported scores contributing 0.
	AverageScore int `json:"average_score"`

	// Status is the category's readiness tier (good/warning/critical).
	Status tier.Tier `json:"status"`

	// Gaps lists the modules needing attention, in catalog order.
	Gaps []ModuleGap `json:"gaps,omitempty"`
}

// Aggregator joins the module catalog with a score map to produce readiness
// rollups.
type Aggregator struct {
	reg *registry.Registry
}

// NewAggregator creates an aggregator over the given catalog.
func NewAggregator(reg *registry.Registry) *Aggregator {
	return &Aggregator{reg: reg}
}

// Category produces the readiness rollup for one category.
//
// Modules scoring at or above tier.ReadyScore count as ready; the boundary is
// inclusive on the ready side, so a module at exactly 60 is ready. Modules
// below the threshold contribute a ModuleGap with the detector's hint. The
// average is the rounded mean over all modules in the category.
func (a *Aggregator) Category(category registry.CategoryKey, scores ScoreMap, data registry.Blob) (CategoryReadiness, error) {
	modules := a.reg.ModulesByCategory(category)
	if len(modules) == 0 {
		// Unreachable for registry-validated categories; guards the average
		// against division by zero for a category key outside the catalog.
		return CategoryReadiness{}, compliance.NewNotFoundError("Aggregator.Category",
			fmt.Errorf("category %q has no modules", category))
	}

	out := CategoryReadiness{
		Category:   category,
		Label:      category.Label(),
		TotalCount: len(modules),
	}

	sum := 0
	for _, m := range modules {
		score := scores.Score(m.Key)
		sum += score

		if score >= tier.ReadyScore {
			out.ReadyCount++
			continue
		}

		out.Gaps = append(out.Gaps, ModuleGap{
			Key:       m.Key,
			Label:     m.Label,
			Score:     score,
			Hint:      a.reg.GapText(m.Key, data, score),
			NavTarget: m.NavTarget,
		})
	}

	out.AverageScore = int(math.Round(float64(sum) / float64(len(modules))))
	out.Status = tier.Readiness.Classify(float64(out.AverageScore))

	return out, nil
}

// All produces rollups for every catalog category in display order.
func (a *Aggregator) All(scores ScoreMap, data registry.Blob) ([]CategoryReadiness, error) {
	cats := registry.AllCategories()
	out := make([]CategoryReadiness, 0, len(cats))
	for _, c := range cats {
		cr, err := a.Category(c, scores, data)
		if err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, nil
}

// OverallScore returns the cross-category readiness score. When the source
// system supplies one it is used as-is; otherwise the score is the rounded
// mean of the category averages, unweighted by category size. The unweighted
// mean is a documented simplification, not an oversight.
func OverallScore(supplied *int, categories []CategoryReadiness) int {
	if supplied != nil {
		return *supplied
	}
	if len(categories) == 0 {
		return 0
	}

	sum := 0
	for _, c := range categories {
		sum += c.AverageScore
	}
	return int(math.Round(float64(sum) / float64(len(categories))))
}

// OverallStatus classifies an overall score on the readiness scale.
func OverallStatus(score int) tier.Tier {
	return tier.Readiness.Classify(float64(score))
}

// ModuleTier classifies a single module's score on the lifecycle pipeline:
// not_started, in_progress, or compliant.
func ModuleTier(score int) tier.Tier {
	return tier.Pipeline.Classify(float64(score))
}
