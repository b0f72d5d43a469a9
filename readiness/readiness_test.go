package readiness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlogix/compliance/registry"
	"github.com/farmlogix/compliance/tier"
)

func testAggregator(t *testing.T) *Aggregator {
	t.Helper()
	return NewAggregator(registry.Default())
}

func TestAggregator_Category(t *testing.T) {
	a := testAggregator(t)

	// management has four modules in the default catalog.
	scores := ScoreMap{
		"food_safety_plan":  90,
		"document_control":  60, // exactly at the boundary: ready
		"internal_audits":   45,
		"management_review": 0,
	}
	data := registry.Blob{
		"audits": map[string]any{"quarters_completed": float64(2)},
	}

	cr, err := a.Category(registry.CategoryManagement, scores, data)
	require.NoError(t, err)

	assert.Equal(t, 4, cr.TotalCount)
	assert.Equal(t, 2, cr.ReadyCount, "a module at exactly 60 is ready")
	assert.Len(t, cr.Gaps, 2)
	assert.Equal(t, cr.TotalCount, cr.ReadyCount+len(cr.Gaps),
		"ready + needs-attention must equal total")

	// round((90+60+45+0)/4) = round(48.75) = 49
	assert.Equal(t, 49, cr.AverageScore)
	assert.Equal(t, tier.TierCritical, cr.Status)

	// The audits gap uses the detector hint; the unreported module falls
	// back to the generic score label.
	hints := map[string]string{}
	for _, g := range cr.Gaps {
		hints[g.Key] = g.Hint
	}
	assert.Equal(t, "2 of 4 quarterly audits completed", hints["internal_audits"])
	assert.Equal(t, "Score: 0%", hints["management_review"])
}

func TestAggregator_Category_MissingScoresCountAsZero(t *testing.T) {
	a := testAggregator(t)

	cr, err := a.Category(registry.CategoryTraining, ScoreMap{}, registry.Blob{})
	require.NoError(t, err)

	assert.Equal(t, 0, cr.ReadyCount)
	assert.Equal(t, 0, cr.AverageScore)
	assert.Equal(t, cr.TotalCount, len(cr.Gaps))
	assert.Equal(t, tier.TierCritical, cr.Status)
}

func TestAggregator_Category_UnknownCategory(t *testing.T) {
	a := testAggregator(t)

	_, err := a.Category(registry.CategoryKey("paperwork"), ScoreMap{}, registry.Blob{})
	assert.Error(t, err)
}

func TestAggregator_CategoryStatusTiers(t *testing.T) {
	a := testAggregator(t)

	tests := []struct {
		name  string
		score int
		want  tier.Tier
	}{
		{"all modules at 100 is good", 100, tier.TierGood},
		{"all modules at 80 is good", 80, tier.TierGood},
		{"all modules at 70 is warning", 70, tier.TierWarning},
		{"all modules at 60 is warning", 60, tier.TierWarning},
		{"all modules at 59 is critical", 59, tier.TierCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := ScoreMap{}
			for _, m := range registry.Default().ModulesByCategory(registry.CategoryTraining) {
				scores[m.Key] = tt.score
			}
			cr, err := a.Category(registry.CategoryTraining, scores, registry.Blob{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cr.Status)
		})
	}
}

func TestAggregator_All(t *testing.T) {
	a := testAggregator(t)

	cats, err := a.All(ScoreMap{}, registry.Blob{})
	require.NoError(t, err)
	require.Len(t, cats, len(registry.AllCategories()))

	for i, c := range registry.AllCategories() {
		assert.Equal(t, c, cats[i].Category, "categories must come back in display order")
	}
}

func TestOverallScore(t *testing.T) {
	cats := []CategoryReadiness{
		{AverageScore: 80},
		{AverageScore: 70},
		{AverageScore: 61},
	}

	t.Run("supplied score wins", func(t *testing.T) {
		supplied := 42
		assert.Equal(t, 42, OverallScore(&supplied, cats))
	})

	t.Run("fallback is unweighted mean of category averages", func(t *testing.T) {
		// round((80+70+61)/3) = round(70.33) = 70
		assert.Equal(t, 70, OverallScore(nil, cats))
	})

	t.Run("no categories yields zero", func(t *testing.T) {
		assert.Equal(t, 0, OverallScore(nil, nil))
	})
}

func TestModuleTier(t *testing.T) {
	assert.Equal(t, tier.TierNotStarted, ModuleTier(0))
	assert.Equal(t, tier.TierInProgress, ModuleTier(40))
	assert.Equal(t, tier.TierCompliant, ModuleTier(80))
}

func TestCategoryReadiness_JSONRoundTrip(t *testing.T) {
	a := testAggregator(t)

	orig, err := a.All(ScoreMap{"training_matrix": 72, "internal_audits": 88}, registry.Blob{})
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded []CategoryReadiness
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, orig, decoded, "serialization must reproduce identical values")
}
