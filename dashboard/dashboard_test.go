package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlogix/compliance/readiness"
	"github.com/farmlogix/compliance/registry"
	"github.com/farmlogix/compliance/risk"
	"github.com/farmlogix/compliance/tier"
	"github.com/farmlogix/compliance/urgency"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(registry.Default())
	require.NoError(t, err)
	return b
}

func fullScores(score int) readiness.ScoreMap {
	scores := readiness.ScoreMap{}
	for _, m := range registry.Default().Modules() {
		scores[m.Key] = score
	}
	return scores
}

func TestBuilder_Build(t *testing.T) {
	b := testBuilder(t)

	snap, err := b.Build(context.Background(), Inputs{
		Scores: fullScores(90),
		RiskFindings: []risk.Finding{
			{Key: "water_access", Vulnerable: true, Severity: risk.SeverityMedium},
		},
		Urgency: urgency.Sources{
			Applications: []urgency.Application{
				{ID: "a1", Status: urgency.StatusPendingSignature},
			},
		},
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, testNow, snap.GeneratedAt)
	assert.Equal(t, 90, snap.OverallScore)
	assert.Equal(t, tier.TierGood, snap.OverallStatus)
	assert.Len(t, snap.Categories, len(registry.AllCategories()))
	assert.Equal(t, risk.SeverityMedium, snap.RiskLevel)
	assert.False(t, snap.RiskOverridden)
	require.Len(t, snap.Actions, 1)
	assert.Equal(t, "pending_signatures", snap.Actions[0].ID)
}

func TestBuilder_Build_SuppliedOverallScoreWins(t *testing.T) {
	b := testBuilder(t)

	supplied := 55
	snap, err := b.Build(context.Background(), Inputs{
		Scores:       fullScores(90),
		OverallScore: &supplied,
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 55, snap.OverallScore)
	assert.Equal(t, tier.TierCritical, snap.OverallStatus)
}

func TestBuilder_Build_AssessmentSessionOwnsRiskLevel(t *testing.T) {
	b := testBuilder(t)

	a := risk.NewAssessment("romaine", []risk.Finding{
		{Key: "water_access", Vulnerable: true, Severity: risk.SeverityLow},
	})
	a.SetOverride(risk.SeverityHigh)

	snap, err := b.Build(context.Background(), Inputs{
		Scores: fullScores(90),
		RiskFindings: []risk.Finding{
			{Key: "water_access", Vulnerable: true, Severity: risk.SeverityLow},
		},
		RiskAssessment: a,
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, risk.SeverityHigh, snap.RiskLevel)
	assert.True(t, snap.RiskOverridden)
}

func TestBuilder_Build_EmptyInputs(t *testing.T) {
	b := testBuilder(t)

	snap, err := b.Build(context.Background(), Inputs{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.OverallScore)
	assert.Equal(t, tier.TierCritical, snap.OverallStatus)
	assert.Equal(t, risk.SeverityLow, snap.RiskLevel, "absence of risk floors at low")
	assert.Empty(t, snap.Actions)
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	b := testBuilder(t)

	in := Inputs{
		Scores: readiness.ScoreMap{"training_matrix": 45, "water_testing": 88},
		Urgency: urgency.Sources{
			WaterSources: []urgency.WaterSource{
				{ID: "w1", LastTestDate: "2026-02-01", TestFrequencyDays: 30},
			},
		},
	}

	first, err := b.Build(context.Background(), in, testNow)
	require.NoError(t, err)
	second, err := b.Build(context.Background(), in, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	b := testBuilder(t)

	orig, err := b.Build(context.Background(), Inputs{
		Scores: readiness.ScoreMap{"training_matrix": 72},
		Urgency: urgency.Sources{
			Applications: []urgency.Application{
				{ID: "a1", Status: urgency.StatusComplete},
			},
		},
	}, testNow)
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, orig, decoded)
}
