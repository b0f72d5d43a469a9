package dashboard

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/farmlogix/compliance/readiness"
	"github.com/farmlogix/compliance/registry"
	"github.com/farmlogix/compliance/risk"
	"github.com/farmlogix/compliance/tier"
	"github.com/farmlogix/compliance/urgency"
)

// instrumentationName identifies this package's tracer and meter.
const instrumentationName = "github.com/farmlogix/compliance/dashboard"

// Inputs is the fully-materialized data snapshot a console hands to Build.
// Fetching and refreshing this data is the caller's responsibility; Build
// performs no I/O.
type Inputs struct {
	// Scores maps module keys to their current 0-100 scores.
	Scores readiness.ScoreMap

	// Domain is the nested domain blob consumed read-only by gap detectors.
	Domain registry.Blob

	// OverallScore, when supplied by the source system, is used as-is;
	// otherwise the overall score falls back to the unweighted mean of the
	// category averages.
	OverallScore *int

	// RiskFindings are the vulnerability findings for the worst-case risk
	// banner.
	RiskFindings []risk.Finding

	// RiskAssessment, when an assessment-edit session is open, supplies the
	// displayed severity instead (it may carry a manual override).
	RiskAssessment *risk.Assessment

	// Urgency holds the labeled record arrays for the urgent-action list.
	Urgency urgency.Sources
}

// Snapshot is the complete derived console state: plain data, directly
// renderable or serializable.
type Snapshot struct {
	// GeneratedAt is the "now" the snapshot was computed against.
	GeneratedAt time.Time `json:"generated_at"`

	// OverallScore is the cross-category readiness score.
	OverallScore int `json:"overall_score"`

	// OverallStatus is the readiness tier for the overall score.
	OverallStatus tier.Tier `json:"overall_status"`

	// Categories are the per-category rollups in display order.
	Categories []readiness.CategoryReadiness `json:"categories"`

	// RiskLevel is the displayed overall risk severity.
	RiskLevel risk.Severity `json:"risk_level"`

	// RiskOverridden is true when RiskLevel comes from a manual override
	// rather than the derivation rule.
	RiskOverridden bool `json:"risk_overridden"`

	// Actions is the urgent-action list in rule-declaration order.
	Actions []urgency.ActionItem `json:"actions"`
}

// Builder computes console snapshots over a fixed module catalog.
type Builder struct {
	agg    *readiness.Aggregator
	tracer trace.Tracer

	builds      metric.Int64Counter
	actionItems metric.Int64Counter
}

// NewBuilder creates a builder over the given catalog. Instrument creation
// uses the global otel providers; with no provider configured the no-op
// implementations are used.
func NewBuilder(reg *registry.Registry) (*Builder, error) {
	meter := otel.Meter(instrumentationName)

	builds, err := meter.Int64Counter("compliance.dashboard.builds",
		metric.WithDescription("Number of dashboard snapshots computed"))
	if err != nil {
		return nil, err
	}

	actionItems, err := meter.Int64Counter("compliance.dashboard.action_items",
		metric.WithDescription("Number of action items emitted across snapshots"))
	if err != nil {
		return nil, err
	}

	return &Builder{
		agg:         readiness.NewAggregator(reg),
		tracer:      otel.Tracer(instrumentationName),
		builds:      builds,
		actionItems: actionItems,
	}, nil
}

// Build computes a snapshot from the inputs against the supplied now.
func (b *Builder) Build(ctx context.Context, in Inputs, now time.Time) (Snapshot, error) {
	ctx, span := b.tracer.Start(ctx, "dashboard.build")
	defer span.End()

	cats, err := b.agg.All(in.Scores, in.Domain)
	if err != nil {
		span.RecordError(err)
		return Snapshot{}, err
	}

	snap := Snapshot{
		GeneratedAt:  now,
		Categories:   cats,
		OverallScore: readiness.OverallScore(in.OverallScore, cats),
		RiskLevel:    risk.DeriveOverall(in.RiskFindings),
		Actions:      urgency.Classify(in.Urgency, now),
	}
	snap.OverallStatus = readiness.OverallStatus(snap.OverallScore)

	// An open assessment session owns the displayed severity; it may carry
	// a sticky manual override.
	if in.RiskAssessment != nil {
		snap.RiskLevel = in.RiskAssessment.Overall
		snap.RiskOverridden = in.RiskAssessment.ManualOverride
	}

	span.SetAttributes(
		attribute.Int("overall_score", snap.OverallScore),
		attribute.String("overall_status", snap.OverallStatus.String()),
		attribute.String("risk_level", snap.RiskLevel.String()),
		attribute.Int("action_items", len(snap.Actions)),
	)

	b.builds.Add(ctx, 1)
	b.actionItems.Add(ctx, int64(len(snap.Actions)))

	return snap, nil
}
