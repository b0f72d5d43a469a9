// Package risk derives a single overall severity from a set of independently
// flagged vulnerability findings, as used by the food-fraud risk assessment.
//
// The derivation is a high-water-mark rule: among findings marked vulnerable,
// the maximum severity wins. If nothing is vulnerable the overall severity is
// low: absence of risk is itself a meaningful outcome, not "unknown".
//
// An Assessment additionally carries the one piece of persistent client
// state in the engine: a sticky manual override. While in automatic mode,
// every finding edit re-derives the overall severity; once the user picks a
// severity explicitly, finding edits no longer change it until the explicit
// "use suggested" action reverts to the computed value.
package risk
