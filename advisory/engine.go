package advisory

import (
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// Warning is one triggered advisory. PlanB carries the alternative
// suggestion when the triggering rule contraindicates something.
type Warning struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	PlanB   string `json:"planB,omitempty"`
}

// Report is the ordered outcome of an advisory evaluation. Warning
// order is the rule/interaction table order and is stable: the same
// patient attributes always produce the same report.
type Report struct {
	Warnings     []Warning `json:"warnings"`
	FirstLine    []string  `json:"firstLine"`
	Combinations []string  `json:"combinations"`
	Rationales   []string  `json:"rationales"`
}

// Default first-line classes when nothing patient-specific applies.
var defaultFirstLine = []string{
	"ACE inhibitor or ARB",
	"Dihydropyridine CCB (amlodipine)",
	"Thiazide-like diuretic (indapamide/chlortalidone)",
}

// Typical evidence-based combinations, always suggested.
var combinations = []string{
	"ACE inhibitor/ARB + dihydropyridine CCB",
	"ACE inhibitor/ARB + thiazide-like diuretic",
	"Dihydropyridine CCB + thiazide-like diuretic (if RAAS blockade is not tolerated)",
}

// Evaluate applies the fixed rule and interaction tables to the
// patient, in order, and returns the report. It is a pure function of
// the patient's attributes.
func Evaluate(p *patient.Patient) Report {
	rep := Report{}

	for _, r := range Rules {
		if !r.When(p) {
			continue
		}
		rep.Warnings = append(rep.Warnings, Warning{Rule: r.Name, Message: r.Message, PlanB: r.PlanB})
		rep.FirstLine = append(rep.FirstLine, r.FirstLine...)
		if r.Rationale != "" {
			rep.Rationales = append(rep.Rationales, r.Rationale)
		}
	}

	for _, ci := range conditionInteractions {
		if p.TakesAny(ci.Class) && ci.When(p) {
			rep.Warnings = append(rep.Warnings, Warning{
				Rule:    ci.Name,
				Message: ci.Message,
				PlanB:   planB[ci.Class],
			})
		}
	}

	for _, di := range drugInteractions {
		if p.TakesAny(di.A) && p.TakesAny(di.B) {
			rep.Warnings = append(rep.Warnings, Warning{Rule: di.Name, Message: di.Message})
		}
	}

	if len(rep.FirstLine) == 0 {
		rep.FirstLine = append(rep.FirstLine, defaultFirstLine...)
	}
	rep.Combinations = append(rep.Combinations, combinations...)

	rep.FirstLine = unique(rep.FirstLine)
	rep.Rationales = unique(rep.Rationales)
	return rep
}

// unique removes duplicates while preserving order.
func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}
