package score2

import (
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// Mode records which evaluation mode produced a RiskResult.
type Mode string

const (
	// ModeManual is a percentage read from the printed DSAM/ESC chart
	// and entered by hand.
	ModeManual Mode = "manual"
	// ModeTable is a lookup in an uploaded DSAM matrix.
	ModeTable Mode = "table"
	// ModeFormula is the ESC closed-form equation.
	ModeFormula Mode = "formula"
)

// RiskResult is a SCORE2 percentage with its provenance and, for
// patients in the validated 40-75 age range, the age-specific
// intervention threshold.
type RiskResult struct {
	Percentage float64 `json:"percentage"`
	Mode       Mode    `json:"mode"`

	// Threshold and AboveThreshold are nil when the patient's age is
	// outside the range the threshold scheme is validated for.
	Threshold      *float64 `json:"threshold,omitempty"`
	AboveThreshold *bool    `json:"aboveThreshold,omitempty"`
}

// InterventionThreshold returns the age-specific intervention threshold
// per DSAM: 40-59 >=5%, 60-69 >=7.5%, 70-75 >=10%. ok is false outside
// the validated 40-75 range.
func InterventionThreshold(age int) (threshold float64, ok bool) {
	switch {
	case age >= 40 && age <= 59:
		return 5.0, true
	case age >= 60 && age <= 69:
		return 7.5, true
	case age >= 70 && age <= 75:
		return 10.0, true
	}
	return 0, false
}

func resultFor(pct float64, mode Mode, age int) RiskResult {
	res := RiskResult{Percentage: pct, Mode: mode}
	if th, ok := InterventionThreshold(age); ok {
		above := pct >= th
		res.Threshold = &th
		res.AboveThreshold = &above
	}
	return res
}

// EvaluateManual validates a manually entered percentage (mode A). It
// fails with a RangeError when the value is outside [0,100].
func EvaluateManual(pct float64, age int) (RiskResult, error) {
	if pct < 0 || pct > 100 {
		return RiskResult{}, &RangeError{Value: pct}
	}
	return resultFor(pct, ModeManual, age), nil
}

// EvaluateTable bands the patient's continuous attributes and looks the
// tuple up in the given table (mode B). It fails with a NoMatchError
// when no row matches.
func EvaluateTable(p *patient.Patient, t *Table) (RiskResult, error) {
	pct, err := t.Lookup(KeyFor(p))
	if err != nil {
		return RiskResult{}, err
	}
	return resultFor(pct, ModeTable, p.Age), nil
}

// EvaluateFormula applies the ESC closed-form risk equation (mode C).
// The published ESC 2021 coefficients are not bundled, so this always
// fails with a NotImplementedError; placeholder values must not be
// substituted.
func EvaluateFormula(p *patient.Patient, coeffs CoefficientSet) (RiskResult, error) {
	return RiskResult{}, NewNotImplementedError(
		"closed-form SCORE2 evaluation requires the published ESC 2021 coefficients")
}
