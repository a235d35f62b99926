package advisory

import (
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// ConditionInteraction flags an active medication against a patient
// condition: the patient already takes the class and the condition
// makes it unsuitable.
type ConditionInteraction struct {
	Name    string
	Class   patient.DrugClass
	When    func(p *patient.Patient) bool
	Message string
}

// DrugInteraction flags two drug classes that are both on the active
// medication list.
type DrugInteraction struct {
	Name    string
	A, B    patient.DrugClass
	Message string
}

// planB maps a contraindicated drug class to the standard alternative
// suggestion for it.
var planB = map[patient.DrugClass]string{
	patient.ACEInhibitor: "Switch to a dihydropyridine CCB or a thiazide-like diuretic.",
	patient.ARB:          "Switch to a dihydropyridine CCB or a thiazide-like diuretic.",
	patient.Thiazide:     "Switch to a CCB or RAAS blockade; consider a loop diuretic if volume overload.",
	patient.BetaBlocker:  "Switch to a cardioselective beta blocker or another class.",
	patient.MRA:          "Stop the mineralocorticoid antagonist until potassium and renal function allow.",
	patient.NSAID:        "Replace the NSAID with paracetamol or review the analgesic need.",
}

// conditionInteractions is evaluated in order after the rule table.
var conditionInteractions = []ConditionInteraction{
	{
		Name:    "ace-hyperkalaemia",
		Class:   patient.ACEInhibitor,
		When:    hyperkalaemia,
		Message: "Active ACE inhibitor with potassium >= 5.0 mmol/L.",
	},
	{
		Name:    "arb-hyperkalaemia",
		Class:   patient.ARB,
		When:    hyperkalaemia,
		Message: "Active ARB with potassium >= 5.0 mmol/L.",
	},
	{
		Name:    "mra-hyperkalaemia",
		Class:   patient.MRA,
		When:    hyperkalaemia,
		Message: "Active mineralocorticoid antagonist with potassium >= 5.0 mmol/L.",
	},
	{
		Name:    "mra-renal-impairment",
		Class:   patient.MRA,
		When:    severeRenalImpairment,
		Message: "Active mineralocorticoid antagonist with eGFR < 30.",
	},
	{
		Name:    "thiazide-hyponatraemia",
		Class:   patient.Thiazide,
		When:    hyponatraemia,
		Message: "Active thiazide with sodium <= 133 mmol/L.",
	},
	{
		Name:    "thiazide-hypokalaemia",
		Class:   patient.Thiazide,
		When:    hypokalaemia,
		Message: "Active thiazide with potassium <= 3.4 mmol/L.",
	},
	{
		Name:    "thiazide-renal-impairment",
		Class:   patient.Thiazide,
		When:    severeRenalImpairment,
		Message: "Active thiazide with eGFR < 30: likely ineffective.",
	},
	{
		Name:    "thiazide-gout",
		Class:   patient.Thiazide,
		When:    goutOrHighUrate,
		Message: "Active thiazide with gout or elevated urate.",
	},
	{
		Name:    "beta-blocker-asthma",
		Class:   patient.BetaBlocker,
		When:    func(p *patient.Patient) bool { return p.AsthmaCOPD },
		Message: "Active beta blocker with asthma/COPD.",
	},
	{
		Name:    "ace-pregnancy",
		Class:   patient.ACEInhibitor,
		When:    func(p *patient.Patient) bool { return p.Pregnancy },
		Message: "Active ACE inhibitor in pregnancy: contraindicated.",
	},
	{
		Name:    "arb-pregnancy",
		Class:   patient.ARB,
		When:    func(p *patient.Patient) bool { return p.Pregnancy },
		Message: "Active ARB in pregnancy: contraindicated.",
	},
	{
		Name:    "mra-pregnancy",
		Class:   patient.MRA,
		When:    func(p *patient.Patient) bool { return p.Pregnancy },
		Message: "Active mineralocorticoid antagonist in pregnancy: contraindicated.",
	},
}

// drugInteractions is evaluated in order after the condition
// interactions.
var drugInteractions = []DrugInteraction{
	{
		Name:    "dual-raas-blockade",
		A:       patient.ACEInhibitor,
		B:       patient.ARB,
		Message: "ACE inhibitor combined with ARB: dual RAAS blockade is not recommended.",
	},
	{
		Name:    "ace-mra-potassium",
		A:       patient.ACEInhibitor,
		B:       patient.MRA,
		Message: "ACE inhibitor with mineralocorticoid antagonist: monitor potassium and renal function closely.",
	},
	{
		Name:    "arb-mra-potassium",
		A:       patient.ARB,
		B:       patient.MRA,
		Message: "ARB with mineralocorticoid antagonist: monitor potassium and renal function closely.",
	},
	{
		Name:    "nsaid-ace",
		A:       patient.NSAID,
		B:       patient.ACEInhibitor,
		Message: "NSAID with ACE inhibitor: blunted effect and renal impairment risk, especially with a diuretic.",
	},
	{
		Name:    "nsaid-arb",
		A:       patient.NSAID,
		B:       patient.ARB,
		Message: "NSAID with ARB: blunted effect and renal impairment risk, especially with a diuretic.",
	},
	{
		Name:    "nsaid-diuretic",
		A:       patient.NSAID,
		B:       patient.Thiazide,
		Message: "NSAID with a diuretic: reduced diuretic effect and renal impairment risk.",
	},
	{
		Name:    "nsaid-loop-diuretic",
		A:       patient.NSAID,
		B:       patient.LoopDiuretic,
		Message: "NSAID with a loop diuretic: reduced diuretic effect and renal impairment risk.",
	},
}
