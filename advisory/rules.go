package advisory

import (
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// Rule pairs a predicate over patient attributes with a warning
// message, an optional Plan B alternative and the therapy suggestions
// the condition adds. Rules never mutate the patient; evaluation order
// is the order of the Rules slice.
type Rule struct {
	Name      string
	When      func(p *patient.Patient) bool
	Message   string
	PlanB     string
	FirstLine []string
	Rationale string
}

func hyperkalaemia(p *patient.Patient) bool {
	return p.Potassium != nil && *p.Potassium >= 5.0
}

func hypokalaemia(p *patient.Patient) bool {
	return p.Potassium != nil && *p.Potassium <= 3.4
}

func hyponatraemia(p *patient.Patient) bool {
	return p.Sodium != nil && *p.Sodium <= 133
}

func severeRenalImpairment(p *patient.Patient) bool {
	return p.EGFR != nil && *p.EGFR < 30
}

func renalRisk(p *patient.Patient) bool {
	return (p.EGFR != nil && *p.EGFR < 60) || p.CKD || p.Proteinuria
}

func goutOrHighUrate(p *patient.Patient) bool {
	return p.Gout || (p.Urate != nil && *p.Urate > 0.42)
}

// Rules is the fixed, ordered advisory rule table. The order is part of
// the contract: reports list warnings in this order.
var Rules = []Rule{
	{
		Name:      "diabetes",
		When:      func(p *patient.Patient) bool { return p.Diabetes },
		Message:   "SCORE2 is not validated for patients with diabetes; interpret the risk percentage with caution.",
		FirstLine: []string{"ACE inhibitor or ARB (especially with albuminuria)"},
		Rationale: "With diabetes and albuminuria, RAAS blockade is the recommended backbone.",
	},
	{
		Name:      "hyperkalaemia",
		When:      hyperkalaemia,
		Message:   "Potassium >= 5.0 mmol/L: avoid ACE inhibitors, ARBs and potassium-sparing diuretics until corrected.",
		PlanB:     "Prefer a dihydropyridine CCB while the potassium is corrected and the cause is assessed.",
		Rationale: "Hyperkalaemia raises the risk of ACE/ARB/potassium-sparing therapy; correct potassium and assess the cause first.",
	},
	{
		Name:      "hypokalaemia",
		When:      hypokalaemia,
		Message:   "Potassium <= 3.4 mmol/L: thiazide(-like) diuretics as monotherapy can worsen hypokalaemia.",
		PlanB:     "Combine a thiazide with an ACE inhibitor/ARB, or correct potassium first.",
		Rationale: "Thiazides can worsen hypokalaemia; correct and/or combine to balance potassium.",
	},
	{
		Name:      "hyponatraemia",
		When:      hyponatraemia,
		Message:   "Sodium <= 133 mmol/L: thiazide(-like) diuretics can worsen hyponatraemia.",
		PlanB:     "Use a CCB or RAAS blockade until the sodium is corrected.",
		Rationale: "Hyponatraemia can be worsened by thiazides; avoid until corrected.",
	},
	{
		Name:      "renal-impairment",
		When:      severeRenalImpairment,
		Message:   "eGFR < 30: thiazide(-like) diuretics are usually ineffective; use potassium-sparing diuretics with caution.",
		PlanB:     "Consider a loop diuretic for volume overload.",
		Rationale: "Thiazides are often ineffective at eGFR < 30; consider loop diuretics for volume overload.",
	},
	{
		Name:      "renal-protection",
		When:      renalRisk,
		Message:   "Reduced renal function, CKD or proteinuria: monitor creatinine and potassium when adjusting therapy.",
		FirstLine: []string{"ACE inhibitor or ARB (nephroprotection with proteinuria/CKD)"},
		Rationale: "ACE/ARB reduce albuminuria and protect renal function. Monitor creatinine and potassium.",
	},
	{
		Name: "secondary-prevention",
		When: func(p *patient.Patient) bool { return p.CAD || p.StrokeTIA },
		Message: "Known ischaemic heart disease or prior stroke/TIA: treat as secondary prevention.",
		FirstLine: []string{
			"ACE inhibitor or ARB",
			"Dihydropyridine CCB (amlodipine)",
		},
		Rationale: "Secondary prevention: RAAS blockade and/or CCB have outcome data; beta blocker with angina/post-MI.",
	},
	{
		Name:    "heart-failure",
		When:    func(p *patient.Patient) bool { return p.HeartFailure },
		Message: "Heart failure: choose guideline-directed, life-prolonging therapy and titrate per ejection fraction.",
		FirstLine: []string{
			"ACE inhibitor or ARB",
			"Beta blocker (heart-failure indicated)",
			"Mineralocorticoid antagonist (HFrEF, after potassium/renal check)",
		},
		Rationale: "HFrEF: life-prolonging treatment. Assess ejection fraction and titrate per guideline.",
	},
	{
		Name:      "atrial-fibrillation",
		When:      func(p *patient.Patient) bool { return p.AFib },
		Message:   "Atrial fibrillation: a beta blocker may be appropriate if rate control is wanted.",
		FirstLine: []string{"Beta blocker (if rate control is wanted)"},
		Rationale: "AF: a beta blocker can be appropriate when rate control is needed.",
	},
	{
		Name:      "gout",
		When:      goutOrHighUrate,
		Message:   "Gout or urate above 0.42 mmol/L: thiazides raise uric acid and can trigger gout.",
		PlanB:     "Prefer a CCB or RAAS blockade over a thiazide.",
		Rationale: "Thiazides can raise uric acid and trigger gout.",
	},
	{
		Name:      "asthma-copd",
		When:      func(p *patient.Patient) bool { return p.AsthmaCOPD },
		Message:   "Asthma/COPD: non-selective beta blockers risk bronchoconstriction.",
		PlanB:     "If a beta blocker is needed, use a cardioselective one.",
		Rationale: "Bronchoconstriction risk with non-selective beta blockers.",
	},
	{
		Name:      "peripheral-oedema",
		When:      func(p *patient.Patient) bool { return p.EdemaTendency },
		Message:   "Tendency to peripheral oedema: dihydropyridine CCB monotherapy often causes ankle swelling.",
		PlanB:     "Combine the CCB with an ACE inhibitor/ARB to reduce oedema.",
		Rationale: "Amlodipine can cause ankle swelling; RAAS combination reduces the risk.",
	},
	{
		Name:    "pregnancy",
		When:    func(p *patient.Patient) bool { return p.Pregnancy },
		Message: "Pregnancy: ACE inhibitors, ARBs and mineralocorticoid antagonists are contraindicated.",
		PlanB:   "Use labetalol, slow-release nifedipine or methyldopa.",
		FirstLine: []string{
			"Labetalol",
			"Nifedipine (slow release)",
			"Methyldopa",
		},
		Rationale: "Pregnancy: avoid RAAS blockade. Prefer labetalol, slow-release nifedipine or methyldopa.",
	},
}
