package patient

// Sex is the biological sex used by the SCORE2 charts.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// DrugClass identifies an antihypertensive (or interacting) drug class.
// Values match what the form sends and what the interaction table is
// keyed by.
type DrugClass string

const (
	ACEInhibitor DrugClass = "ace-inhibitor"
	ARB          DrugClass = "arb"
	Thiazide     DrugClass = "thiazide"
	CCB          DrugClass = "ccb"
	BetaBlocker  DrugClass = "beta-blocker"
	MRA          DrugClass = "mra"
	LoopDiuretic DrugClass = "loop-diuretic"
	NSAID        DrugClass = "nsaid"
)

// Patient holds the attributes collected by the form for one evaluation.
// Optional labs are nil when the clinician left them blank. A Patient is
// built per request and never persisted.
type Patient struct {
	Age    int     `json:"age"`
	Sex    Sex     `json:"sex"`
	Smoker bool    `json:"smoker"`
	SBP    int     `json:"sbp"`
	LDL    float64 `json:"ldl"`

	// Labs (mmol/L except eGFR in mL/min/1.73m2)
	Sodium    *float64 `json:"sodium,omitempty"`
	Potassium *float64 `json:"potassium,omitempty"`
	EGFR      *float64 `json:"egfr,omitempty"`
	Urate     *float64 `json:"urate,omitempty"`

	// Comorbidities and flags
	Diabetes      bool `json:"diabetes"`
	CKD           bool `json:"ckd"`
	Proteinuria   bool `json:"proteinuria"`
	CAD           bool `json:"cad"`
	HeartFailure  bool `json:"heartFailure"`
	AFib          bool `json:"afib"`
	StrokeTIA     bool `json:"strokeTia"`
	Pregnancy     bool `json:"pregnancy"`
	Gout          bool `json:"gout"`
	AsthmaCOPD    bool `json:"asthmaCopd"`
	EdemaTendency bool `json:"edemaTendency"`

	Medications []DrugClass `json:"medications,omitempty"`
}

// TakesAny reports whether the patient's active medication list contains
// any of the given drug classes.
func (p *Patient) TakesAny(classes ...DrugClass) bool {
	for _, m := range p.Medications {
		for _, c := range classes {
			if m == c {
				return true
			}
		}
	}
	return false
}

// Ptr is a helper to build optional lab values from literals.
func Ptr(f float64) *float64 {
	return &f
}
