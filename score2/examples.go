package score2

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// Required columns for an example-patient file. Lab values,
// comorbidity flags and medications are optional columns.
var exampleColumns = []string{"age", "sex", "smoker", "sbp", "ldl"}

var exampleFlagColumns = map[string]func(p *patient.Patient){
	"diabetes":       func(p *patient.Patient) { p.Diabetes = true },
	"ckd":            func(p *patient.Patient) { p.CKD = true },
	"proteinuria":    func(p *patient.Patient) { p.Proteinuria = true },
	"cad":            func(p *patient.Patient) { p.CAD = true },
	"heart_failure":  func(p *patient.Patient) { p.HeartFailure = true },
	"afib":           func(p *patient.Patient) { p.AFib = true },
	"stroke_tia":     func(p *patient.Patient) { p.StrokeTIA = true },
	"pregnancy":      func(p *patient.Patient) { p.Pregnancy = true },
	"gout":           func(p *patient.Patient) { p.Gout = true },
	"asthma_copd":    func(p *patient.Patient) { p.AsthmaCOPD = true },
	"edema_tendency": func(p *patient.Patient) { p.EdemaTendency = true },
}

var exampleLabColumns = map[string]func(p *patient.Patient, v float64){
	"sodium":    func(p *patient.Patient, v float64) { p.Sodium = &v },
	"potassium": func(p *patient.Patient, v float64) { p.Potassium = &v },
	"egfr":      func(p *patient.Patient, v float64) { p.EGFR = &v },
	"urate":     func(p *patient.Patient, v float64) { p.Urate = &v },
}

// LoadExamples parses an example-patient CSV, one row per patient, used
// by the form to pre-fill its fields. It fails with a SchemaError when
// required columns are absent. Medications are a semicolon-separated
// list of drug-class identifiers.
func LoadExamples(r io.Reader) ([]patient.Patient, error) {
	records, idx, err := readTable(r, exampleColumns)
	if err != nil {
		return nil, err
	}

	patients := make([]patient.Patient, 0, len(records))
	for i, rec := range records {
		line := i + 2
		p := patient.Patient{}

		p.Age, err = strconv.Atoi(strings.TrimSpace(rec[idx["age"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad age %q", line, rec[idx["age"]])
		}
		p.Sex, err = parseSex(rec[idx["sex"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		p.Smoker, err = parseSmoker(rec[idx["smoker"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		p.SBP, err = strconv.Atoi(strings.TrimSpace(rec[idx["sbp"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad sbp %q", line, rec[idx["sbp"]])
		}
		p.LDL, err = strconv.ParseFloat(strings.TrimSpace(rec[idx["ldl"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad ldl %q", line, rec[idx["ldl"]])
		}

		for name, set := range exampleLabColumns {
			col, ok := idx[name]
			if !ok || col >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s %q", line, name, cell)
			}
			set(&p, v)
		}

		for name, set := range exampleFlagColumns {
			col, ok := idx[name]
			if !ok || col >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[col])
			if cell == "" {
				continue
			}
			flag, err := parseSmoker(cell) // same yes/no spellings
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s %q", line, name, cell)
			}
			if flag {
				set(&p)
			}
		}

		if col, ok := idx["medications"]; ok && col < len(rec) {
			for _, m := range strings.Split(rec[col], ";") {
				m = strings.TrimSpace(m)
				if m != "" {
					p.Medications = append(p.Medications, patient.DrugClass(m))
				}
			}
		}

		patients = append(patients, p)
	}
	return patients, nil
}
