package score2

import (
	"fmt"
	"io"
	"strconv"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// Required columns for a DSAM/ESC matrix file.
var tableColumns = []string{"age_band", "sex", "smoker", "ldl_band", "sbp_band", "score2_pct"}

// BandKey is the tuple of banded attributes identifying one row of the
// SCORE2 matrix.
type BandKey struct {
	AgeBand string
	Sex     patient.Sex
	Smoker  bool
	LDLBand string
	SBPBand string
}

func (k BandKey) String() string {
	smoker := "non-smoker"
	if k.Smoker {
		smoker = "smoker"
	}
	return fmt.Sprintf("age %s / %s / %s / LDL %s / SBP %s", k.AgeBand, k.Sex, smoker, k.LDLBand, k.SBPBand)
}

// KeyFor bands the patient's continuous attributes into the lookup key
// used by mode B.
func KeyFor(p *patient.Patient) BandKey {
	return BandKey{
		AgeBand: patient.AgeBand(p.Age),
		Sex:     p.Sex,
		Smoker:  p.Smoker,
		LDLBand: patient.LDLBand(p.LDL),
		SBPBand: patient.SBPBand(p.SBP),
	}
}

// Table is a loaded SCORE2 matrix. It is immutable after LoadTable
// returns and is held in memory for the duration of the session.
type Table struct {
	rows  map[BandKey]float64
	lines map[BandKey]int
}

// LoadTable parses a DSAM/ESC matrix CSV. It fails with a SchemaError
// when required columns are absent and with a DuplicateRowError when
// two rows share the same band tuple.
func LoadTable(r io.Reader) (*Table, error) {
	records, idx, err := readTable(r, tableColumns)
	if err != nil {
		return nil, err
	}

	t := &Table{
		rows:  make(map[BandKey]float64, len(records)),
		lines: make(map[BandKey]int, len(records)),
	}
	for i, rec := range records {
		line := i + 2 // header is line 1
		sex, err := parseSex(rec[idx["sex"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		smoker, err := parseSmoker(rec[idx["smoker"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pct, err := strconv.ParseFloat(rec[idx["score2_pct"]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad score2_pct %q", line, rec[idx["score2_pct"]])
		}
		key := BandKey{
			AgeBand: rec[idx["age_band"]],
			Sex:     sex,
			Smoker:  smoker,
			LDLBand: rec[idx["ldl_band"]],
			SBPBand: rec[idx["sbp_band"]],
		}
		if first, ok := t.lines[key]; ok {
			return nil, &DuplicateRowError{Key: key, FirstLine: first, SecondLine: line}
		}
		t.rows[key] = pct
		t.lines[key] = line
	}
	return t, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Lookup returns the stored percentage for the given band tuple. It
// fails with a NoMatchError when the tuple is absent.
func (t *Table) Lookup(key BandKey) (float64, error) {
	pct, ok := t.rows[key]
	if !ok {
		return 0, &NoMatchError{Key: key}
	}
	return pct, nil
}
