package score2

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

// readTable reads a CSV file and resolves the required columns from the
// header row. Column order does not matter and extra columns are
// ignored. The returned index maps a required column name to its
// position in each record.
func readTable(r io.Reader, required []string) (records [][]string, index map[string]int, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, NewSchemaError(required...)
	}

	header := rows[0]
	index = make(map[string]int, len(required))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, NewSchemaError(missing...)
	}
	return rows[1:], index, nil
}

// parseSmoker accepts the spellings seen in DSAM matrix files and the
// example-patient files, Danish included.
func parseSmoker(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "ja", "j", "1", "smoker":
		return true, nil
	case "false", "no", "n", "nej", "0", "non-smoker", "nonsmoker":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized smoker value %q", s)
}

func parseSex(s string) (patient.Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male", "mand":
		return patient.Male, nil
	case "f", "female", "k", "kvinde":
		return patient.Female, nil
	}
	return "", fmt.Errorf("unrecognized sex value %q", s)
}
