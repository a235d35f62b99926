package score2

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Required columns for a closed-form coefficient file.
var coefficientColumns = []string{"variable", "coefficient"}

// CoefficientSet holds named coefficients for the ESC closed-form risk
// equation (mode C). Loading is supported so the file format is pinned
// down, but evaluation refuses until the published ESC 2021
// coefficients are bundled.
type CoefficientSet map[string]float64

// LoadCoefficients parses a coefficient CSV with columns
// variable,coefficient. It fails with a SchemaError when either column
// is absent and rejects repeated variable names.
func LoadCoefficients(r io.Reader) (CoefficientSet, error) {
	records, idx, err := readTable(r, coefficientColumns)
	if err != nil {
		return nil, err
	}

	set := make(CoefficientSet, len(records))
	for i, rec := range records {
		line := i + 2
		name := strings.TrimSpace(rec[idx["variable"]])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty variable name", line)
		}
		if _, ok := set[name]; ok {
			return nil, fmt.Errorf("line %d: variable %q defined twice", line, name)
		}
		value, err := strconv.ParseFloat(rec[idx["coefficient"]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad coefficient %q", line, rec[idx["coefficient"]])
		}
		set[name] = value
	}
	return set, nil
}
