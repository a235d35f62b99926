package patient

import "fmt"

// Band labels follow the DSAM/ESC chart conventions so that a matrix
// using the documented labels always matches what mode B derives.

// AgeBand returns the 5-year age band label for the given age, e.g.
// "60-64". Ages outside the 40-89 chart range return "", meaning no
// band applies.
func AgeBand(age int) string {
	if age < 40 || age > 89 {
		return ""
	}
	lo := (age / 5) * 5
	return fmt.Sprintf("%d-%d", lo, lo+4)
}

// LDLBand returns the LDL band label in mmol/L: "<3.0", "3.0-3.9",
// "4.0-4.9" or "5.0+".
func LDLBand(ldl float64) string {
	switch {
	case ldl < 3.0:
		return "<3.0"
	case ldl < 4.0:
		return "3.0-3.9"
	case ldl < 5.0:
		return "4.0-4.9"
	default:
		return "5.0+"
	}
}

// SBPBand returns the systolic blood pressure band label in mmHg:
// "<120", "120-139", "140-159", "160-179" or "180+".
func SBPBand(sbp int) string {
	switch {
	case sbp < 120:
		return "<120"
	case sbp < 140:
		return "120-139"
	case sbp < 160:
		return "140-159"
	case sbp < 180:
		return "160-179"
	default:
		return "180+"
	}
}
