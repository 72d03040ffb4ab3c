// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	MM  = "mm"
	MIL = "mil"
	IN  = "in"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MM, MIL, IN}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mm, mil, in"
}

// ConvertLength converts a length from millimetres to the target units.
// The geometry engine computes in mm (1 mil = 0.0254 mm, 1 in = 25.4 mm).
func ConvertLength(lengthMM float64, targetUnits string) float64 {
	switch targetUnits {
	case MIL:
		return lengthMM / 0.0254
	case IN:
		return lengthMM / 25.4
	case MM:
		return lengthMM // no conversion needed
	default:
		return lengthMM // default to mm if unknown unit
	}
}
