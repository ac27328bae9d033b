package isotime

import "strings"

// NormalizeTime collapses a time of day of hour, minute, or second
// precision, colon-separated or not, into the canonical 6-digit basic
// form "HHMMSS". Omitted minute and second fields are zero-padded;
// fields present in the input are never altered:
//
//	"05"       -> "050000"
//	"05:35"    -> "053500"
//	"05:35:00" -> "053500"
//	"053500"   -> "053500"
//
// Hour, minute, and second are range-checked at each precision level.
func (n *Normalizer) NormalizeTime(value string) (string, error) {
	if _, err := ValidateFormat(RuleNumbersAndColons, value); err != nil {
		return "", err
	}

	digits := strings.ReplaceAll(value, ":", "")
	if _, err := ValidateFormat(RuleNumbers, digits); err != nil {
		return "", err
	}

	switch len(digits) {
	case 2:
		if err := checkHour(digits); err != nil {
			return "", err
		}
		return digits + "0000", nil
	case 4:
		if err := checkHour(digits[:2]); err != nil {
			return "", err
		}
		if err := checkSexagesimal("minute", digits[2:4]); err != nil {
			return "", err
		}
		return digits + "00", nil
	case 6:
		if err := checkHour(digits[:2]); err != nil {
			return "", err
		}
		if err := checkSexagesimal("minute", digits[2:4]); err != nil {
			return "", err
		}
		if err := checkSexagesimal("second", digits[4:6]); err != nil {
			return "", err
		}
		return digits, nil
	default:
		return "", newParseError(ErrInvalidLength, value, "time %q must have 2, 4 or 6 digits, e.g. %q", value, "053500")
	}
}
