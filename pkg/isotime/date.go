package isotime

import "strings"

// NormalizeDate collapses an ISO-8601 date of year, month, or day
// precision, hyphenated or not, into the canonical 8-digit basic form
// "YYYYMMDD". Omitted month and day default to "01":
//
//	"2014"       -> "20140101"
//	"2014-11"    -> "20141101"
//	"2014-11-01" -> "20141101"
//	"20141101"   -> "20141101"
//
// Each component present in the input is range-checked. Normalization is
// idempotent: a canonical date passes through unchanged.
func (n *Normalizer) NormalizeDate(value string) (string, error) {
	if _, err := ValidateFormat(RuleNumbersAndHyphens, value); err != nil {
		return "", err
	}

	digits := strings.ReplaceAll(value, "-", "")
	if _, err := ValidateFormat(RuleNumbers, digits); err != nil {
		return "", err
	}

	switch len(digits) {
	case 4:
		if err := n.checkYear(digits); err != nil {
			return "", err
		}
		return digits + "0101", nil
	case 6:
		if err := n.checkYear(digits[:4]); err != nil {
			return "", err
		}
		if err := checkMonth(digits[4:6]); err != nil {
			return "", err
		}
		return digits + "01", nil
	case 8:
		if err := n.checkYear(digits[:4]); err != nil {
			return "", err
		}
		if err := checkMonth(digits[4:6]); err != nil {
			return "", err
		}
		if err := checkDay(digits[6:8]); err != nil {
			return "", err
		}
		return digits, nil
	default:
		return "", newParseError(ErrInvalidLength, value, "date %q must have 4, 6 or 8 digits, e.g. %q", value, "20141101")
	}
}
