package isotime

import "strings"

// ExtractOffset splits a time-with-offset string into its time part and
// offset token. The offset token is either "Z" or a sign character
// followed by the raw offset digits. A bare time with no offset marker
// defaults to Zulu:
//
//	"05:35:00Z"     -> ("05:35:00", "Z")
//	"05:35:00+05"   -> ("05:35:00", "+05")
//	"05:35:00-0430" -> ("05:35:00", "-0430")
//	"05:35:00"      -> ("05:35:00", "Z")
func ExtractOffset(value string) (timePart, offset string) {
	if before, _, found := strings.Cut(value, "Z"); found {
		return before, "Z"
	}
	if before, after, found := strings.Cut(value, "+"); found {
		return before, "+" + after
	}
	if before, after, found := strings.Cut(value, "-"); found {
		return before, "-" + after
	}
	return value, "Z"
}

// NormalizeOffset canonicalizes an offset token to "Z" or a sign followed
// by a 6-digit canonical time ("+05" -> "+050000", "-04:30" -> "-043000").
// A zero offset must not carry a negative sign: "-00", "-0000" and
// "-000000" are rejected.
func (n *Normalizer) NormalizeOffset(token string) (string, error) {
	if _, err := ValidateFormat(RuleOffset, token); err != nil {
		return "", err
	}
	if token == "Z" {
		return "Z", nil
	}

	sign := token[:1]
	if sign != "+" && sign != "-" {
		return "", newParseError(ErrInvalidFormat, token, "offset %q must be %q or start with a sign, e.g. %q", token, "Z", "+05:00")
	}

	digits, err := n.NormalizeTime(token[1:])
	if err != nil {
		return "", err
	}
	if sign == "-" && digits == "000000" {
		return "", newParseError(ErrInvalidFormat, token, "zero offset %q must not carry a negative sign; use %q", token, "Z")
	}
	return sign + digits, nil
}
