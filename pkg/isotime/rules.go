package isotime

import "regexp"

// Registered format rule names. Each rule is a character-class check over
// the whole input, not a substring match.
const (
	RuleNumbers           = "numbers"
	RuleNumbersAndHyphens = "numbers-and-hyphens"
	RuleNumbersAndColons  = "numbers-and-colons"
	RuleOffset            = "numbers-colons-Z-sign"
	RuleDuration          = "numbers-and-YMDH-letters"
)

type formatRule struct {
	pattern *regexp.Regexp
	expects string
	example string
}

// Compiled once at init and never mutated afterwards, so lookups are safe
// for concurrent use without locking.
var formatRules = map[string]formatRule{
	RuleNumbers:           {regexp.MustCompile(`^[0-9]+$`), "only digits", "20141101"},
	RuleNumbersAndHyphens: {regexp.MustCompile(`^[0-9-]+$`), "only digits and hyphens", "2014-11-01"},
	RuleNumbersAndColons:  {regexp.MustCompile(`^[0-9:]+$`), "only digits and colons", "05:35:00"},
	RuleOffset:            {regexp.MustCompile(`^[0-9:Z+-]+$`), "only digits, colons, 'Z' and a sign", "+05:00"},
	RuleDuration:          {regexp.MustCompile(`^[0-9YMDH]+$`), "digit and unit letter (Y, M, D, H) pairs", "1Y5M4D3H"},
}

// ValidateFormat checks value against the named character-class rule and
// returns it unchanged on success. An unregistered rule name yields
// ErrUnknownRule; a mismatch yields ErrInvalidFormat with a message that
// echoes the value and a worked example of the expected shape.
func ValidateFormat(rule, value string) (string, error) {
	r, ok := formatRules[rule]
	if !ok {
		return "", newParseError(ErrUnknownRule, rule, "unknown format rule %q", rule)
	}
	if !r.pattern.MatchString(value) {
		return "", newParseError(ErrInvalidFormat, value, "%q must contain %s, e.g. %q", value, r.expects, r.example)
	}
	return value, nil
}
