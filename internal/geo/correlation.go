package geo

import (
	"regexp"
	"strings"
)

// statePatterns holds the expected hostname shapes for one state. Only a
// dozen or so states have documented naming conventions; absence of an entry
// means the hostname check is neutral for that state.
type statePatterns struct {
	State    string
	Patterns []*regexp.Regexp
}

var correlationPatterns = []statePatterns{
	{"New York", compileAll(`^nys-`, `^ny-`, `newyork`)},
	{"California", compileAll(`^ca-`, `^calif-`, `california`)},
	{"Texas", compileAll(`^tx-`, `^texas-`, `austin`, `^aus`)},
	{"Rhode Island", compileAll(`^ri-`, `^ris-`, `^risp`, `rhodeisland`)},
	{"Florida", compileAll(`^fl-`, `^fla-`, `florida`)},
	{"Georgia", compileAll(`^ga-`, `^geo-`, `georgia`)},
	{"Connecticut", compileAll(`^ct-`, `^conn-`, `connecticut`)},
	{"Michigan", compileAll(`^mi-`, `^mich-`, `michigan`)},
	{"Oregon", compileAll(`^or-`, `^ore-`, `oregon`)},
	{"Virginia", compileAll(`^va-`, `^virg-`, `virginia`)},
	{"Washington", compileAll(`^wa-`, `^wash-`, `washington`)},
	{"Wisconsin", compileAll(`^wi-`, `^wisc-`, `wisconsin`)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// correlateHostname tests a hostname against the naming conventions of the
// sheet-derived state. A match boosts the sheet evidence by 5 (capped at 99).
// A match against a different state's conventions is a negative correlation:
// the returned evidence keeps the sheet's location fields untouched and only
// lowers the confidence, tagging the conflicting state for diagnostics.
func correlateHostname(hostname string, sheet Evidence) *Evidence {
	if hostname == "" || sheet.State == "" {
		return nil
	}
	lower := strings.ToLower(hostname)

	var expected []*regexp.Regexp
	for _, sp := range correlationPatterns {
		if sp.State == sheet.State {
			expected = sp.Patterns
			break
		}
	}
	if expected == nil {
		return nil
	}

	for _, p := range expected {
		if p.MatchString(lower) {
			boosted := sheet
			boosted.Source = SourceHostnameCorrelation
			boosted.Correlation = CorrelationPositive
			if boosted.Confidence += 5; boosted.Confidence > 99 {
				boosted.Confidence = 99
			}
			return &boosted
		}
	}

	for _, sp := range correlationPatterns {
		if sp.State == sheet.State {
			continue
		}
		for _, p := range sp.Patterns {
			if p.MatchString(lower) {
				conflicted := sheet
				conflicted.Source = SourceHostnameCorrelation
				conflicted.Correlation = CorrelationNegative
				conflicted.Confidence = clampConfidence(sheet.Confidence - 10)
				conflicted.ConflictState = sp.State
				return &conflicted
			}
		}
	}

	return nil
}
