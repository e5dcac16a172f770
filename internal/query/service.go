package query

import "regexp"

var (
	// servicePhrasePattern matches "svc 10", "service 190", "bus a1" and the
	// compact "svc10". Ids need a digit, so "first bus for svc 10" yields "10".
	servicePhrasePattern = regexp.MustCompile(`\b(?:svc|service|bus)\s*([a-z]*\d[a-z0-9]*)\b`)

	serviceTokenPattern = regexp.MustCompile(`^[a-z]*\d[a-z0-9]*$`)

	// "bus svc10" captures "svc10" from the leading "bus"
	serviceKeywordPrefix = regexp.MustCompile(`^(?:svc|service|bus)+`)
)

// ExtractServiceID returns the bus service named in the query. An explicit
// svc/service/bus phrase wins anywhere in the text; otherwise the first token
// holding a digit. Ids in the filter year range are taken only when nothing
// else names a service.
func ExtractServiceID(tokens Tokens) (string, bool) {
	var phrases []string
	for _, match := range servicePhrasePattern.FindAllStringSubmatch(tokens.Text, -1) {
		if id := serviceKeywordPrefix.ReplaceAllString(match[1], ""); id != "" {
			phrases = append(phrases, id)
		}
	}
	for _, id := range phrases {
		if !isYearToken(id) {
			return id, true
		}
	}
	for _, word := range tokens.Words {
		if serviceTokenPattern.MatchString(word) && !isYearToken(word) {
			return word, true
		}
	}
	if len(phrases) > 0 {
		return phrases[0], true
	}
	return "", false
}

func isYearToken(word string) bool {
	_, ok := parseYear(word)
	return ok
}
