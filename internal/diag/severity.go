package diag

import "strings"

// Severity defines the importance of a diagnostic. Ordering matters:
// Bag.HasErrors and HasWarnings compare with >=.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Label is the lowercase name used by one-line formats.
func (s Severity) Label() string {
	return strings.ToLower(s.String())
}
