// Package status decodes the NetApp miscGlobalStatus health enumeration.
package status

// Severity is the decoded appliance health classification.
type Severity uint8

const (
	SeverityOther Severity = iota + 1
	SeverityUnknown
	SeverityOK
	SeverityNonCritical
	SeverityCritical
	SeverityNonRecoverable
	// SeverityUndetermined covers codes outside the MIB enumeration and a
	// status query that returned no value at all.
	SeverityUndetermined
)

func (s Severity) String() string {
	switch s {
	case SeverityOther:
		return "Other"
	case SeverityUnknown:
		return "Unknown"
	case SeverityOK:
		return "OK"
	case SeverityNonCritical:
		return "NonCritical"
	case SeverityCritical:
		return "Critical"
	case SeverityNonRecoverable:
		return "NonRecoverable"
	default:
		return "Undetermined"
	}
}

// Classify maps a raw miscGlobalStatus code to its Severity. Matching is
// exact integer equality only: a nil code or any value outside 1-6 yields
// SeverityUndetermined, never a silent OK.
func Classify(code *int64) Severity {
	if code == nil {
		return SeverityUndetermined
	}
	switch *code {
	case 1:
		return SeverityOther
	case 2:
		return SeverityUnknown
	case 3:
		return SeverityOK
	case 4:
		return SeverityNonCritical
	case 5:
		return SeverityCritical
	case 6:
		return SeverityNonRecoverable
	default:
		return SeverityUndetermined
	}
}
