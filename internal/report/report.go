// Package report renders the final status line and exit code of a run.
package report

import (
	"fmt"

	"github.com/opsprobes/check-netapp/internal/collector"
	"github.com/opsprobes/check-netapp/internal/status"
)

// Standard monitoring plugin exit codes.
const (
	ExitOK       = 0
	ExitWarning  = 1
	ExitCritical = 2 // reserved; the binary OK/WARN rule never selects it
	ExitUnknown  = 3
)

// CheckResult is the terminal artifact of a run: one line of text plus the
// process exit code.
type CheckResult struct {
	Severity status.Severity
	Facts    *collector.Facts
	Message  string
	ExitCode int
}

// Build renders the status line for a completed run. Reporting is binary:
// SeverityOK maps to "OK" and exit 0, every other severity (Undetermined
// included) to "WARN" and exit 1. The six-way severity appears only in the
// GlobalStatus field of the line.
func Build(name string, facts *collector.Facts, sev status.Severity) CheckResult {
	word := "WARN"
	exit := ExitWarning
	if sev == status.SeverityOK {
		word = "OK"
		exit = ExitOK
	}

	return CheckResult{
		Severity: sev,
		Facts:    facts,
		Message: fmt.Sprintf("%s %s - GlobalStatus:%s serial_number:%s ONTAP_version:%s",
			name, word, sev, facts.SerialNumber, facts.OntapVersion),
		ExitCode: exit,
	}
}

// Fatal renders the diagnostic line for a run that could not complete. The
// severity word is the caller's; the exit code is always UNKNOWN.
func Fatal(name, word, msg string) CheckResult {
	return CheckResult{
		Severity: status.SeverityUndetermined,
		Message:  fmt.Sprintf("%s %s - %s", name, word, msg),
		ExitCode: ExitUnknown,
	}
}
