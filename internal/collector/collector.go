// Package collector gathers identification and health facts from the
// appliance over SNMP.
package collector

import (
	"log/slog"

	"github.com/opsprobes/check-netapp/internal/snmp"
)

// Objects read by the collector, in query order. The vendor-specific ones
// live under the NetApp enterprise subtree (1.3.6.1.4.1.789).
const (
	OIDSysDescr         = "1.3.6.1.2.1.1.1.0"
	OIDProductSerialNum = "1.3.6.1.4.1.789.1.1.9.0"
	OIDMiscGlobalStatus = "1.3.6.1.4.1.789.1.2.2.4.0"
	OIDProductVersion   = "1.3.6.1.4.1.789.1.1.2.0"
)

// defaultField stands in for any identification value the appliance did not
// return.
const defaultField = "unknown"

// Facts holds everything the probe learned about the appliance.
// SerialNumber and OntapVersion always carry a value; the literal "unknown"
// marks a failed query. RawStatusCode stays nil when the status query
// returned no usable value.
type Facts struct {
	SystemDescription string
	SerialNumber      string
	OntapVersion      string
	RawStatusCode     *int64
}

// FatalError aborts the run. StatusWord is the severity word printed in the
// diagnostic line; the exit code is always UNKNOWN regardless of it.
type FatalError struct {
	StatusWord string
	Message    string
}

func (e *FatalError) Error() string { return e.Message }

// Collector runs the fixed fact-query sequence against a Gateway.
type Collector struct {
	gw     snmp.Gateway
	logger *slog.Logger
}

func NewCollector(gw snmp.Gateway, logger *slog.Logger) *Collector {
	return &Collector{
		gw:     gw,
		logger: logger.With("component", "collector"),
	}
}

// Collect queries system description, serial number, global status code and
// software version, in that order. The system description doubles as the
// SNMP reachability gate: if it cannot be read the run is aborted. A timeout
// on the serial number query is also fatal since the agent stopped answering
// mid-run, which usually means a wrong community string. Every other failure
// leaves the field at its default.
func (c *Collector) Collect() (*Facts, *FatalError) {
	facts := &Facts{
		SerialNumber: defaultField,
		OntapVersion: defaultField,
	}

	descr := c.gw.GetString(OIDSysDescr)
	c.logger.Debug("queried system description", "kind", descr.Kind)
	if descr.Kind != snmp.KindValue {
		return nil, &FatalError{
			StatusWord: "CRITICAL",
			Message:    "could not query host via SNMP",
		}
	}
	facts.SystemDescription = descr.Str

	serial := c.gw.GetString(OIDProductSerialNum)
	c.logger.Debug("queried serial number", "kind", serial.Kind)
	switch serial.Kind {
	case snmp.KindValue:
		facts.SerialNumber = serial.Str
	case snmp.KindTimeout:
		return nil, &FatalError{
			StatusWord: "Unknown",
			Message:    "SNMP timeout, check community string",
		}
	}

	code := c.gw.GetInt(OIDMiscGlobalStatus)
	c.logger.Debug("queried global status", "kind", code.Kind)
	if code.Kind == snmp.KindValue {
		v := code.Int
		facts.RawStatusCode = &v
	}

	version := c.gw.GetString(OIDProductVersion)
	c.logger.Debug("queried ONTAP version", "kind", version.Kind)
	if version.Kind == snmp.KindValue {
		facts.OntapVersion = version.Str
	}

	return facts, nil
}
