// Package snmp performs single-scalar SNMP reads against one target.
package snmp

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
)

// OutcomeKind tags the result of a scalar GET.
type OutcomeKind uint8

const (
	KindValue OutcomeKind = iota
	KindTimeout
	KindMalformed
	KindEmpty
)

func (k OutcomeKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindTimeout:
		return "timeout"
	case KindMalformed:
		return "malformed"
	default:
		return "empty"
	}
}

// Outcome is the typed result of a single scalar GET. Str or Int is
// meaningful only when Kind is KindValue, and only the one matching the
// query's expected type.
type Outcome struct {
	Kind OutcomeKind
	Str  string
	Int  int64
}

// Gateway reads scalar values from the target appliance.
type Gateway interface {
	GetString(oid string) Outcome
	GetInt(oid string) Outcome
}

// Client is a Gateway over an SNMP v1 community session. Each call opens a
// fresh session bounded by the configured timeout and retry count.
type Client struct {
	target    string
	port      uint16
	community string
	timeout   time.Duration
	retries   int
	logger    *slog.Logger
}

func NewClient(target, community string, port uint16, timeout time.Duration, retries int, logger *slog.Logger) *Client {
	return &Client{
		target:    target,
		port:      port,
		community: community,
		timeout:   timeout,
		retries:   retries,
		logger:    logger.With("component", "snmp"),
	}
}

// GetString reads a string-typed scalar.
func (c *Client) GetString(oid string) Outcome {
	pdu, err := c.get(oid)
	if err != nil {
		return classifyTransportError(err)
	}
	return parseStringPDU(pdu)
}

// GetInt reads an integer-typed scalar.
func (c *Client) GetInt(oid string) Outcome {
	pdu, err := c.get(oid)
	if err != nil {
		return classifyTransportError(err)
	}
	return parseIntPDU(pdu)
}

func (c *Client) get(oid string) (*gosnmp.SnmpPDU, error) {
	g := &gosnmp.GoSNMP{
		Target:    c.target,
		Port:      c.port,
		Version:   gosnmp.Version1,
		Community: c.community,
		Timeout:   c.timeout,
		Retries:   c.retries,
	}

	if err := g.Connect(); err != nil {
		return nil, fmt.Errorf("SNMP connect failed: %w", err)
	}
	defer g.Conn.Close()

	packet, err := g.Get([]string{oid})
	if err != nil {
		c.logger.Debug("SNMP get failed", "oid", oid, "error", err)
		return nil, err
	}
	if len(packet.Variables) == 0 {
		return nil, nil
	}

	pdu := packet.Variables[0]
	c.logger.Debug("SNMP get", "oid", oid, "type", fmt.Sprintf("%#x", byte(pdu.Type)))
	return &pdu, nil
}

// classifyTransportError separates a request timeout from every other
// transport failure.
func classifyTransportError(err error) Outcome {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Outcome{Kind: KindTimeout}
	}
	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return Outcome{Kind: KindTimeout}
	}
	return Outcome{Kind: KindMalformed}
}

// parseStringPDU extracts a string payload from a PDU. Surrounding quotes
// are stripped. A payload carrying the literal substring "Timeout" is
// classified as a timeout even though it is string-shaped; agents that relay
// their own query tool's timeout text through the value field depend on this
// rule.
func parseStringPDU(pdu *gosnmp.SnmpPDU) Outcome {
	if pdu == nil {
		return Outcome{Kind: KindEmpty}
	}
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.Null:
		return Outcome{Kind: KindEmpty}
	case gosnmp.OctetString:
		raw, ok := pdu.Value.([]byte)
		if !ok {
			return Outcome{Kind: KindMalformed}
		}
		payload := strings.Trim(string(raw), `"`)
		if strings.Contains(payload, "Timeout") {
			return Outcome{Kind: KindTimeout}
		}
		if payload == "" {
			return Outcome{Kind: KindEmpty}
		}
		return Outcome{Kind: KindValue, Str: payload}
	default:
		return Outcome{Kind: KindMalformed}
	}
}

// parseIntPDU extracts an integer payload from a PDU. Only the INTEGER tag
// is accepted; anything else is malformed for an integer-typed query.
func parseIntPDU(pdu *gosnmp.SnmpPDU) Outcome {
	if pdu == nil {
		return Outcome{Kind: KindEmpty}
	}
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.Null:
		return Outcome{Kind: KindEmpty}
	case gosnmp.Integer:
		return Outcome{Kind: KindValue, Int: gosnmp.ToBigInt(pdu.Value).Int64()}
	default:
		return Outcome{Kind: KindMalformed}
	}
}
