// Package probe answers whether a target host is alive on the network.
package probe

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-ping/ping"
)

// Result classifies the outcome of a liveness probe.
type Result uint8

const (
	Up Result = iota
	DownUnreachable
	DownNameResolutionFailed
	DownNoRoute
)

func (r Result) String() string {
	switch r {
	case Up:
		return "up"
	case DownNameResolutionFailed:
		return "name resolution failed"
	case DownNoRoute:
		return "no route to host"
	default:
		return "100% packet loss"
	}
}

// Prober issues a single liveness probe against a host.
type Prober interface {
	Probe(host string) Result
}

// Pinger probes with one ICMP echo request in unprivileged UDP mode.
type Pinger struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewPinger(timeout time.Duration, logger *slog.Logger) *Pinger {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &Pinger{
		timeout: timeout,
		logger:  logger.With("component", "prober"),
	}
}

// Probe sends a single echo request and waits at most the configured
// timeout for a reply.
func (p *Pinger) Probe(host string) Result {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		p.logger.Debug("name resolution failed", "host", host, "error", err)
		return DownNameResolutionFailed
	}

	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(false)

	if err := pinger.Run(); err != nil {
		result := classifyRunError(err)
		p.logger.Debug("probe failed", "host", host, "error", err, "result", result)
		return result
	}

	stats := pinger.Statistics()
	p.logger.Debug("probe finished",
		"host", host,
		"sent", stats.PacketsSent,
		"received", stats.PacketsRecv,
	)
	if stats.PacketsRecv == 0 {
		return DownUnreachable
	}
	return Up
}

// classifyRunError maps a socket-level probe failure onto a Result.
func classifyRunError(err error) Result {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no route to host"),
		strings.Contains(msg, "network is unreachable"):
		return DownNoRoute
	case strings.Contains(msg, "no such host"):
		return DownNameResolutionFailed
	default:
		return DownUnreachable
	}
}
