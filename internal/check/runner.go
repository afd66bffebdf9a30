// Package check sequences one full appliance health check.
package check

import (
	"fmt"
	"log/slog"

	"github.com/opsprobes/check-netapp/internal/collector"
	"github.com/opsprobes/check-netapp/internal/config"
	"github.com/opsprobes/check-netapp/internal/probe"
	"github.com/opsprobes/check-netapp/internal/report"
	"github.com/opsprobes/check-netapp/internal/snmp"
	"github.com/opsprobes/check-netapp/internal/status"
)

// Runner executes a single run-to-completion check: liveness probe, SNMP
// fact collection, classification, report. Each stage runs at most once and
// any fatal stage short-circuits straight to an UNKNOWN result.
type Runner struct {
	cfg    *config.Config
	prober probe.Prober
	gw     snmp.Gateway
	logger *slog.Logger
}

func NewRunner(cfg *config.Config, prober probe.Prober, gw snmp.Gateway, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		prober: prober,
		gw:     gw,
		logger: logger.With("component", "runner"),
	}
}

// Run produces exactly one CheckResult.
func (r *Runner) Run() report.CheckResult {
	host := r.cfg.Target.Host

	reach := r.prober.Probe(host)
	r.logger.Debug("reachability checked", "host", host, "result", reach)
	if reach != probe.Up {
		msg := fmt.Sprintf("%s is not reachable: %s", host, reach)
		return report.Fatal(r.cfg.CheckName, "UNKNOWN", msg)
	}

	facts, fatal := collector.NewCollector(r.gw, r.logger).Collect()
	if fatal != nil {
		return report.Fatal(r.cfg.CheckName, fatal.StatusWord, fatal.Message)
	}

	sev := status.Classify(facts.RawStatusCode)
	r.logger.Debug("global status classified", "severity", sev)

	return report.Build(r.cfg.CheckName, facts, sev)
}
