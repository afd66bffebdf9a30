package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/opsprobes/check-netapp/internal/check"
	"github.com/opsprobes/check-netapp/internal/config"
	"github.com/opsprobes/check-netapp/internal/probe"
	"github.com/opsprobes/check-netapp/internal/report"
	"github.com/opsprobes/check-netapp/internal/snmp"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "check_netapp",
		Usage:   "Check the global health status of a NetApp appliance over SNMP",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Aliases: []string{"H"},
				Usage:   "hostname or address of the appliance (required)",
			},
			&cli.StringFlag{
				Name:    "community",
				Aliases: []string{"C"},
				Usage:   "SNMP read community string",
				Value:   "public",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "yaml file with probe defaults",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "SNMP port on the appliance",
				Value: 161,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-query SNMP timeout",
				Value: 5 * time.Second,
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "SNMP retry count per query",
				Value: 2,
			},
			&cli.DurationFlag{
				Name:  "ping-timeout",
				Usage: "liveness probe timeout",
				Value: time.Second,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log each probe step to stderr",
			},
		},
		Action: run,
	}

	// Every startup failure still honors the one-line, UNKNOWN-exit contract.
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("Netapp health UNKNOWN - %v\n", err)
		os.Exit(report.ExitUnknown)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	// Explicit flags win over file and environment values.
	if cmd.IsSet("host") {
		cfg.Target.Host = cmd.String("host")
	}
	if cmd.IsSet("community") {
		cfg.Target.Community = cmd.String("community")
	}
	if cmd.IsSet("port") {
		cfg.Snmp.Port = uint16(cmd.Int("port"))
	}
	if cmd.IsSet("timeout") {
		cfg.Snmp.TimeoutMS = int(cmd.Duration("timeout") / time.Millisecond)
	}
	if cmd.IsSet("retries") {
		cfg.Snmp.Retries = int(cmd.Int("retries"))
	}
	if cmd.IsSet("ping-timeout") {
		cfg.Ping.TimeoutMS = int(cmd.Duration("ping-timeout") / time.Millisecond)
	}
	if cmd.Bool("verbose") {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	prober := probe.NewPinger(cfg.Ping.GetTimeout(), logger)
	gateway := snmp.NewClient(
		cfg.Target.Host,
		cfg.Target.Community,
		cfg.Snmp.Port,
		cfg.Snmp.GetTimeout(),
		cfg.Snmp.Retries,
		logger,
	)

	result := check.NewRunner(cfg, prober, gateway, logger).Run()

	fmt.Println(result.Message)
	os.Exit(result.ExitCode)
	return nil
}

// newLogger routes debug output to stderr in verbose mode and discards it
// otherwise, keeping stdout to exactly one line.
func newLogger(verbose bool) *slog.Logger {
	var handler slog.Handler
	if verbose {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	return slog.New(handler).With("run_id", uuid.NewString())
}
