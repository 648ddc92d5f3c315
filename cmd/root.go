// Package cmd wires up the CLI flags and dispatches to the probe core.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"kexhold/config"
	"kexhold/internal/metrics"
	"kexhold/internal/probe"
	"kexhold/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X kexhold/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs one probe session.
func Execute(ctx context.Context, args []string) error {
	cfg := config.New()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("kexhold", flag.ContinueOnError)

	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.NoDNS, "no-dns", "n", cfg.NoDNS, "Numeric-only, no DNS resolution")
	fs.IntVar(&cfg.MaxConcur, "max-concur", cfg.MaxConcur, "Maximum simultaneous connections")
	fs.IntVar(&cfg.BufferSize, "buffer-size", cfg.BufferSize, "Per-connection receive buffer bytes")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("kexhold %s\n", version)
		return nil
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		return fmt.Errorf("exactly one host[:port] argument required (use --help for usage)")
	}
	host, service, err := config.ParseTarget(remaining[0])
	if err != nil {
		return err
	}
	cfg.Host = host
	if service != config.DefaultService {
		// An explicit port in the target wins over the environment.
		cfg.Service = service
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	collector := metrics.New()

	return probe.New(cfg, logger, collector).Run(ctx)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `kexhold - SSH pre-auth session exhaustion prober v%s

Opens as many concurrent connections to an SSH server as it will
permit, exchanges banners, and holds every session at the
key-exchange-init stage without ever completing a key exchange.

Usage:
  kexhold [options] <host[:port]>

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  kexhold target.example.com              Probe port 22
  kexhold -v target.example.com:2222      Probe with narration
  kexhold -n 192.0.2.7                    Skip DNS resolution
  kexhold --max-concur 64 target          Smaller pool
`)
}
