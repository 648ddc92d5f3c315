// Package probe implements the core of kexhold: a pool of
// pre-authentication SSH handshake state machines driven by a
// single-threaded poll loop.
package probe

import (
	"context"

	"kexhold/config"
	"kexhold/internal/metrics"
	"kexhold/internal/transport"
	"kexhold/util"
)

// Prober orchestrates a run: resolve the target once, then try each
// candidate endpoint until one of them accepts at least one connection.
type Prober struct {
	Config  *config.Config
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Dialer may be overridden in tests; nil selects the socket dialer.
	Dialer transport.Dialer
}

// New returns a ready-to-run Prober.
func New(cfg *config.Config, logger *util.Logger, m *metrics.Collector) *Prober {
	return &Prober{Config: cfg, Logger: logger, Metrics: m}
}

// Run resolves the target and probes candidate endpoints in resolver
// order, stopping at the first one that yields a successful open.
// Opening zero connections everywhere is a normal completion, not an
// error; only resolution failure and poll failure are.
func (p *Prober) Run(ctx context.Context) error {
	dialer := p.Dialer
	if dialer == nil {
		dialer = transport.SocketDialer{}
	}

	eps, err := util.ResolveEndpoints(ctx, p.Config.Host, p.Config.Service, p.Config.NoDNS)
	if err != nil {
		return err
	}
	p.Logger.Verbose("resolved %s to %d endpoint(s)", p.Config.Host, len(eps))

	for _, ep := range eps {
		if ctx.Err() != nil {
			break
		}
		p.Logger.Info("probing %s with up to %d connections", ep, p.Config.MaxConcur)

		pool := NewPool(p.Config.MaxConcur, p.Config.BufferSize, dialer, p.Logger, p.Metrics)
		opened, err := NewLoop(pool, p.Logger).Run(ctx, ep)
		if err != nil {
			if ctx.Err() != nil {
				p.Logger.Info("interrupted; opened %d connection(s) to %s", opened, ep)
				break
			}
			return err
		}

		p.Logger.Info("opened %d connection(s) to %s", opened, ep)
		if opened > 0 {
			break
		}
	}

	p.Logger.Info("run summary: %s", p.Metrics.Summary())
	return nil
}
