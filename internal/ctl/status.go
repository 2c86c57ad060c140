package ctl

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// pinger is satisfied by grpckv.Store; embedded stores have no liveness to
// report.
type pinger interface {
	Ping(ctx context.Context) error
}

// cmdStatus prints daemon liveness, storage usage, vault health and the
// configuration validation report.
func (a *App) cmdStatus(ctx context.Context, s *session) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	if p, ok := s.store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			fmt.Fprintf(w, "daemon:\tunreachable (%v)\n", err)
			w.Flush()
			return err
		}
		fmt.Fprintf(w, "daemon:\tok\n")
	}

	stats, err := s.engine.Stats(ctx)
	if err != nil {
		return fmt.Errorf("reading storage stats: %w", err)
	}
	fmt.Fprintf(w, "keys:\t%d\n", stats.KeyCount)
	if stats.QuotaBytes > 0 {
		fmt.Fprintf(w, "usage:\t%d / %d bytes (%.1f%%)\n", stats.BytesInUse, stats.QuotaBytes, stats.UsagePercent)
	} else {
		fmt.Fprintf(w, "usage:\t%d bytes\n", stats.BytesInUse)
	}

	if err := s.vault.HealthCheck(ctx); err != nil {
		fmt.Fprintf(w, "vault:\tfailing (%v)\n", err)
	} else {
		fmt.Fprintf(w, "vault:\tok\n")
	}

	report, err := s.config.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	fmt.Fprintf(w, "config:\tvalid=%v\n", report.Valid)
	for _, e := range report.Errors {
		fmt.Fprintf(w, "  error:\t%s\n", e)
	}
	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "  warning:\t%s\n", warn)
	}
	for _, sug := range report.Suggestions {
		fmt.Fprintf(w, "  suggestion:\t%s\n", sug)
	}

	return w.Flush()
}
