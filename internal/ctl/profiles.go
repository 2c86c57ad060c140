package ctl

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// cmdProfiles lists the credential profiles; the active one is marked.
func (a *App) cmdProfiles(ctx context.Context, s *session) error {
	cfg := s.config.Config(ctx)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tNAME\tAPP ID\tTABLE\tUPDATED")
	for _, p := range cfg.FeishuConfigs {
		marker := ""
		if p.ID == cfg.ActiveConfigID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, p.ID, p.Name, p.AppID, p.TableID, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
