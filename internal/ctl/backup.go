package ctl

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// cmdBackup dispatches the backup subcommands.
func (a *App) cmdBackup(ctx context.Context, s *session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: backup create|list|restore <key>")
	}

	switch args[0] {
	case "create":
		info, err := s.backups.Create(ctx)
		if err != nil {
			return fmt.Errorf("creating backup: %w", err)
		}
		if err := s.config.RecordBackup(ctx); err != nil {
			return err
		}
		if err := s.engine.Flush(ctx); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "created %s (%d keys)\n", info.Key, info.Keys)
		return nil

	case "list":
		infos, err := s.backups.List(ctx)
		if err != nil {
			return fmt.Errorf("listing backups: %w", err)
		}
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tCREATED\tKEYS\tENCRYPTED")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\n",
				info.Key, info.Timestamp.Format("2006-01-02 15:04:05"), info.Keys, info.Encrypted)
		}
		return w.Flush()

	case "restore":
		if len(args) != 2 {
			return fmt.Errorf("usage: backup restore <key>")
		}
		ok, err := a.confirm(fmt.Sprintf("Restore %s? Current data will be replaced", args[1]))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "aborted")
			return nil
		}
		if err := s.backups.Restore(ctx, args[1]); err != nil {
			return fmt.Errorf("restoring backup: %w", err)
		}
		fmt.Fprintf(a.out, "restored %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown backup command %q", args[0])
	}
}
