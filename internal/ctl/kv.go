package ctl

import (
	"context"
	"encoding/json"
	"fmt"
)

// cmdGet prints the raw stored value of one key.
func (a *App) cmdGet(ctx context.Context, s *session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <key>")
	}

	value, found, err := s.engine.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("key %q not found", args[0])
	}

	fmt.Fprintln(a.out, string(value))
	return nil
}

// cmdSet stores a raw JSON value and flushes immediately so the write is
// durable before the process exits.
func (a *App) cmdSet(ctx context.Context, s *session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <key> <json>")
	}
	if !json.Valid([]byte(args[1])) {
		return fmt.Errorf("value is not valid JSON")
	}

	if err := s.engine.Set(ctx, args[0], json.RawMessage(args[1])); err != nil {
		return err
	}
	if err := s.engine.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "stored %s\n", args[0])
	return nil
}

// cmdRemove deletes the given keys.
func (a *App) cmdRemove(ctx context.Context, s *session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: rm <key>...")
	}

	if err := s.engine.Remove(ctx, args...); err != nil {
		return err
	}
	if err := s.engine.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "removed %d key(s)\n", len(args))
	return nil
}
