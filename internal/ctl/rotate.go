package ctl

import (
	"context"
	"fmt"
)

// cmdRotateKey replaces the encryption key. The config manager decrypts all
// sensitive fields first and re-encrypts them under the new key; other vault
// users must be quiesced while this runs.
func (a *App) cmdRotateKey(ctx context.Context, s *session) error {
	ok, err := a.confirm("Rotate the encryption key? Data encrypted outside the configuration becomes unreadable")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "aborted")
		return nil
	}

	if err := s.config.RotateEncryptionKey(ctx); err != nil {
		return fmt.Errorf("rotating key: %w", err)
	}
	if err := s.engine.Flush(ctx); err != nil {
		return err
	}

	version, err := s.vault.KeyVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "key rotated, now at version %d\n", version)
	return nil
}
