package ctl

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

// cmdExport writes the configuration to a file or stdout. With -protect the
// document is wrapped in a password envelope and can be imported on another
// installation.
func (a *App) cmdExport(ctx context.Context, s *session, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.errw)
	outPath := fs.String("o", "", "output file (default stdout)")
	protect := fs.Bool("protect", false, "encrypt the export with a password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var password string
	if *protect {
		pw, err := a.promptPassword("Enter export password: ")
		if err != nil {
			return err
		}
		confirm, err := a.promptPassword("Repeat password: ")
		if err != nil {
			return err
		}
		if string(pw) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}
		password = string(pw)
	}

	data, err := s.config.Export(ctx, password)
	if err != nil {
		return fmt.Errorf("exporting config: %w", err)
	}

	if *outPath == "" {
		_, err = a.out.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(*outPath, data, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "exported to %s\n", *outPath)
	return nil
}

// cmdImport reads a configuration from a file or stdin, validates it and
// commits it through the normal persist path.
func (a *App) cmdImport(ctx context.Context, s *session, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(a.errw)
	inPath := fs.String("i", "", "input file (default stdin)")
	protect := fs.Bool("protect", false, "the import is password protected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var data []byte
	var err error
	if *inPath == "" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(*inPath)
	}
	if err != nil {
		return err
	}

	var password string
	if *protect {
		pw, perr := a.promptPassword("Enter import password: ")
		if perr != nil {
			return perr
		}
		password = string(pw)
	}

	if err := s.config.Import(ctx, data, password); err != nil {
		return fmt.Errorf("importing config: %w", err)
	}
	if err := s.engine.Flush(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "config imported")
	return nil
}
