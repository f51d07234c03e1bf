// Package validate compares an expected release version against the version
// recorded in the project manifest.
package validate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/macropower/tagcheck/pkg/ghactions"
	"github.com/macropower/tagcheck/pkg/manifest"
)

var (
	// ErrNoVersionField indicates the manifest lacks a non-empty version field.
	ErrNoVersionField = errors.New("no version field in manifest")

	// ErrVersionMismatch indicates the manifest version differs from the
	// expected version.
	ErrVersionMismatch = errors.New("version mismatch")
)

// Validator checks a manifest version against an expected value. Diagnostics
// are written to out as GitHub Actions annotations plus plain text; the
// returned error carries the failure class for the caller's exit handling.
type Validator struct {
	resolver *manifest.Resolver
	out      io.Writer
}

// New creates a [Validator]. workDir and execDir seed the manifest search
// paths (working directory first, then the parent of the executable's
// directory); out receives all user-facing output.
func New(workDir, execDir string, out io.Writer) *Validator {
	return &Validator{
		resolver: manifest.NewResolver(workDir, execDir),
		out:      out,
	}
}

// Validate checks that the manifest version equals expected, using exact
// string comparison. Every failure path emits exactly one diagnostic block
// before returning; the check is read-only and idempotent.
func (v *Validator) Validate(expected string) error {
	path, err := v.resolver.Resolve()
	if err != nil {
		ghactions.Errorf(v.out, "manifest.json not found")

		return err
	}

	slog.Debug("resolved manifest", "path", path)

	m, err := manifest.Load(path)
	if err != nil {
		if errors.Is(err, manifest.ErrParse) {
			ghactions.Errorf(v.out, "Failed to parse manifest.json: %v", err)
		} else {
			ghactions.Errorf(v.out, "Failed to read manifest.json: %v", err)
		}

		return err
	}

	if m.Version == "" {
		ghactions.Errorf(v.out, "No 'version' field found in manifest.json")

		return fmt.Errorf("%w: %s", ErrNoVersionField, path)
	}

	if m.Version != expected {
		ghactions.Errorf(v.out, "Version mismatch!")
		fmt.Fprintf(v.out, "  Tag version:      %s\n", expected)
		fmt.Fprintf(v.out, "  Manifest version: %s\n", m.Version)
		fmt.Fprintln(v.out)
		fmt.Fprintln(v.out, "To fix: Update manifest.json version to match your tag,")
		fmt.Fprintln(v.out, "        or create a tag that matches the manifest version.")

		return fmt.Errorf("%w: tag %q, manifest %q", ErrVersionMismatch, expected, m.Version)
	}

	fmt.Fprintf(v.out, "✓ Version validated: %s\n", m.Version)

	return nil
}
