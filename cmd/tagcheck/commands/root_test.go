package commands_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/tagcheck/cmd/tagcheck/commands"
	"github.com/macropower/tagcheck/pkg/manifest"
)

// execute runs a fresh root command with args and captures stdout/stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	tc := commands.NewRootCmd("tagcheck", "", "")
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(outBuf)
	tc.SetErr(errBuf)

	err = tc.Execute()

	return outBuf.String(), errBuf.String(), err
}

// chdirWithManifest switches to a fresh working directory and, if content is
// non-empty, writes it as manifest.json there.
func chdirWithManifest(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	if content != "" {
		err := os.WriteFile(manifest.FileName, []byte(content), 0o600)
		require.NoError(t, err)
	}
}

func TestRootCmd_Match(t *testing.T) {
	chdirWithManifest(t, `{"version": "1.0.1"}`)

	stdout, stderr, err := execute(t, "1.0.1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Version validated: 1.0.1")
	assert.Empty(t, stderr)
}

func TestRootCmd_Mismatch(t *testing.T) {
	chdirWithManifest(t, `{"version": "1.0.0"}`)

	stdout, _, err := execute(t, "1.0.1")
	require.Error(t, err)
	assert.Contains(t, stdout, "::error::Version mismatch!")
	assert.Contains(t, stdout, "1.0.1")
	assert.Contains(t, stdout, "1.0.0")
}

func TestRootCmd_ManifestNotFound(t *testing.T) {
	chdirWithManifest(t, "")

	stdout, _, err := execute(t, "1.0.1")
	require.Error(t, err)
	assert.Contains(t, stdout, "::error::manifest.json not found")
}

func TestRootCmd_ParseError(t *testing.T) {
	chdirWithManifest(t, `{invalid json`)

	stdout, _, err := execute(t, "1.0.1")
	require.Error(t, err)
	assert.Contains(t, stdout, "::error::Failed to parse manifest.json")
}

func TestRootCmd_MissingVersionField(t *testing.T) {
	chdirWithManifest(t, `{"name": "x"}`)

	stdout, _, err := execute(t, "1.0.1")
	require.Error(t, err)
	assert.Contains(t, stdout, "::error::No 'version' field found in manifest.json")
}

func TestRootCmd_UsageErrors(t *testing.T) {
	tcs := map[string]struct {
		args []string
	}{
		"no arguments":    {args: []string{}},
		"two arguments":   {args: []string{"1.0.1", "1.0.2"}},
		"three arguments": {args: []string{"1.0.1", "1.0.2", "1.0.3"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			// A usage error must not touch the manifest, so a valid one in
			// the working directory must make no difference.
			chdirWithManifest(t, `{"version": "1.0.1"}`)

			stdout, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.NotContains(t, stdout, "Version validated")

			// Cobra routes usage output through OutOrStderr, which is the
			// stdout buffer here.
			assert.Contains(t, stdout, "Usage:")
			assert.Contains(t, stdout, "tagcheck <expected-version>")
		})
	}
}

func TestRootCmd_LoggingFlags(t *testing.T) {
	tcs := map[string]struct {
		logLevel  string
		logFormat string
		wantErr   error
	}{
		"text format": {
			logLevel:  "debug",
			logFormat: "text",
		},
		"logfmt format": {
			logLevel:  "info",
			logFormat: "logfmt",
		},
		"json format": {
			logLevel:  "warn",
			logFormat: "json",
		},
		"invalid log level": {
			logLevel:  "loud",
			logFormat: "text",
			wantErr:   commands.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "xml",
			wantErr:   commands.ErrLogHandlerFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			chdirWithManifest(t, `{"version": "1.0.1"}`)

			stdout, _, err := execute(t,
				"--log_level", tc.logLevel,
				"--log_format", tc.logFormat,
				"1.0.1",
			)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Contains(t, stdout, "✓ Version validated: 1.0.1")
		})
	}
}

func TestRootCmd_Idempotent(t *testing.T) {
	chdirWithManifest(t, `{"version": "2.5.0"}`)

	first, _, err := execute(t, "2.5.0")
	require.NoError(t, err)

	second, _, err := execute(t, "2.5.0")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRootCmd_HelpMentionsVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version")
}
