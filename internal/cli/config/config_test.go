package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dupcheck/internal/testutil"
	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
)

// newFlags mirrors the persistent flags registered by the root command.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("project-dir", "", "")
	fs.StringP("format", "f", "", "")
	fs.String("on-malformed", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.BoolP("watch", "w", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func setupProject(t *testing.T, configYAML string) string {
	t.Helper()
	t.Cleanup(ResetConfig)
	t.Cleanup(dupcheck.Reset)

	dir := t.TempDir()
	if configYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dupcheck.yaml"), []byte(configYAML), 0o600))
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := setupProject(t, "")

	cfg, err := LoadConfig("", newFlags(t, "--project-dir", dir))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, []string{DefaultFile}, cfg.Files)
	assert.Equal(t, []string{filepath.Join(dir, "colors", "spring-night.vim")}, cfg.ResolvedFiles())
	assert.Equal(t, dupcheck.FormatCallHi, cfg.Format)
	assert.Equal(t, dupcheck.MalformedError, cfg.OnMalformed)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	dir := setupProject(t, `
files:
  - colors/spring-night.vim
  - colors/autumn.vim
format: legacy
on_malformed: group
output: json
verbose: true
formats:
  legacy:
    description: Pre-generator scheme
    rules:
      - prefix: "HiLink "
        pattern: '^HiLink (\w+)'
`)

	cfg, err := LoadConfig("", newFlags(t, "--project-dir", dir))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "dupcheck.yaml"), GetConfigFileUsed())
	assert.Equal(t, []string{"colors/spring-night.vim", "colors/autumn.vim"}, cfg.Files)
	assert.Equal(t, "legacy", cfg.Format)
	assert.Equal(t, dupcheck.MalformedGroup, cfg.OnMalformed)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Verbose)

	legacy, ok := dupcheck.Lookup("legacy")
	require.True(t, ok)
	assert.False(t, legacy.Builtin)
	assert.Equal(t, "Pre-generator scheme", legacy.Description)

	checker, err := cfg.Checker(testutil.NewTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "legacy", checker.Format().Name)
}

func TestLoadConfig_ExplicitConfigFileAnchorsRoot(t *testing.T) {
	dir := setupProject(t, "")
	cfgPath := filepath.Join(dir, "ci.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: hi\n"), 0o600))

	cfg, err := LoadConfig(cfgPath, newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Equal(t, dupcheck.FormatHi, cfg.Format)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := setupProject(t, "format: hi\noutput: markdown\n")

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("DUPCHECK_FORMAT", "exe-hi")
		t.Setenv("DUPCHECK_ON_MALFORMED", "skip")
		t.Setenv("DUPCHECK_FILES", "a.vim,b.vim")

		cfg, err := LoadConfig("", newFlags(t, "--project-dir", dir))
		require.NoError(t, err)
		assert.Equal(t, dupcheck.FormatExeHi, cfg.Format)
		assert.Equal(t, dupcheck.MalformedSkip, cfg.OnMalformed)
		assert.Equal(t, []string{"a.vim", "b.vim"}, cfg.Files)
		assert.Equal(t, "markdown", cfg.Output)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("DUPCHECK_FORMAT", "exe-hi")
		t.Setenv("DUPCHECK_OUTPUT", "json")

		cfg, err := LoadConfig("", newFlags(t,
			"--project-dir", dir,
			"--format", "generated",
			"--on-malformed", "group",
			"-o", "yaml",
			"-v",
			"--watch",
		))
		require.NoError(t, err)
		assert.Equal(t, dupcheck.FormatGenerated, cfg.Format)
		assert.Equal(t, dupcheck.MalformedGroup, cfg.OnMalformed)
		assert.Equal(t, "yaml", cfg.Output)
		assert.True(t, cfg.Verbose)
	})

	t.Run("unchanged flags keep file values", func(t *testing.T) {
		cfg, err := LoadConfig("", newFlags(t, "--project-dir", dir))
		require.NoError(t, err)
		assert.Equal(t, dupcheck.FormatHi, cfg.Format)
		assert.Equal(t, "markdown", cfg.Output)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		flags     []string
		errSubstr string
	}{
		{
			name:      "unknown format",
			yaml:      "format: nope\n",
			errSubstr: "unknown format",
		},
		{
			name:      "unknown output",
			flags:     []string{"--output", "html"},
			errSubstr: "unknown output format",
		},
		{
			name:      "unknown malformed policy",
			yaml:      "on_malformed: explode\n",
			errSubstr: "unknown malformed-line policy",
		},
		{
			name:      "empty files",
			yaml:      "files: []\n",
			errSubstr: "files is required",
		},
		{
			name: "custom format shadows built-in",
			yaml: `
formats:
  hi:
    rules:
      - prefix: "hi "
        pattern: '^hi (\w+)'
`,
			errSubstr: "shadows a built-in format",
		},
		{
			name: "custom format without capture group",
			yaml: `
formats:
  broken:
    rules:
      - prefix: "HiLink "
        pattern: '^HiLink \w+'
`,
			errSubstr: "no capturing group",
		},
		{
			name: "custom format without rules",
			yaml: `
formats:
  empty:
    description: nothing here
`,
			errSubstr: "has no rules",
		},
		{
			name: "dotted custom format name",
			yaml: `
formats:
  my.fmt:
    rules:
      - prefix: "HiLink "
        pattern: '^HiLink (\w+)'
`,
			errSubstr: `format name "my.fmt" must not contain "."`,
		},
		{
			name:      "malformed yaml",
			yaml:      "format: [unterminated\n",
			errSubstr: "error reading config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t, tt.yaml)
			args := append([]string{"--project-dir", dir}, tt.flags...)

			_, err := LoadConfig("", newFlags(t, args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestInferProjectRoot(t *testing.T) {
	t.Run("git marker above cwd", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o750))
		sub := filepath.Join(root, ".ci", "scripts")
		require.NoError(t, os.MkdirAll(sub, 0o750))
		t.Chdir(sub)

		got, err := filepath.EvalSymlinks(inferProjectRoot("", nil))
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("config file above cwd", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "dupcheck.yml"), []byte("format: hi\n"), 0o600))
		sub := filepath.Join(root, "colors")
		require.NoError(t, os.Mkdir(sub, 0o750))
		t.Chdir(sub)

		got, err := filepath.EvalSymlinks(inferProjectRoot("", nil))
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("project-dir flag wins", func(t *testing.T) {
		root := t.TempDir()
		assert.Equal(t, root, inferProjectRoot(filepath.Join(t.TempDir(), "x.yaml"), newFlags(t, "--project-dir", root)))
	})
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath("", "/repo"))
	assert.Equal(t, "/abs/file.vim", ResolvePath("/abs/file.vim", "/repo"))
	assert.Equal(t, filepath.Join("/repo", "colors", "x.vim"), ResolvePath("colors/x.vim", "/repo"))
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, ctx.Value(LoggerKey()))
}

func TestBuildFormats_RejectsDottedName(t *testing.T) {
	cfg := Default()
	cfg.Formats = map[string]FormatConfig{
		"my.fmt": {Rules: []RuleConfig{{Prefix: "HiLink ", Pattern: `^HiLink (\w+)`}}},
	}

	_, err := cfg.BuildFormats()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `format name "my.fmt" must not contain "."`)
}
