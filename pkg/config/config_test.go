package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/paths"
	"github.com/arthur-debert/codec/pkg/testutil"
)

// isolateEnv clears the variables Load reads so the developer's own
// environment cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return testutil.CreateFile(t, dir, paths.ConfigFileName, content)
}

func TestLoadSingleFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `templates_path = "/srv/templates"

[variables]
author = "ann"
`)

	cfg, err := Load(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "/srv/templates", cfg.TemplatesPath)
	assert.Equal(t, map[string]string{"namespace": "app", "author": "ann"}, cfg.Variables)
	assert.Equal(t, []string{filepath.Join(dir, paths.ConfigFileName)}, cfg.Sources)
	assert.Equal(t, filepath.Join("/srv/templates", "rust"), cfg.TemplatePath("rust"))
}

func TestLoadLayering(t *testing.T) {
	isolateEnv(t)
	global, project := t.TempDir(), t.TempDir()
	writeConfig(t, global, `templates_path = "/global/templates"

[variables]
author = "ann"
license = "MIT"
`)
	writeConfig(t, project, `[variables]
license = "Apache-2.0"
namespace = "billing"
`)

	cfg, err := Load(Options{SearchDirs: []string{global, project}})
	require.NoError(t, err)

	assert.Equal(t, "/global/templates", cfg.TemplatesPath)
	assert.Equal(t, map[string]string{
		"author":    "ann",
		"license":   "Apache-2.0",
		"namespace": "billing",
	}, cfg.Variables)
	assert.Len(t, cfg.Sources, 2)
}

func TestLoadSkipsMissingDirs(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `templates_path = "/t"`)

	cfg, err := Load(Options{SearchDirs: []string{filepath.Join(dir, "missing"), dir}})
	require.NoError(t, err)
	assert.Equal(t, "/t", cfg.TemplatesPath)
	assert.Equal(t, map[string]string{"namespace": "app"}, cfg.Variables)
}

func TestLoadExplicitFile(t *testing.T) {
	isolateEnv(t)
	searched := t.TempDir()
	writeConfig(t, searched, `templates_path = "/searched"`)
	explicit := testutil.CreateFile(t, t.TempDir(), "custom.toml", `templates_path = "/explicit"`)

	cfg, err := Load(Options{SearchDirs: []string{searched}, File: explicit})
	require.NoError(t, err)
	assert.Equal(t, "/explicit", cfg.TemplatesPath)
	assert.Equal(t, explicit, cfg.Sources[len(cfg.Sources)-1])

	t.Run("from environment", func(t *testing.T) {
		t.Setenv(EnvConfigFile, explicit)
		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, "/explicit", cfg.TemplatesPath)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound), "got %v", err)
	})
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `templates_path = "/from/file"

[variables]
author = "ann"
`)
	t.Setenv("CODEC_TEMPLATES_PATH", "/from/env")
	t.Setenv("CODEC_VAR_AUTHOR", "bob")
	t.Setenv("CODEC_VAR_MY_TEAM", "core")
	t.Setenv("CODEC_UNRELATED", "ignored")

	cfg, err := Load(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.TemplatesPath)
	assert.Equal(t, map[string]string{
		"namespace": "app",
		"author":    "bob",
		"my_team":   "core",
	}, cfg.Variables)
}

func TestLoadOverrides(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `templates_path = "/from/file"`)
	t.Setenv("CODEC_TEMPLATES_PATH", "/from/env")

	cfg, err := Load(Options{
		SearchDirs: []string{dir},
		Overrides: map[string]interface{}{
			"templates_path":   "/from/flag",
			"variables.author": "cli",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.TemplatesPath)
	assert.Equal(t, "cli", cfg.Variables["author"])

	t.Run("override alone satisfies lookup", func(t *testing.T) {
		cfg, err := Load(Options{
			SearchDirs: []string{t.TempDir()},
			Overrides:  map[string]interface{}{"templates_path": "/only/flag"},
		})
		require.NoError(t, err)
		assert.Equal(t, "/only/flag", cfg.TemplatesPath)
	})
}

func TestLoadEnvironmentOnly(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CODEC_TEMPLATES_PATH", "/only/env")

	cfg, err := Load(Options{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Equal(t, "/only/env", cfg.TemplatesPath)
	assert.Empty(t, cfg.Sources)
}

func TestLoadExpandsTemplatesPath(t *testing.T) {
	isolateEnv(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TEMPLATES_ROOT", "/opt/tpl")

	tests := []struct {
		raw  string
		want string
	}{
		{"$TEMPLATES_ROOT/codec", "/opt/tpl/codec"},
		{"~/templates", filepath.Join(home, "templates")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, `templates_path = "`+tt.raw+`"`)
			cfg, err := Load(Options{SearchDirs: []string{dir}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TemplatesPath)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	isolateEnv(t)

	t.Run("nothing found", func(t *testing.T) {
		a, b := t.TempDir(), t.TempDir()
		_, err := Load(Options{SearchDirs: []string{a, b}})
		require.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound), "got %v", err)
		assert.Contains(t, err.Error(), filepath.Join(a, paths.ConfigFileName))
		assert.Contains(t, err.Error(), filepath.Join(b, paths.ConfigFileName))
	})

	t.Run("missing templates_path", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[variables]\nauthor = \"ann\"\n")
		_, err := Load(Options{SearchDirs: []string{dir}})
		require.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid), "got %v", err)
		assert.Contains(t, err.Error(), "templates_path")
	})

	t.Run("syntax error", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "templates_path = \n")
		_, err := Load(Options{SearchDirs: []string{dir}})
		require.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		assert.Equal(t, path, errors.DetailString(err, errors.DetailPath))
	})

	t.Run("undefined variable in templates_path", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `templates_path = "$CODEC_TEST_SURELY_UNSET/x"`)
		_, err := Load(Options{SearchDirs: []string{dir}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid), "got %v", err)
	})
}

func TestLoadCoercesScalarVariables(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `templates_path = "/t"

[variables]
year = 2024
`)

	cfg, err := Load(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "2024", cfg.Variables["year"])
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CODEC_TEMPLATES_PATH", "templates_path"},
		{"CODEC_VAR_AUTHOR", "variables.author"},
		{"CODEC_VAR_MY_TEAM", "variables.my_team"},
		{"CODEC_VAR_", ""},
		{"CODEC_CONFIG", ""},
		{"CODEC_CONFIG_DIR", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}
