package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.ECLPath)
	assert.Equal(t, []string{"eclrun", "--report-versions", "eclipse"}, cfg.Release.ReportCommand)
	assert.Equal(t, "2019.3", cfg.Release.DefaultVersion)
	assert.Equal(t, "manuals/bookshelf.pdf", cfg.Release.ManualSuffix)
	assert.Equal(t, 10*time.Second, cfg.Release.Timeout)
	assert.Equal(t, []string{"/usr/bin/evince", "/usr/bin/okular", "/usr/bin/acroread", "/usr/bin/xpdf"}, cfg.Viewers)
	assert.Equal(t, []string{"flow", "flowdaily"}, cfg.Simulators.Candidates)
}

// isolate runs the test from an empty directory with HOME and XDG pointed at
// empty directories, so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	origSystem := systemConfigDir
	systemConfigDir = t.TempDir()
	t.Cleanup(func() { systemConfigDir = origSystem })
	for _, k := range []string{"ECLPATH", "ECLMAN_FORMAT", "ECLMAN_QUIET", "ECLMAN_VERBOSE", "ECLMAN_DEFAULT_VERSION", "ECLMAN_VIEWERS"} {
		t.Setenv(k, "")
	}
	return tmpDir
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		isolate(t)

		cfg, meta, err := LoadWithMeta()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "text", cfg.Format)
		assert.Empty(t, meta.ConfigFile)
		assert.Empty(t, meta.EnvKeys)
	})

	t.Run("loads config from working directory", func(t *testing.T) {
		dir := isolate(t)
		content := `
format: ndjson
eclpath: /prog/ecl/grid
release:
  default_version: "2020.2"
  timeout: 3s
viewers:
  - /usr/local/bin/zathura
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".eclman.yaml"), []byte(content), 0o644))

		cfg, meta, err := LoadWithMeta()
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.Equal(t, "/prog/ecl/grid", cfg.ECLPath)
		assert.Equal(t, "2020.2", cfg.Release.DefaultVersion)
		assert.Equal(t, 3*time.Second, cfg.Release.Timeout)
		assert.Equal(t, "manuals/bookshelf.pdf", cfg.Release.ManualSuffix, "unset keys keep defaults")
		assert.Equal(t, []string{"/usr/local/bin/zathura"}, cfg.Viewers)
		assert.Contains(t, meta.ConfigFile, ".eclman.yaml")
		assert.Contains(t, meta.FileKeys, "eclpath")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "eclman.yml"), []byte("eclpath: /from/file\n"), 0o644))
		t.Setenv("ECLPATH", "/from/env")
		t.Setenv("ECLMAN_VERBOSE", "1")
		t.Setenv("ECLMAN_VIEWERS", "/a/evince"+string(os.PathListSeparator)+"/b/xpdf")

		cfg, meta, err := LoadWithMeta()
		require.NoError(t, err)

		assert.Equal(t, "/from/env", cfg.ECLPath)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, []string{"/a/evince", "/b/xpdf"}, cfg.Viewers)
		assert.ElementsMatch(t, []string{"eclpath", "verbose", "viewers"}, meta.EnvKeys)
	})
}

func TestFindConfigFile(t *testing.T) {
	foreign := []byte("format: json\nviewers: [/bin/false]\n")

	t.Run("ignores a bare config.yaml in the working directory", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), foreign, 0o644))

		assert.Empty(t, findConfigFile())

		cfg, meta, err := LoadWithMeta()
		require.NoError(t, err)
		assert.Empty(t, meta.ConfigFile)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, Default().Viewers, cfg.Viewers)
	})

	t.Run("ignores a bare config.yaml in home", func(t *testing.T) {
		isolate(t)
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), foreign, 0o644))

		assert.Empty(t, findConfigFile())
	})

	t.Run("loads config.yaml from the eclman config directory", func(t *testing.T) {
		isolate(t)
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		path := filepath.Join(xdg, "eclman", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("format: ndjson\n"), 0o644))

		assert.Equal(t, path, findConfigFile())
	})

	t.Run("loads config.yaml from the system directory", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(systemConfigDir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: ndjson\n"), 0o644))

		assert.Equal(t, path, findConfigFile())
	})

	t.Run("working directory wins over the config directory", func(t *testing.T) {
		dir := isolate(t)
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		require.NoError(t, os.MkdirAll(filepath.Join(xdg, "eclman"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(xdg, "eclman", "config.yaml"), []byte("format: text\n"), 0o644))
		local := filepath.Join(dir, ".eclman.yml")
		require.NoError(t, os.WriteFile(local, []byte("format: ndjson\n"), 0o644))

		assert.Equal(t, local, findConfigFile())
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("returns error for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o644))

		cfg, err := LoadFromFile(configPath)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parses all config fields", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
format: ndjson
quiet: true
verbose: true
eclpath: /prog/ecl/grid
release:
  report_command: [/opt/eclrun, --report-versions, e300]
  default_version: "2018.1"
  manual_suffix: doc/index.pdf
  timeout: 500ms
viewers: [/usr/bin/okular]
simulators:
  candidates: [flow]
  extra_paths: [/opt/opm/bin]
  eclipse_marker: /opt/ecl
`
		configPath := filepath.Join(tmpDir, "eclman.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "/prog/ecl/grid", cfg.ECLPath)
		assert.Equal(t, []string{"/opt/eclrun", "--report-versions", "e300"}, cfg.Release.ReportCommand)
		assert.Equal(t, "2018.1", cfg.Release.DefaultVersion)
		assert.Equal(t, "doc/index.pdf", cfg.Release.ManualSuffix)
		assert.Equal(t, 500*time.Millisecond, cfg.Release.Timeout)
		assert.Equal(t, []string{"/usr/bin/okular"}, cfg.Viewers)
		assert.Equal(t, []string{"flow"}, cfg.Simulators.Candidates)
		assert.Equal(t, []string{"/opt/opm/bin"}, cfg.Simulators.ExtraPaths)
		assert.Equal(t, "/opt/ecl", cfg.Simulators.EclipseMarker)
	})
}

func TestComputeSources(t *testing.T) {
	meta := &Meta{
		FileKeys: []string{"release.timeout", "viewers"},
		EnvKeys:  []string{"eclpath", "viewers"},
	}
	sources := ComputeSources(meta, map[string]bool{"format": true, "version": true})

	assert.Equal(t, "flag", sources["format"])
	assert.Equal(t, "env", sources["eclpath"])
	assert.Equal(t, "env", sources["viewers"])
	assert.Equal(t, "file", sources["release"])
	assert.Equal(t, "default", sources["quiet"])
	assert.NotContains(t, sources, "version")

	assert.Equal(t, "default", ComputeSources(nil, nil)["eclpath"])
}
