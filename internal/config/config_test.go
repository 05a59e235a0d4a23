package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/ipcs/pkg/model"
)

var envNames = []string{"CONFIG", "LEGACY", "PROC_ROOT", "SOURCE", "COLOR", "LOG_LEVEL", "LOG_DEV"}

// clearEnv unsets every variable Load consults; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envNames {
		key := EnvPrefix + "_" + name
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Legacy)
	assert.Equal(t, DefaultProcRoot, cfg.ProcRoot)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Source)
}

func TestLoadPrefixedKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("IPCS_LEGACY", "true")
	t.Setenv("IPCS_PROC_ROOT", "/tmp/sysvipc")
	t.Setenv("IPCS_SOURCE", "lab")
	t.Setenv("IPCS_COLOR", ColorAuto)
	t.Setenv("IPCS_LOG_LEVEL", "debug")
	t.Setenv("IPCS_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Legacy)
	assert.Equal(t, "/tmp/sysvipc", cfg.ProcRoot)
	assert.Equal(t, "lab", cfg.Source)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDev)
}

func TestLoadIgnoresUnprefixedVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEGACY", "true")
	t.Setenv("PROC_ROOT", "/elsewhere")
	t.Setenv("SOURCE", "leaked")
	t.Setenv("COLOR", "1")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_DEV", "yes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigFileEnv, filepath.Join("testdata", "ipcs.yaml"))
	t.Setenv("IPCS_SOURCE", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Legacy, "file value should apply")
	assert.Equal(t, ColorAlways, cfg.Color, "file value should apply")
	assert.Equal(t, "info", cfg.LogLevel, "file value should apply")
	assert.Equal(t, "from-env", cfg.Source, "environment should override file")
	assert.Equal(t, DefaultProcRoot, cfg.ProcRoot, "missing key keeps default")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing file", map[string]string{ConfigFileEnv: filepath.Join("testdata", "nope.yaml")}},
		{"broken file", map[string]string{ConfigFileEnv: filepath.Join("testdata", "broken.yaml")}},
		{"bad color", map[string]string{"IPCS_COLOR": "rainbow"}},
		{"bad log level", map[string]string{"IPCS_LOG_LEVEL": "loud"}},
		{"bad bool", map[string]string{"IPCS_LEGACY": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateProcRoot(t *testing.T) {
	cfg := Default()
	cfg.ProcRoot = ""
	assert.Error(t, cfg.Validate())

	cfg.Legacy = true
	assert.NoError(t, cfg.Validate(), "legacy mode never reads the proc root")
}

func parseSelection(t *testing.T, args ...string) Selection {
	t.Helper()
	var s Selection
	cmd := &cobra.Command{Use: "ipcs"}
	s.AddReportFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return s
}

func TestSelectionFacilities(t *testing.T) {
	tests := []struct {
		args []string
		want []model.Facility
	}{
		{nil, model.Facilities},
		{[]string{"-t"}, model.Facilities},
		{[]string{"-q"}, []model.Facility{model.FacilityMessageQueue}},
		{[]string{"-s", "-q"}, []model.Facility{model.FacilityMessageQueue, model.FacilitySemaphore}},
		{[]string{"-smq"}, model.Facilities},
		{[]string{"--shm"}, []model.Facility{model.FacilitySharedMemory}},
	}

	for _, tt := range tests {
		s := parseSelection(t, tt.args...)
		assert.Equal(t, tt.want, s.Facilities(), "args %v", tt.args)
	}
}

func TestSelectionOptions(t *testing.T) {
	tests := []struct {
		args []string
		want model.Option
	}{
		{nil, model.OptNone},
		{[]string{"-a"}, model.OptAll},
		{[]string{"-t", "-b"}, model.OptTime | model.OptBytes},
		{[]string{"-bcopt"}, model.OptAll},
		{[]string{"-c", "-a"}, model.OptAll},
		{[]string{"-qo"}, model.OptOutstanding},
		{[]string{"--pids"}, model.OptProcess},
	}

	for _, tt := range tests {
		s := parseSelection(t, tt.args...)
		assert.Equal(t, tt.want, s.Options(), "args %v", tt.args)
	}
}

func TestSelectionUnknownFlag(t *testing.T) {
	var s Selection
	cmd := &cobra.Command{Use: "ipcs"}
	s.AddReportFlags(cmd)
	assert.Error(t, cmd.Flags().Parse([]string{"-z"}))
}
