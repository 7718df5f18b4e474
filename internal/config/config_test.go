package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/brightpoint-mcp/internal/detection"
)

// inTempDir runs the test from an empty directory so no stray .env is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	for _, k := range []string{EnvLogLevel, EnvThreshold, EnvExclusionRadius, EnvMedianRadius, EnvMaxScans} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, detection.DefaultParams(), cfg.Detection)
	require.Equal(t, DefaultMaxScans, cfg.MaxScans)
	require.False(t, cfg.Debug())
}

func TestLoad_Overrides(t *testing.T) {
	inTempDir(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvThreshold, "90")
	t.Setenv(EnvExclusionRadius, "12.5")
	t.Setenv(EnvMedianRadius, "10")
	t.Setenv(EnvMaxScans, "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Debug())
	require.Equal(t, detection.Params{ExclusionRadius: 12.5, Threshold: 90, MedianRadius: 10}, cfg.Detection)
	require.Equal(t, 3, cfg.MaxScans)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv(EnvThreshold, "")
	os.Unsetenv(EnvThreshold)
	t.Cleanup(func() { os.Unsetenv(EnvThreshold) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvThreshold+"=42\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint8(42), cfg.Detection.Threshold)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvThreshold, "300"},
		{EnvThreshold, "bright"},
		{EnvExclusionRadius, "wide"},
		{EnvExclusionRadius, "-1"},
		{EnvExclusionRadius, "NaN"},
		{EnvExclusionRadius, "+Inf"},
		{EnvExclusionRadius, "1e300"},
		{EnvMedianRadius, "4.5"},
		{EnvMedianRadius, "-2"},
		{EnvMedianRadius, "4611686018427387904"},
		{EnvMaxScans, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			inTempDir(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
