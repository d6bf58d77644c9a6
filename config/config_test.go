package config_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quotaflow/batch"
	"github.com/katalvlaran/quotaflow/config"
	"github.com/katalvlaran/quotaflow/flow"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func load(t *testing.T, args []string, getenv func(string) string) (*config.Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := config.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return config.Load(fs, f, getenv)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := load(t, nil, env(nil))
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		Format:        batch.FormatText,
		LogLevel:      logrus.WarnLevel,
		Potentials:    flow.InitZero,
		TimeLimit:     2 * time.Second,
		MemoryLimitMB: 1024,
	}, c)
}

func TestLoad_Flags(t *testing.T) {
	c, err := load(t, []string{
		"--format=json", "--log-level=info", "--potentials=bellman-ford",
		"--check-limits", "--time-limit=500ms", "--memory-limit-mb=64",
	}, env(nil))
	require.NoError(t, err)
	require.Equal(t, batch.FormatJSON, c.Format)
	require.Equal(t, logrus.InfoLevel, c.LogLevel)
	require.Equal(t, flow.InitBellmanFord, c.Potentials)
	require.True(t, c.CheckLimits)
	require.Equal(t, 500*time.Millisecond, c.TimeLimit)
	require.Equal(t, 64, c.MemoryLimitMB)
}

func TestLoad_EnvFallback(t *testing.T) {
	c, err := load(t, nil, env(map[string]string{
		"QUOTAFLOW_FORMAT":    "json",
		"QUOTAFLOW_LOG_LEVEL": "error",
		"CHECK_LIMITS":        "1",
	}))
	require.NoError(t, err)
	require.Equal(t, batch.FormatJSON, c.Format)
	require.Equal(t, logrus.ErrorLevel, c.LogLevel)
	require.True(t, c.CheckLimits)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	c, err := load(t, []string{"--format=text"}, env(map[string]string{"QUOTAFLOW_FORMAT": "json"}))
	require.NoError(t, err)
	require.Equal(t, batch.FormatText, c.Format)
}

func TestLoad_VerboseForcesDebug(t *testing.T) {
	c, err := load(t, []string{"-v", "--log-level=error"}, env(nil))
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, c.LogLevel)
}

func TestLoad_CollectsAllErrors(t *testing.T) {
	_, err := load(t, []string{"--format=xml", "--potentials=simplex", "--log-level=loud"}, env(nil))
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "configuration errors")
	require.Contains(t, msg, `"xml"`)
	require.Contains(t, msg, `"simplex"`)
	require.Contains(t, msg, "loud")
}

func TestValidate_Limits(t *testing.T) {
	_, err := load(t, []string{"--time-limit=0s", "--memory-limit-mb=-1"}, env(nil))
	require.ErrorIs(t, err, config.ErrBadTimeLimit)
	require.ErrorIs(t, err, config.ErrBadMemoryLimit)
	require.Contains(t, err.Error(), "config: time-limit must be positive")
}
