// Package config resolves CLI settings from flags and environment variables.
// A flag set on the command line wins over its environment variable; the
// environment wins over the built-in default.
package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/quotaflow/batch"
	"github.com/katalvlaran/quotaflow/flow"
)

const (
	envLogLevel    = "QUOTAFLOW_LOG_LEVEL"
	envFormat      = "QUOTAFLOW_FORMAT"
	envCheckLimits = "CHECK_LIMITS"

	flagFormat        = "format"
	flagLogLevel      = "log-level"
	flagVerbose       = "verbose"
	flagPotentials    = "potentials"
	flagCheckLimits   = "check-limits"
	flagTimeLimit     = "time-limit"
	flagMemoryLimitMB = "memory-limit-mb"

	defaultLogLevel      = "warn"
	defaultTimeLimit     = 2 * time.Second
	defaultMemoryLimitMB = 1024
)

// Config is the resolved run configuration.
type Config struct {
	Format        batch.Format
	LogLevel      logrus.Level
	Potentials    flow.PotentialInit
	CheckLimits   bool
	TimeLimit     time.Duration
	MemoryLimitMB int
}

// Flags holds raw flag values before resolution.
type Flags struct {
	Format        string
	LogLevel      string
	Verbose       bool
	Potentials    string
	CheckLimits   bool
	TimeLimit     time.Duration
	MemoryLimitMB int
}

// BindFlags registers every setting on fs and returns the struct they fill.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Format, flagFormat, string(batch.FormatText), "output format: text or json")
	fs.StringVar(&f.LogLevel, flagLogLevel, defaultLogLevel, "log level: trace, debug, info, warn, error")
	fs.BoolVarP(&f.Verbose, flagVerbose, "v", false, "verbose output (same as --log-level=debug)")
	fs.StringVar(&f.Potentials, flagPotentials, flow.InitZero.String(), "initial potentials: zero or bellman-ford")
	fs.BoolVar(&f.CheckLimits, flagCheckLimits, false, "report elapsed time and allocated memory to stderr")
	fs.DurationVar(&f.TimeLimit, flagTimeLimit, defaultTimeLimit, "time limit reported by --check-limits")
	fs.IntVar(&f.MemoryLimitMB, flagMemoryLimitMB, defaultMemoryLimitMB, "memory limit in MB reported by --check-limits")

	return f
}

// Load resolves f against the environment. getenv is usually os.Getenv.
// fs tells which flags were set explicitly.
func Load(fs *pflag.FlagSet, f *Flags, getenv func(string) string) (*Config, error) {
	format := f.Format
	if v := getenv(envFormat); v != "" && !fs.Changed(flagFormat) {
		format = v
	}
	level := f.LogLevel
	if v := getenv(envLogLevel); v != "" && !fs.Changed(flagLogLevel) {
		level = v
	}
	checkLimits := f.CheckLimits || getenv(envCheckLimits) != ""

	raw := rawConfig{
		format:        format,
		level:         level,
		verbose:       f.Verbose,
		potentials:    f.Potentials,
		checkLimits:   checkLimits,
		timeLimit:     f.TimeLimit,
		memoryLimitMB: f.MemoryLimitMB,
	}

	return raw.resolve()
}

type rawConfig struct {
	format        string
	level         string
	verbose       bool
	potentials    string
	checkLimits   bool
	timeLimit     time.Duration
	memoryLimitMB int
}

// resolve parses every field and reports all problems at once.
func (r rawConfig) resolve() (*Config, error) {
	c := &Config{
		CheckLimits:   r.checkLimits,
		TimeLimit:     r.timeLimit,
		MemoryLimitMB: r.memoryLimitMB,
	}
	var errs []error

	var err error
	if c.Format, err = batch.ParseFormat(r.format); err != nil {
		errs = append(errs, err)
	}
	if c.Potentials, err = flow.ParsePotentialInit(strings.ToLower(r.potentials)); err != nil {
		errs = append(errs, err)
	}
	if r.verbose {
		c.LogLevel = logrus.DebugLevel
	} else if c.LogLevel, err = logrus.ParseLevel(r.level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
