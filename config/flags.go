package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// TickIntervalFlag is the wall-clock period between frames
	TickIntervalFlag = "tick-interval"
	// FadeFlag is the duration of fade-pause and fade-resume
	FadeFlag = "fade"
	// ResumeScaleFlag is the scale restored when resuming
	ResumeScaleFlag = "resume-scale"
	// SlowScaleFlag is the slow motion target
	SlowScaleFlag = "slow-scale"
	// FastScaleFlag is the fast forward target
	FastScaleFlag = "fast-scale"
	// SpritesFlag is the number of demo sprites
	SpritesFlag = "sprites"
	// AudioFlag enables the pitch-following tone
	AudioFlag = "audio"
	// DebugFlag enables debug logging
	DebugFlag = "debug"
	// LogFileFlag is the path logs are written to while the terminal is active
	LogFileFlag = "log-file"
	// ReplayFlag is a replay script to run headless instead of the terminal
	ReplayFlag = "replay"
	// ConfigFlag is an optional YAML config file
	ConfigFlag = "config"
	// HelpFlag is the name of the flag to request printing program usage
	HelpFlag = "help"

	envPrefix = "timescale"
)

// ErrInvalidConfig is returned when a setting is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved program configuration
type Config struct {
	TickInterval time.Duration `mapstructure:"tick-interval"`
	Fade         time.Duration `mapstructure:"fade"`
	ResumeScale  float64       `mapstructure:"resume-scale"`
	SlowScale    float64       `mapstructure:"slow-scale"`
	FastScale    float64       `mapstructure:"fast-scale"`
	Sprites      int           `mapstructure:"sprites"`
	Audio        bool          `mapstructure:"audio"`
	Debug        bool          `mapstructure:"debug"`
	LogFile      string        `mapstructure:"log-file"`
	Replay       string        `mapstructure:"replay"`
	ConfigFile   string        `mapstructure:"config"`
	Help         bool          `mapstructure:"help"`
}

// Init sets up the config flags and binds them into a viper instance
func Init(args []string) (flags *pflag.FlagSet, vcfg *viper.Viper) {
	flags = pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage of %s:\n", args[0])
		flags.PrintDefaults()
	}
	vcfg = viper.New()

	// env values are only typed correctly when every key has an explicit default
	vcfg.SetTypeByDefaultValue(true)

	vcfg.SetDefault(TickIntervalFlag, 16*time.Millisecond)
	flags.Duration(TickIntervalFlag, 16*time.Millisecond, "Wall-clock time between frames")

	vcfg.SetDefault(FadeFlag, time.Second)
	flags.Duration(FadeFlag, time.Second, "Duration of fade-pause and fade-resume")

	vcfg.SetDefault(ResumeScaleFlag, 1.0)
	flags.Float64(ResumeScaleFlag, 1.0, "Scale restored on resume")

	vcfg.SetDefault(SlowScaleFlag, 0.25)
	flags.Float64(SlowScaleFlag, 0.25, "Slow motion scale")

	vcfg.SetDefault(FastScaleFlag, 2.0)
	flags.Float64(FastScaleFlag, 2.0, "Fast forward scale")

	vcfg.SetDefault(SpritesFlag, 12)
	flags.Int(SpritesFlag, 12, "Number of demo sprites")

	vcfg.SetDefault(AudioFlag, false)
	flags.Bool(AudioFlag, false, "Play a tone whose pitch follows the time scale")

	vcfg.SetDefault(DebugFlag, false)
	flags.BoolP(DebugFlag, "d", false, "Enable debug logging output")

	vcfg.SetDefault(LogFileFlag, "")
	flags.String(LogFileFlag, "", "Write logs to this file while the terminal is active")

	vcfg.SetDefault(ReplayFlag, "")
	flags.String(ReplayFlag, "", "Run a replay script headless and print its trace")

	vcfg.SetDefault(ConfigFlag, "")
	flags.StringP(ConfigFlag, "c", "", "YAML config file")

	vcfg.SetDefault(HelpFlag, false)
	flags.BoolP(HelpFlag, "h", false, "Print program usage")

	// flags are constant, binding cannot fail
	if err := vcfg.BindPFlags(flags); err != nil {
		panic(err)
	}
	vcfg.SetEnvPrefix(envPrefix)
	vcfg.AutomaticEnv()
	vcfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return flags, vcfg
}

// Parse reads flags, environment and the optional config file
// Returns nil, nil when only usage was requested
func Parse(flags *pflag.FlagSet, vcfg *viper.Viper, args []string) (*Config, error) {
	if err := flags.Parse(args[1:]); err != nil {
		flags.Usage()
		return nil, err
	}

	if help, _ := flags.GetBool(HelpFlag); help {
		flags.SetOutput(os.Stdout)
		flags.Usage()
		return nil, nil
	}

	if path := vcfg.GetString(ConfigFlag); path != "" {
		vcfg.SetConfigFile(path)
		vcfg.SetConfigType("yaml")
		if err := vcfg.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %q", path)
		}
	}

	cfg := new(Config)
	if err := vcfg.UnmarshalExact(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting against its allowed range
func (c *Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %s", TickIntervalFlag, c.TickInterval)
	case c.Fade < 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must not be negative, got %s", FadeFlag, c.Fade)
	case !(c.ResumeScale > 0):
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %g", ResumeScaleFlag, c.ResumeScale)
	case !(c.SlowScale > 0):
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %g", SlowScaleFlag, c.SlowScale)
	case !(c.FastScale > 0):
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %g", FastScaleFlag, c.FastScale)
	case c.Sprites < 0:
		return errors.Wrapf(ErrInvalidConfig, "%s must not be negative, got %d", SpritesFlag, c.Sprites)
	}
	return nil
}
