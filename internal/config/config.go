// Package config resolves the command line settings from flags, COMPUTOR_*
// environment variables and an optional config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// EnvPrefix is prepended to every environment variable, so the "output" key
// is read from COMPUTOR_OUTPUT.
const EnvPrefix = "COMPUTOR"

// ErrInvalidOutput is returned by [Load] for an unknown output format.
var ErrInvalidOutput = errors.New("invalid output format")

// Config holds the resolved settings.
type Config struct {
	// Output is either OutputText or OutputJSON.
	Output string `mapstructure:"output"`
	// Fractions prints solutions as irreducible fractions too.
	Fractions bool `mapstructure:"fractions"`
	// Steps prints the intermediate values of the computation.
	Steps bool `mapstructure:"steps"`
}

// setting is a single configuration key bound to a flag and environment variable.
type setting struct {
	key      string
	flagName string
	defVal   any
	usage    string
}

var settings = []setting{
	{"output", "output", OutputText, "output format: text or json"},
	{"fractions", "fractions", false, "also print solutions as irreducible fractions"},
	{"steps", "steps", false, "print intermediate steps of the resolution"},
}

// configFileFlag names the flag holding the optional config file path.
const configFileFlag = "config"

// RegisterFlags installs the configuration flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	for _, s := range settings {
		switch def := s.defVal.(type) {
		case string:
			fs.String(s.flagName, def, s.usage)
		case bool:
			fs.Bool(s.flagName, def, s.usage)
		}
	}
	fs.String(configFileFlag, "", "path to a config file (yaml, toml or json)")
}

// Load resolves the configuration for the given parsed FlagSet.
// Explicitly set flags win over environment variables, which win over the
// config file, which wins over the defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, s := range settings {
		v.SetDefault(s.key, s.defVal)
		if err := v.BindEnv(s.key); err != nil {
			return Config{}, fmt.Errorf("binding %s to environment: %w", s.key, err)
		}
		flag := fs.Lookup(s.flagName)
		if flag == nil {
			return Config{}, fmt.Errorf("flag %s (for key %s) is not defined", s.flagName, s.key)
		}
		if err := v.BindPFlag(s.key, flag); err != nil {
			return Config{}, fmt.Errorf("binding %s to flag: %w", s.key, err)
		}
	}

	if flag := fs.Lookup(configFileFlag); flag != nil && flag.Value.String() != "" {
		v.SetConfigFile(flag.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
	}
	return cfg, nil
}
