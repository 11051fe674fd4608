package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flyinginsectsunpig/crimereport/internal/logger"
	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CRIMEREPORT"
	dotEnvFile     = ".env"

	// Config keys.
	cfgKeyBackend   = "backend"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeySeed      = "seed"

	defaultBackend   = types.BackendMemory
	defaultLogLevel  = "warn"
	defaultLogFormat = logger.FormatText
)

// flagKeys maps root command flags onto the config keys they override.
var flagKeys = map[string]string{
	"backend":   cfgKeyBackend,
	"log-level": cfgKeyLogLevel,
	"seed":      cfgKeySeed,
}

// settings is the resolved runtime configuration.
type settings struct {
	Backend   string `mapstructure:"backend" yaml:"backend"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	Seed      bool   `mapstructure:"seed" yaml:"seed"`
}

// defaultSettings are the values init writes and viper falls back to.
func defaultSettings() settings {
	return settings{
		Backend:   defaultBackend,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Seed:      false,
	}
}

// storeConfig returns the store selection part of s.
func (s settings) storeConfig() types.Config {
	return types.Config{Backend: s.Backend}
}

// loadSettings resolves configuration with precedence
// flag > CRIMEREPORT_* env (including .env) > config.yaml > defaults.
// A missing config.yaml or .env is not an error.
func loadSettings(cmd *cobra.Command, configDir string) (settings, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return settings{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	v := viper.New()
	d := defaultSettings()
	v.SetDefault(cfgKeyBackend, d.Backend)
	v.SetDefault(cfgKeyLogLevel, d.LogLevel)
	v.SetDefault(cfgKeyLogFormat, d.LogFormat)
	v.SetDefault(cfgKeySeed, d.Seed)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return settings{}, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.storeConfig().Validate(); err != nil {
		return settings{}, fmt.Errorf("config %s=%q: %w", cfgKeyBackend, s.Backend, err)
	}
	return s, nil
}
