package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ruffel/procenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PROCENV"

	keyVocabulary = "vocabulary"
	keyLogLevel   = "log-level"
	keyConfig     = "config"
)

// settings is the resolved configuration for one invocation.
type settings struct {
	Vocabulary procenv.Vocabulary
	LogLevel   log.Level
}

// loadSettings resolves flags, PROCENV_* environment variables, and the optional
// config file, in that order of precedence.
func loadSettings(v *viper.Viper, flags *pflag.FlagSet) (settings, error) {
	v.SetDefault(keyVocabulary, "full")
	v.SetDefault(keyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{keyVocabulary, keyLogLevel, keyConfig} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	vocab, err := procenv.ParseVocabulary(v.GetString(keyVocabulary))
	if err != nil {
		return settings{}, err
	}

	level, err := log.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return settings{}, fmt.Errorf("invalid log level %q: %w", v.GetString(keyLogLevel), err)
	}

	return settings{Vocabulary: vocab, LogLevel: level}, nil
}
