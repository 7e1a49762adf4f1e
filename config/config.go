// Package config holds the engine's tunable knobs.
package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	// MaxCandidates bounds how many sequences survive the ordering step.
	MaxCandidates int `mapstructure:"max-candidates"`
	// DeepSearchLimit is the candidate count above which the deep search
	// is skipped in favor of the shallow evaluation.
	DeepSearchLimit int `mapstructure:"deep-search-limit"`
	// SearchDepth is the deep-search ply count; 0 disables deep search.
	SearchDepth int `mapstructure:"search-depth"`
	// WinningScoreCutoff lets the selector return the first candidate
	// scoring above it without examining the rest.
	WinningScoreCutoff float64 `mapstructure:"winning-score-cutoff"`
	// EvalCacheCapacity is the evaluation cache size in entries; 0 sizes
	// it from system memory.
	EvalCacheCapacity int `mapstructure:"eval-cache-capacity"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxCandidates:      24,
		DeepSearchLimit:    12,
		SearchDepth:        2,
		WinningScoreCutoff: 500_000,
		EvalCacheCapacity:  0,
	}
}

// Load reads gammon.yaml from the working directory if present, with
// GAMMON_-prefixed environment variables overriding file values and the
// defaults above backing everything.
func Load() (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("max-candidates", def.MaxCandidates)
	v.SetDefault("deep-search-limit", def.DeepSearchLimit)
	v.SetDefault("search-depth", def.SearchDepth)
	v.SetDefault("winning-score-cutoff", def.WinningScoreCutoff)
	v.SetDefault("eval-cache-capacity", def.EvalCacheCapacity)

	v.SetConfigName("gammon")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("gammon")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded-config-file")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
