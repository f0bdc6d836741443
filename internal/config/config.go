// Package config loads runtime configuration for the revlens CLI and server.
//
// Configuration has three layers, lowest precedence first: compiled-in
// defaults, an optional YAML file, and environment variables (optionally
// loaded from a .env file). None of the layers is required; a missing file is
// not an error.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable the application reads at startup. The analysis
// tables themselves (lexicon, vocabulary, lemmas, stop words) are compiled-in
// constants and deliberately not configurable.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Analysis struct {
		Workers       int `yaml:"workers"`
		TopWords      int `yaml:"top_words"`
		CloudWords    int `yaml:"cloud_words"`
		HistogramBins int `yaml:"histogram_bins"`
		MaxSeqLen     int `yaml:"max_seq_len"`
		VocabSize     int `yaml:"vocab_size"`
	} `yaml:"analysis"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Analysis.Workers = 0 // 0 = one worker per CPU
	cfg.Analysis.TopWords = 10
	cfg.Analysis.CloudWords = 20
	cfg.Analysis.HistogramBins = 10
	cfg.Analysis.MaxSeqLen = 512
	cfg.Analysis.VocabSize = 30522
	return cfg
}

// Load builds the configuration from defaults, an optional YAML file at path
// (skipped when path is empty or missing), and environment overrides. A .env
// file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Debug("config file not found, using defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides configuration fields from REVLENS_* variables.
func applyEnv(cfg *Config) {
	if addr := os.Getenv("REVLENS_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	overrideInt("REVLENS_WORKERS", &cfg.Analysis.Workers)
	overrideInt("REVLENS_TOP_WORDS", &cfg.Analysis.TopWords)
	overrideInt("REVLENS_CLOUD_WORDS", &cfg.Analysis.CloudWords)
	overrideInt("REVLENS_HISTOGRAM_BINS", &cfg.Analysis.HistogramBins)
	overrideInt("REVLENS_MAX_SEQ_LEN", &cfg.Analysis.MaxSeqLen)
	overrideInt("REVLENS_VOCAB_SIZE", &cfg.Analysis.VocabSize)
}

func overrideInt(key string, dst *int) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring non-integer environment override", "key", key, "value", raw)
		return
	}
	*dst = v
}
