package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file,omitempty"`
	HistoryLimit int    `yaml:"history_limit"`
}

const DefaultPrompt = "$ "

func Default() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		HistoryLimit: 1000,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gosh"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

func Load() (*Config, error) {
	cfg := Default()

	// 1. Load from file
	path, err := ConfigPath()
	if err == nil {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// 2. Override from Env
	if prompt := os.Getenv("GOSH_PROMPT"); prompt != "" {
		cfg.Prompt = prompt
	}

	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.HistoryFile == "" {
		if path, err := HistoryPath(); err == nil {
			cfg.HistoryFile = path
		}
	}

	return cfg, nil
}
