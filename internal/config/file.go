package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Durations are Go duration strings.
type fileConfig struct {
	APIKey        string `yaml:"api_key"`
	BaseURL       string `yaml:"base_url"`
	NotionVersion string `yaml:"notion_version"`
	Timeout       string `yaml:"timeout"`
	CodeLanguage  string `yaml:"code_language"`
	Target        string `yaml:"target"`
	Refresh       string `yaml:"refresh"`
	NoColor       *bool  `yaml:"no_color"`
	Trace         *bool  `yaml:"trace"`
	LogFile       string `yaml:"log_file"`
}

func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
