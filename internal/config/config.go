package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

type EncoderConfig struct {
	MaxDynamicTableSize uint32 `yaml:"max_dynamic_table_size"`
	MultiValueSeparator string `yaml:"multi_value_separator"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Encoder EncoderConfig `yaml:"encoder"`
	Logger  LoggerConfig  `yaml:"logger"`
}

func (c *Config) Validate() error {
	if c.Encoder.MaxDynamicTableSize == 0 {
		return errors.New("encoder max_dynamic_table_size is not set")
	}
	if c.Encoder.MultiValueSeparator == "" {
		return errors.New("encoder multi_value_separator is not set")
	}
	if len(c.Encoder.MultiValueSeparator) != 1 {
		return errors.New("encoder multi_value_separator must be a single ASCII byte")
	}
	if c.Logger.Level == "" {
		return errors.New("logger level is not set")
	}
	if c.Logger.File == "" {
		return errors.New("logger file is not set")
	}
	return nil
}

func LoadConfig(configFileName string) (*Config, error) {
	data, err := os.ReadFile(configFileName)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
