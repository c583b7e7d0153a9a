package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultWaitTimeSeconds = 20
	DefaultLogLevel        = "info"
)

var ErrMissingQueue = errors.New("aws.url is required")

type Config struct {
	Aws                   *AWSsqsConfig `yaml:"aws"`
	LogFilePath           string        `yaml:"logFile"`
	LogLevel              string        `yaml:"logLevel"`
	ClientsInputPath      string        `yaml:"clientsInputPath"`
	ServerWaitTimeSeconds int64         `yaml:"serverWaitTimeSeconds"`
}

type AWSsqsConfig struct {
	QueueUrl     string `yaml:"url"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	ClientId     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	ClientToken  string `yaml:"clientToken"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML after substituting ${VAR} references from the
// environment.
func ParseConfig(data []byte) (*Config, error) {
	confContent := []byte(os.ExpandEnv(string(data)))

	config := &Config{}

	err := yaml.Unmarshal(confContent, config)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}

	if config.Aws == nil || config.Aws.QueueUrl == "" {
		return nil, ErrMissingQueue
	}
	if config.ServerWaitTimeSeconds <= 0 || config.ServerWaitTimeSeconds > 20 {
		config.ServerWaitTimeSeconds = DefaultWaitTimeSeconds
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	return config, nil
}
