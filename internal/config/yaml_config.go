package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// The send-option catalog is an ordered list, which is easier to manage in YAML than env vars.
type YAMLConfig struct {
	SendOptions      []SendOptionConfig `yaml:"send_options"`
	PrivacyStatement string             `yaml:"privacy_statement,omitempty"`
}

// SendOptionConfig defines one entry of the send-option catalog.
type SendOptionConfig struct {
	Key    string `yaml:"key"`              // Lowercased before use, must be unique
	Label  string `yaml:"label"`            // Shown in the picker
	Sample string `yaml:"sample,omitempty"` // Preview line under the label
	Icon   string `yaml:"icon,omitempty"`   // Icon name, see catalog.IconSVG
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from an explicit path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetSendOptions returns the configured send options, or nil when none are configured.
func (c *YAMLConfig) GetSendOptions() []SendOptionConfig {
	if c == nil {
		return nil
	}
	return c.SendOptions
}

// ApplyTo copies YAML overrides onto the environment config.
func (c *YAMLConfig) ApplyTo(cfg *Config) {
	if c == nil || cfg == nil {
		return
	}
	if c.PrivacyStatement != "" {
		cfg.PrivacyStatement = c.PrivacyStatement
	}
}
