package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File receives log output while the keypad UI owns the terminal.
	File string `yaml:"file"`
}

type DisplayConfig struct {
	ShowKeypad bool `yaml:"show_keypad"`
}

type Config struct {
	AngleMode string        `yaml:"angle_mode"` // deg, rad or gra
	Mode      string        `yaml:"mode"`       // comp, matrix, vector, eqn or table
	Logging   LoggingConfig `yaml:"logging"`
	Display   DisplayConfig `yaml:"display"`

	path string
}

var (
	angleModes = []string{"deg", "rad", "gra"}
	modes      = []string{"comp", "matrix", "vector", "eqn", "table"}
)

// DefaultConfig returns the settings written on first run.
func DefaultConfig(dir string) *Config {
	return &Config{
		AngleMode: "deg",
		Mode:      "comp",
		Logging: LoggingConfig{
			Level: "warn",
			File:  filepath.Join(dir, "roricalc.log"),
		},
		Display: DisplayConfig{ShowKeypad: true},
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// Validate rejects unknown angle modes, modes and log levels.
func (c *Config) Validate() error {
	if !oneOf(c.AngleMode, angleModes) {
		return fmt.Errorf("angle_mode %q: want one of %s", c.AngleMode, strings.Join(angleModes, ", "))
	}
	if !oneOf(c.Mode, modes) {
		return fmt.Errorf("mode %q: want one of %s", c.Mode, strings.Join(modes, ", "))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Path is the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	return false
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if mode := os.Getenv("RORICALC_ANGLE_MODE"); mode != "" {
		c.AngleMode = strings.ToLower(mode)
	}
	if level := os.Getenv("RORICALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORICALC_HOME if set, otherwise use user's home directory
	if roriHome := os.Getenv("RORICALC_HOME"); roriHome != "" {
		configDir = roriHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".roricalc", "config.yaml"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Fields missing from the file keep their defaults.
	config := DefaultConfig(filepath.Dir(configPath))
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.path = configPath

	return config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := DefaultConfig(filepath.Dir(configPath))
	config.path = configPath

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}
	if err := ensureConfigDir(configPath); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return saveConfig(c, configPath)
}
