package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// cookieJarFile sits next to the config file and holds the session
// cookies the server issues on login.
const cookieJarFile = "cookies.json"

// Config represents the configuration for the catman CLI.
// It holds the server location and the username of the signed-in user,
// the CLI's stand-in for the browser's local storage.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// Server is the URL of the catalog server
	Server string `yaml:"server"`
	// Username is the stored username of the signed-in user; empty means
	// signed out
	Username string `yaml:"username,omitempty"`

	// path the config was loaded from, for persisting session changes
	path string `yaml:"-"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/catman on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "catman", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file
// If no file is specified, it uses the default config location
func LoadConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	if c.Server == "" {
		return errors.New("server is required")
	}

	// Morph the server URL before storing
	c.Server = MorphServer(c.Server)
	c.path = file

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// WriteConfig writes the current configuration to the specified file
// If no file is specified, it uses the default config location
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	err := os.MkdirAll(filepath.Dir(file), os.ModePerm)
	if err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	err = os.WriteFile(file, yamlStr, os.FileMode(0644))
	if err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	cfg.path = file
	return nil
}

// ValidateConfig validates the configuration
// Checks for required fields and proper formatting
func (cfg *Config) ValidateConfig() error {
	if cfg.Server == "" {
		return errors.New("server is required")
	}
	if !strings.HasPrefix(cfg.Server, "http://") && !strings.HasPrefix(cfg.Server, "https://") {
		return errors.New("server must start with http:// or https://")
	}
	return nil
}

// Print prints the current configuration in a human-readable format
func (cfg *Config) Print() {
	fmt.Printf("Server: %s\n", cfg.Server)
	if cfg.Username != "" {
		fmt.Printf("Signed in as: %s\n", cfg.Username)
	} else {
		fmt.Println("Not signed in")
	}
}

// MorphServer ensures the server URL is properly formatted
// Adds http:// prefix if missing and removes trailing slashes
func MorphServer(server string) string {
	if server == "" {
		return server
	}

	// Remove any trailing slashes
	server = strings.TrimRight(server, "/")

	// Add http:// if no protocol is specified
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "http://" + server
	}

	return server
}

// GetServerURL returns the properly formatted server URL
func (cfg *Config) GetServerURL() string {
	return MorphServer(cfg.Server)
}

// GetUsername returns the stored username, or "" when signed out
func (cfg *Config) GetUsername() string {
	return cfg.Username
}

// SetUsername stores the username of the signed-in user and persists it
func (cfg *Config) SetUsername(username string) error {
	cfg.Username = username
	return cfg.WriteConfig(cfg.path)
}

// ClearSession drops the stored username and persists the change
func (cfg *Config) ClearSession() error {
	if cfg.Username == "" {
		return nil
	}
	cfg.Username = ""
	return cfg.WriteConfig(cfg.path)
}

// CookieJarPath returns the path of the persistent cookie jar file,
// which lives next to the config file.
func (cfg *Config) CookieJarPath() string {
	if cfg.path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(cfg.path), cookieJarFile)
}
