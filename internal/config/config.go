package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultServerURL = "http://localhost:8000"
	DefaultChatPath  = "/chat"
	DefaultProfile   = "default"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	ServerURL      string `json:"server_url"`
	ChatPath       string `json:"chat_path,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	LogFile        string             `json:"log_file,omitempty"`
	Transcript     string             `json:"transcript,omitempty"`
	currentProfile *Profile
	overrides      envOverrides
}

// envOverrides are read after the config file and win over it. They are
// never written back.
type envOverrides struct {
	Profile    string `env:"RORICHAT_PROFILE"`
	ServerURL  string `env:"RORICHAT_SERVER_URL"`
	LogFile    string `env:"RORICHAT_LOG_FILE"`
	Transcript string `env:"RORICHAT_TRANSCRIPT"`
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(&c.overrides); err != nil {
		return err
	}

	if c.overrides.Profile != "" {
		if _, exists := c.Profiles[c.overrides.Profile]; exists {
			c.ActiveProfile = c.overrides.Profile
		}
	}
	return nil
}

// OverrideServerURL points the active profile at another backend for this
// run only. It is never saved.
func (c *Config) OverrideServerURL(url string) {
	if url != "" {
		c.overrides.ServerURL = url
	}
}

// OverrideTranscript sets the transcript path for this run only.
func (c *Config) OverrideTranscript(path string) {
	if path != "" {
		c.overrides.Transcript = path
	}
}

func (c *Config) GetServerURL() string {
	if c.overrides.ServerURL != "" {
		return c.overrides.ServerURL
	}
	if c.currentProfile == nil || c.currentProfile.ServerURL == "" {
		return DefaultServerURL
	}
	return c.currentProfile.ServerURL
}

func (c *Config) GetChatPath() string {
	if c.currentProfile == nil || c.currentProfile.ChatPath == "" {
		return DefaultChatPath
	}
	return c.currentProfile.ChatPath
}

// GetTimeout returns zero unless the profile opted into a request timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.currentProfile.TimeoutSeconds) * time.Second
}

func (c *Config) GetTranscript() string {
	if c.overrides.Transcript != "" {
		return c.overrides.Transcript
	}
	return c.Transcript
}

func (c *Config) GetLogFile() string {
	if c.overrides.LogFile != "" {
		return c.overrides.LogFile
	}
	if c.LogFile != "" {
		return c.LogFile
	}
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rorichat.log")
}

// ProfileNames returns the profile names sorted for stable listings.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SwitchProfile makes name the active profile.
func (c *Config) SwitchProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

// RemoveProfile deletes name, moving the active profile elsewhere if needed.
// Removing the last profile leaves a fresh default one behind.
func (c *Config) RemoveProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	delete(c.Profiles, name)

	if len(c.Profiles) == 0 {
		c.Profiles[DefaultProfile] = defaultProfile()
	}
	if c.ActiveProfile == name {
		c.ActiveProfile = c.ProfileNames()[0]
	}
	return c.setCurrentProfile()
}

func GetConfigDir() (string, error) {
	var baseDir string

	// Use RORICHAT_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORICHAT_HOME"); home != "" {
		baseDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = homeDir
	}

	return filepath.Join(baseDir, ".rorichat"), nil
}

func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultProfile() Profile {
	return Profile{
		ServerURL: DefaultServerURL,
		ChatPath:  DefaultChatPath,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfile: defaultProfile(),
		},
		ActiveProfile: DefaultProfile,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		c.ActiveProfile = c.ProfileNames()[0]
		profile = c.Profiles[c.ActiveProfile]
	}

	c.currentProfile = &profile
	return nil
}
