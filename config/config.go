// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors
var (
	ErrConfigurationError = errors.New("configuration error")
	ErrUnknownTag         = errors.New("tag not found in configuration")
)

// MACRegex matches the tag MAC addresses OpenEPaperLink access points use:
// six or eight hex octets, with or without separators.
var MACRegex = regexp.MustCompile(`^[0-9A-Fa-f]{2}(?:[:-]?[0-9A-Fa-f]{2}){5,7}$`)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError. The result unwraps to
// ErrConfigurationError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: ErrConfigurationError}
}

// TagConfig describes one ePaper tag known to the access point.
type TagConfig struct {
	// MAC identifies the tag on the access point.
	MAC string `yaml:"mac" json:"mac"`

	// Width is the display width in pixels.
	Width int `yaml:"width" json:"width"`

	// Height is the display height in pixels.
	Height int `yaml:"height" json:"height"`
}

// Validate validates a tag entry.
func (c *TagConfig) Validate() error {
	if c.MAC == "" {
		return NewConfigError("mac", "required field is missing")
	}
	if !MACRegex.MatchString(c.MAC) {
		return NewConfigError("mac", fmt.Sprintf("'%s' is not a valid MAC address", c.MAC))
	}
	if c.Width <= 0 {
		return NewConfigError("width", "must be a positive pixel count")
	}
	if c.Height <= 0 {
		return NewConfigError("height", "must be a positive pixel count")
	}
	return nil
}

// Log levels accepted by LoggingConfig.
const (
	LevelQuiet = "quiet"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (quiet, info, debug).
	Level string `yaml:"level" json:"level,omitempty"`

	// Output is the log output (stdout, stderr, or a file path).
	Output string `yaml:"output" json:"output,omitempty"`
}

// SetDefaults sets default values for logging configuration.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates the logging configuration.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case LevelQuiet, LevelInfo, LevelDebug:
		return nil
	}
	return NewConfigError("level", fmt.Sprintf("'%s' is not a valid log level", c.Level))
}

// FeedsConfig contains RSS fetching configuration.
type FeedsConfig struct {
	// Timeout is the feed fetch timeout in seconds.
	Timeout int `yaml:"timeout" json:"timeout,omitempty"`

	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string `yaml:"user-agent" json:"user_agent,omitempty"`
}

// SetDefaults sets default values for feed fetching.
func (c *FeedsConfig) SetDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 10
	}
}

// AppConfig contains the complete application configuration.
type AppConfig struct {
	// EPaperLinkHost is the host (and optional port) of the OpenEPaperLink
	// access point. May be empty when images are only written to disk.
	EPaperLinkHost string `yaml:"epaper-link-host" json:"epaper_link_host,omitempty"`

	// Resources is the directory holding fonts and module assets.
	Resources string `yaml:"resources" json:"resources,omitempty"`

	// Tags lists the known tags.
	Tags []*TagConfig `yaml:"tags" json:"tags,omitempty"`

	// Logging contains logging configuration.
	Logging *LoggingConfig `yaml:"logging" json:"logging,omitempty"`

	// Feeds contains RSS fetching configuration.
	Feeds *FeedsConfig `yaml:"feeds" json:"feeds,omitempty"`
}

// SetDefaults sets default values for the whole configuration.
func (c *AppConfig) SetDefaults() {
	if c.Resources == "" {
		c.Resources = "resources"
	}
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	c.Logging.SetDefaults()
	if c.Feeds == nil {
		c.Feeds = &FeedsConfig{}
	}
	c.Feeds.SetDefaults()
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	for i, tag := range c.Tags {
		if err := tag.Validate(); err != nil {
			return fmt.Errorf("tags[%d]: %w", i, err)
		}
	}
	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FindTag returns the tag entry for a MAC address. The comparison ignores
// case and the :- separators.
func (c *AppConfig) FindTag(mac string) (*TagConfig, error) {
	want := normalizeMAC(mac)
	for _, tag := range c.Tags {
		if normalizeMAC(tag.MAC) == want {
			return tag, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTag, mac)
}

func normalizeMAC(mac string) string {
	mac = strings.ToLower(mac)
	mac = strings.ReplaceAll(mac, ":", "")
	return strings.ReplaceAll(mac, "-", "")
}

// LoadAppConfig loads the application configuration from a YAML file,
// applies defaults, and validates it.
func LoadAppConfig(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig parses configuration from YAML data, applies defaults, and
// validates it.
func ParseAppConfig(data []byte) (*AppConfig, error) {
	var config AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
