package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("field", "message")
	if err.Field != "field" {
		t.Errorf("Expected field 'field', got '%s'", err.Field)
	}
	if err.Message != "message" {
		t.Errorf("Expected message 'message', got '%s'", err.Message)
	}

	expected := "config error in 'field': message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}

	if !errors.Is(err, ErrConfigurationError) {
		t.Error("ConfigError should unwrap to ErrConfigurationError")
	}
}

func TestConfigErrorWithoutField(t *testing.T) {
	err := NewConfigError("", "general error")
	expected := "config error: general error"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestMACRegex(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"00:11:22:33:44:55", true},
		{"00-11-22-33-44-55", true},
		{"001122334455", true},
		{"00000222E1F5BDAA", true},
		{"00:11:22:33:44", false},
		{"0011223344556677889", false},
		{"xx:11:22:33:44:55", false},
		{"", false},
	}

	for _, tt := range tests {
		result := MACRegex.MatchString(tt.input)
		if result != tt.expected {
			t.Errorf("MACRegex.MatchString(%s) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestTagConfigValidate(t *testing.T) {
	// Missing MAC
	tag := &TagConfig{Width: 296, Height: 128}
	if tag.Validate() == nil {
		t.Error("Validate should error when MAC is missing")
	}

	// Bad MAC
	tag = &TagConfig{MAC: "not-a-mac", Width: 296, Height: 128}
	if tag.Validate() == nil {
		t.Error("Validate should error for a malformed MAC")
	}

	// Missing dimensions
	tag = &TagConfig{MAC: "00000222E1F5BDAA", Height: 128}
	if tag.Validate() == nil {
		t.Error("Validate should error when width is missing")
	}
	tag = &TagConfig{MAC: "00000222E1F5BDAA", Width: 296}
	if tag.Validate() == nil {
		t.Error("Validate should error when height is missing")
	}

	// Valid tag
	tag = &TagConfig{MAC: "00000222E1F5BDAA", Width: 296, Height: 128}
	if err := tag.Validate(); err != nil {
		t.Errorf("Validate should not error for valid tag: %v", err)
	}
}

func TestLoggingConfigSetDefaults(t *testing.T) {
	config := &LoggingConfig{}
	config.SetDefaults()

	if config.Level != LevelInfo {
		t.Errorf("Expected level 'info', got '%s'", config.Level)
	}
	if config.Output != "stderr" {
		t.Errorf("Expected output 'stderr', got '%s'", config.Output)
	}

	// Values should not be overwritten
	config2 := &LoggingConfig{Level: LevelDebug, Output: "stdout"}
	config2.SetDefaults()
	if config2.Level != LevelDebug {
		t.Error("SetDefaults should not overwrite existing values")
	}
}

func TestLoggingConfigValidate(t *testing.T) {
	for _, level := range []string{LevelQuiet, LevelInfo, LevelDebug} {
		config := &LoggingConfig{Level: level}
		if err := config.Validate(); err != nil {
			t.Errorf("Validate should accept level '%s': %v", level, err)
		}
	}

	config := &LoggingConfig{Level: "verbose"}
	if config.Validate() == nil {
		t.Error("Validate should reject unknown log levels")
	}
}

func TestFeedsConfigSetDefaults(t *testing.T) {
	config := &FeedsConfig{}
	config.SetDefaults()
	if config.Timeout != 10 {
		t.Errorf("Expected timeout 10, got %d", config.Timeout)
	}

	config2 := &FeedsConfig{Timeout: 30}
	config2.SetDefaults()
	if config2.Timeout != 30 {
		t.Error("SetDefaults should not overwrite existing values")
	}
}

func TestParseAppConfig(t *testing.T) {
	yamlData := []byte(`
epaper-link-host: 192.168.1.80
resources: /var/lib/open-epaper-gen
tags:
  - mac: 00000222E1F5BDAA
    width: 296
    height: 128
  - mac: 00000222E1F5BDAB
    width: 400
    height: 300
logging:
  level: debug
`)

	config, err := ParseAppConfig(yamlData)
	if err != nil {
		t.Fatalf("ParseAppConfig failed: %v", err)
	}

	if config.EPaperLinkHost != "192.168.1.80" {
		t.Errorf("Expected host '192.168.1.80', got '%s'", config.EPaperLinkHost)
	}
	if config.Resources != "/var/lib/open-epaper-gen" {
		t.Errorf("Expected resources '/var/lib/open-epaper-gen', got '%s'", config.Resources)
	}
	if len(config.Tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(config.Tags))
	}
	if config.Tags[0].Width != 296 || config.Tags[0].Height != 128 {
		t.Errorf("Expected 296x128, got %dx%d", config.Tags[0].Width, config.Tags[0].Height)
	}
	if config.Logging.Level != LevelDebug {
		t.Errorf("Expected level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestParseAppConfigDefaults(t *testing.T) {
	config, err := ParseAppConfig([]byte("epaper-link-host: ap.local"))
	if err != nil {
		t.Fatalf("ParseAppConfig failed: %v", err)
	}

	if config.Resources != "resources" {
		t.Errorf("Expected default resources 'resources', got '%s'", config.Resources)
	}
	if config.Logging == nil || config.Logging.Level != LevelInfo {
		t.Error("Expected default logging level 'info'")
	}
	if config.Feeds == nil || config.Feeds.Timeout != 10 {
		t.Error("Expected default feed timeout 10")
	}
}

func TestParseAppConfigInvalidTag(t *testing.T) {
	yamlData := []byte(`
tags:
  - mac: bogus
    width: 296
    height: 128
`)

	_, err := ParseAppConfig(yamlData)
	if !errors.Is(err, ErrConfigurationError) {
		t.Errorf("Expected ErrConfigurationError, got %v", err)
	}
}

func TestParseAppConfigInvalidYAML(t *testing.T) {
	if _, err := ParseAppConfig([]byte("tags: [")); err == nil {
		t.Error("ParseAppConfig should error for malformed YAML")
	}
}

func TestLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("epaper-link-host: ap.local\nresources: res\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if config.EPaperLinkHost != "ap.local" {
		t.Errorf("Expected host 'ap.local', got '%s'", config.EPaperLinkHost)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadAppConfig should error for a missing file")
	}
}

func TestFindTag(t *testing.T) {
	config := &AppConfig{
		Tags: []*TagConfig{
			{MAC: "00000222E1F5BDAA", Width: 296, Height: 128},
			{MAC: "00:11:22:33:44:55", Width: 400, Height: 300},
		},
	}

	tag, err := config.FindTag("00000222E1F5BDAA")
	if err != nil {
		t.Fatalf("FindTag failed: %v", err)
	}
	if tag.Width != 296 {
		t.Errorf("Expected width 296, got %d", tag.Width)
	}

	// Lookup ignores case and separators
	tag, err = config.FindTag("00-00-02-22-e1-f5-bd-aa")
	if err != nil {
		t.Fatalf("FindTag with separators failed: %v", err)
	}
	if tag.Width != 296 {
		t.Errorf("Expected width 296, got %d", tag.Width)
	}

	tag, err = config.FindTag("001122334455")
	if err != nil {
		t.Fatalf("FindTag failed: %v", err)
	}
	if tag.Width != 400 {
		t.Errorf("Expected width 400, got %d", tag.Width)
	}

	// Unknown tag
	_, err = config.FindTag("ffffffffffff")
	if !errors.Is(err, ErrUnknownTag) {
		t.Errorf("Expected ErrUnknownTag, got %v", err)
	}
}
