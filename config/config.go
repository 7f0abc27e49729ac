package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"payments-charts/layout"
	"payments-charts/log"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".payments-charts"

	// ConfigDirEnvVar overrides the configuration directory.
	ConfigDirEnvVar = "PAYMENTS_CHARTS_HOME"
)

// Default widget texts
const (
	DefaultSourceText = "The payments association industry research"
	DefaultCredit     = "Chart: Payments Intelligence"
	DefaultLogoURL    = "https://res.cloudinary.com/dmlmugaye/image/upload/v1754492437/PA_Logo_Black_xlb4mj.svg"
	DefaultLogoAlt    = "The Payments Association"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Config represents the widget defaults. Command-line flags override it.
type Config struct {
	// TargetHeight is the chart height used at tablet and desktop widths.
	TargetHeight float64 `json:"target_height"`
	// ShowLogo draws the brand logo in the header.
	ShowLogo bool `json:"show_logo"`
	// ShowLabels draws external segment labels.
	ShowLabels bool `json:"show_labels"`
	// ShowLegend draws the legend.
	ShowLegend bool `json:"show_legend"`
	// ShowInnerRadius renders a donut instead of a full pie.
	ShowInnerRadius bool `json:"show_inner_radius"`
	// GroupedValues writes full numbers with thousands separators in labels
	// at tablet and desktop widths instead of K/M abbreviations.
	GroupedValues bool `json:"grouped_values"`
	// SourceText is the attribution shown in the footer.
	SourceText string `json:"source_text"`
	// SourceURL turns the attribution into a link when set.
	SourceURL string `json:"source_url,omitempty"`
	// LogoURL is the header logo image.
	LogoURL string `json:"logo_url"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TargetHeight:    layout.DefaultTargetHeight,
		ShowLogo:        true,
		ShowLabels:      true,
		ShowLegend:      true,
		ShowInnerRadius: false,
		SourceText:      DefaultSourceText,
		LogoURL:         DefaultLogoURL,
	}
}

// LoadConfig reads the configuration file. A missing file is created with
// defaults; an unreadable one is backed up and defaults are returned.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.normalize()
	return config
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	if !(c.TargetHeight > 0) {
		log.WarningLog.Printf("invalid target_height %v, using %d", c.TargetHeight, layout.DefaultTargetHeight)
		c.TargetHeight = layout.DefaultTargetHeight
	}
	if c.SourceText == "" {
		c.SourceText = DefaultSourceText
	}
}

func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
