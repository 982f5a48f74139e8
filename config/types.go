package config

// Config represents the complete configuration structure
type Config struct {
	Paperless PaperlessConfig `mapstructure:"paperless"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Safety    SafetyConfig    `mapstructure:"safety"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// PaperlessConfig holds the service origin and credentials
type PaperlessConfig struct {
	URL            string `mapstructure:"url"`
	ClientID       string `mapstructure:"client_id"`
	ClientSecret   string `mapstructure:"client_secret"`
	AccessToken    string `mapstructure:"access_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UploadConfig contains upload behavior settings
type UploadConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
