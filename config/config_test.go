package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Paperless: PaperlessConfig{
			URL:            "https://paperless.com.ua",
			ClientID:       "client-123",
			TimeoutSeconds: 30,
		},
		Upload: UploadConfig{
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Paperless.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing client id",
			mutate:  func(c *Config) { c.Paperless.ClientID = "" },
			wantErr: true,
		},
		{
			name:    "placeholder client id",
			mutate:  func(c *Config) { c.Paperless.ClientID = "your-client-id-here" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Paperless.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "concurrency too low",
			mutate:  func(c *Config) { c.Upload.Concurrency = 0 },
			wantErr: true,
		},
		{
			name:    "concurrency too high",
			mutate:  func(c *Config) { c.Upload.Concurrency = 50 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
