package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		botToken      string
		dbPassword    string
		expectedError bool
	}{
		{
			name:          "all required fields set",
			botToken:      "token123",
			dbPassword:    "secret",
			expectedError: false,
		},
		{
			name:          "missing bot token",
			botToken:      "",
			dbPassword:    "secret",
			expectedError: true,
		},
		{
			name:          "missing db password",
			botToken:      "token123",
			dbPassword:    "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("BOT_TOKEN")
			os.Unsetenv("DB_PASSWORD")
			defer os.Unsetenv("BOT_TOKEN")
			defer os.Unsetenv("DB_PASSWORD")

			if tt.botToken != "" {
				os.Setenv("BOT_TOKEN", tt.botToken)
			}
			if tt.dbPassword != "" {
				os.Setenv("DB_PASSWORD", tt.dbPassword)
			}

			cfg, err := Load()

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.botToken, cfg.BotToken)
				assert.Equal(t, tt.dbPassword, cfg.Database.Password)
				// Defaults apply when DB_* vars are not set
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "5432", cfg.Database.Port)
			}
		})
	}
}
