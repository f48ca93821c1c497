package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	strongSecret := "secure-secret-at-least-32-chars-long"

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			"Missing port",
			Config{JWTSecret: strongSecret},
			true,
		},
		{
			"Missing JWT secret",
			Config{Port: "5000"},
			true,
		},
		{
			"Development with default secret",
			Config{Env: "development", Port: "5000", JWTSecret: "your-secret-key-change-in-production"},
			false,
		},
		{
			"Production with default secret",
			Config{Env: "production", Port: "5000", JWTSecret: "your-secret-key-change-in-production", DBPassword: "s3cure"},
			true,
		},
		{
			"Production with short secret",
			Config{Env: "production", Port: "5000", JWTSecret: "short", DBPassword: "s3cure"},
			true,
		},
		{
			"Production with default DB password",
			Config{Env: "production", Port: "5000", JWTSecret: strongSecret, DBPassword: "password"},
			true,
		},
		{
			"Production with empty DB password",
			Config{Env: "production", Port: "5000", JWTSecret: strongSecret},
			true,
		},
		{
			"Valid production config",
			Config{Env: "production", Port: "5000", JWTSecret: strongSecret, DBPassword: "s3cure", DBSSLMode: "require"},
			false,
		},
		{
			"Prod alias is treated as production",
			Config{Env: "prod", Port: "5000", JWTSecret: "short", DBPassword: "s3cure"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "5000", c.Port)
	assert.Equal(t, "taste_map", c.DBName)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.NotEmpty(t, c.JWTSecret)
	assert.Equal(t, "development", c.Env)
}
