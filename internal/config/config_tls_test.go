package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateTLSMode tests the main TLS mode validation function
func TestValidateTLSMode(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name: "disabled mode",
			tls: TLSConfig{
				Mode: "disabled",
			},
			expectError: false,
		},
		{
			name: "server mode valid",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: false,
		},
		{
			name: "server mode missing cert",
			tls: TLSConfig{
				Mode:    "server",
				KeyFile: "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "certificate and key files are required",
		},
		{
			name: "server mode missing key",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
			},
			expectError: true,
			errorMsg:    "certificate and key files are required",
		},
		{
			name: "invalid mode",
			tls: TLSConfig{
				Mode: "invalid",
			},
			expectError: true,
			errorMsg:    "invalid TLS mode: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSMode(tt.tls)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateTLSVersion tests TLS version validation
func TestValidateTLSVersion(t *testing.T) {
	tests := []struct {
		name        string
		minVersion  string
		expectError bool
	}{
		{name: "empty defaults to 1.2", minVersion: "", expectError: false},
		{name: "version 1.2", minVersion: "1.2", expectError: false},
		{name: "version 1.3", minVersion: "1.3", expectError: false},
		{name: "version 1.0 rejected", minVersion: "1.0", expectError: true},
		{name: "garbage rejected", minVersion: "latest", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSVersion(TLSConfig{MinVersion: tt.minVersion})

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid TLS minVersion")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateTLSConfig tests end-to-end TLS validation on a full config
func TestValidateTLSConfig(t *testing.T) {
	t.Run("disabled mode passes without files", func(t *testing.T) {
		config := &Config{
			Server: ServerConfig{
				TLS: TLSConfig{Mode: "disabled"},
			},
		}
		assert.NoError(t, config.ValidateTLSConfig())
	})

	t.Run("server mode with bad version fails", func(t *testing.T) {
		config := &Config{
			Server: ServerConfig{
				TLS: TLSConfig{
					Mode:       "server",
					CertFile:   "/path/to/cert.pem",
					KeyFile:    "/path/to/key.pem",
					MinVersion: "ssl3",
				},
			},
		}
		assert.Error(t, config.ValidateTLSConfig())
	})
}
