package proxmox

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names for session configuration. The token name and
// value each have two accepted spellings: the MCP-convention names are
// checked first, the Weaver-convention names second.
const (
	EnvHost      = "PROXMOX_HOST"
	EnvUser      = "PROXMOX_USER"
	EnvVerifySSL = "PROXMOX_VERIFY_SSL"

	EnvTokenName   = "PROXMOX_TOKEN_NAME"
	EnvTokenID     = "PROXMOX_TOKEN_ID"
	EnvTokenValue  = "PROXMOX_TOKEN_VALUE"
	EnvTokenSecret = "PROXMOX_TOKEN_SECRET"
)

// DefaultUser is used when PROXMOX_USER is not set.
const DefaultUser = "root@pam"

// DefaultPort is the Proxmox VE API port appended when the host carries none.
const DefaultPort = "8006"

// Config holds the session configuration for a Proxmox VE connection.
type Config struct {
	// Host is the normalized Proxmox host (scheme optional, no port).
	Host string

	// User is the API token owner, e.g. "root@pam".
	User string

	// TokenName is the API token name (the part after the "!" in the
	// token ID).
	TokenName string

	// TokenValue is the API token secret.
	TokenValue string

	// VerifySSL controls TLS certificate verification. Proxmox nodes
	// commonly run with self-signed certificates, so this defaults to
	// false.
	VerifySSL bool
}

// ConfigFromEnv builds a Config from the process environment.
// It returns an error when any required variable is missing.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Host:       NormalizeHost(os.Getenv(EnvHost)),
		User:       os.Getenv(EnvUser),
		TokenName:  firstEnv(EnvTokenName, EnvTokenID),
		TokenValue: firstEnv(EnvTokenValue, EnvTokenSecret),
		VerifySSL:  strings.EqualFold(os.Getenv(EnvVerifySSL), "true"),
	}
	if cfg.User == "" {
		cfg.User = DefaultUser
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required fields are present.
func (c *Config) Validate() error {
	if c.Host == "" || c.TokenName == "" || c.TokenValue == "" {
		return fmt.Errorf(
			"missing required environment variables: %s, %s (or %s), %s (or %s)",
			EnvHost, EnvTokenName, EnvTokenID, EnvTokenValue, EnvTokenSecret,
		)
	}
	return nil
}

// TokenID returns the full Proxmox API token identifier, "user!tokenname".
func (c *Config) TokenID() string {
	return c.User + "!" + c.TokenName
}

// BaseURL returns the API root, e.g. "https://pve.example.com:8006/api2/json".
func (c *Config) BaseURL() string {
	host := c.Host
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	return "https://" + host + ":" + DefaultPort + "/api2/json"
}

// NormalizeHost strips an accidental port from the configured host so the
// client can append the default API port. If the host (ignoring any scheme
// prefix) contains a colon, the string is truncated at its last colon.
//
//	"192.168.1.10:8006:8006" -> "192.168.1.10:8006"
//	"https://host:8006"      -> "https://host"
//	"192.168.1.10"           -> "192.168.1.10"
func NormalizeHost(host string) string {
	if host == "" {
		return ""
	}
	withoutScheme := host
	if i := strings.LastIndex(host, "//"); i >= 0 {
		withoutScheme = host[i+2:]
	}
	if strings.Contains(withoutScheme, ":") {
		return host[:strings.LastIndex(host, ":")]
	}
	return host
}

// firstEnv returns the value of the first environment variable in keys
// that is set to a non-empty value.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
