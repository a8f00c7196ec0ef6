// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the StayHub server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     test defaults in prod.
//   - TokenValidityDuration: session token lifetime.
//   - GinMode: gin framework mode (debug, release, test).
//   - SeedRooms: populate the room catalog on startup when it is empty.
//   - AdminEmail / AdminPassword / AdminFullName: bootstrap admin account,
//     created on startup when AdminEmail is non-empty and not yet registered.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	GinMode               string
	SeedRooms             bool
	AdminEmail            string
	AdminPassword         string
	AdminFullName         string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 30 * time.Minute
	c.GinMode = "release"
	c.SeedRooms = true
	c.AdminEmail = ""
	c.AdminPassword = ""
	c.AdminFullName = "Administrator"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
