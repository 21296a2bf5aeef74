// Package config resolves runtime settings from the environment. The
// CATALOG_ prefix scopes every variable, so CATALOG_ADDR sets Addr.
package config

import "github.com/spf13/viper"

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// DatabaseURL is the Postgres connection string. When empty the
	// server falls back to the in-memory repositories.
	DatabaseURL string
	// JWTSecret signs and verifies the bearer tokens guarding writes.
	JWTSecret string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("catalog")
	v.AutomaticEnv()
	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "dev-secret")

	return Config{
		Addr:        v.GetString("addr"),
		DatabaseURL: v.GetString("database_url"),
		JWTSecret:   v.GetString("jwt_secret"),
	}
}
