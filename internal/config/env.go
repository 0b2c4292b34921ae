package config

import "github.com/kelseyhightower/envconfig"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "IMGTAB"

// Env holds environment overrides (IMGTAB_CONFIG_DIR, IMGTAB_DATA_DIR,
// IMGTAB_LOG_LEVEL).
type Env struct {
	ConfigDir string `envconfig:"CONFIG_DIR"`
	DataDir   string `envconfig:"DATA_DIR"`
	LogLevel  string `envconfig:"LOG_LEVEL"`
}

// LoadEnv reads the overrides. Plain string fields cannot fail to decode, so
// an error leaves the zero value.
func LoadEnv() Env {
	var env Env
	_ = envconfig.Process(EnvPrefix, &env)
	return env
}
