// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for dotenv files. Values are resolved in this
// order, last wins: dotenv files in the order given, then the process
// environment. The process environment is never modified, so tests can load
// isolated configurations with WithEnvironment.
//
//	type Config struct {
//		HTTP    httpserver.Config
//		Metrics metrics.Config
//	}
//
//	cfg, err := config.Load[Config](config.WithEnvFiles(".env", ".env.local"))
//
// Parse failures wrap ErrParsingConfig together with the env library error.
package config
