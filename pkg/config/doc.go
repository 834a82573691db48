// Package config loads environment-backed configuration structs.
//
// Configuration is declared as plain structs with `env` field tags and
// populated via github.com/caarlos0/env. A .env file in the working
// directory is loaded into the process environment once, which keeps
// local development convenient without affecting deployments where the
// environment is injected by the platform.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
// Loading is not cached: every call re-parses the environment, so tests
// can freely combine Load with t.Setenv.
package config
