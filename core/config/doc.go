// Package config assembles the application configuration.
//
// Each core package owns its Config struct; this package composes them and
// loads values from a .env file plus environment variables via viper.
// Defaults come from `default` struct tags, bound reflectively so every key
// is registered for AutomaticEnv (e.g. DATABASE_HOST -> database.host).
package config
