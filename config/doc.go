// Package config loads utilkit configuration.
//
// It uses Viper to read a YAML config file, loads an optional .env file
// with godotenv, and binds environment variables so that
// UTIL_ASYNC_DEFAULT_TIMEOUT overrides util.async.default_timeout.
//
// # Usage
//
//	cfg, err := config.Load("utilkit", config.WithConfigFile("./config.yml"))
package config
