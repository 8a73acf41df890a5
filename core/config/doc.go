// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/resmux/core/config"
//
//	type ServerConfig struct {
//		Addr        string        `env:"SERVER_ADDR" envDefault:":8080"`
//		ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
//	}
//
//	func main() {
//		var cfg ServerConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded only once per application lifetime;
// different types are cached independently.
package config
