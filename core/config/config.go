package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first call for a given
// type reads the environment; subsequent calls return the cached value,
// so every caller observes the same configuration.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	// Missing .env files are fine, the environment itself is authoritative.
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)

	mu.RLock()
	if v, ok := cache[key]; ok {
		mu.RUnlock()
		*cfg = v.(T)
		return nil
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have loaded the type while we upgraded the lock.
	if v, ok := cache[key]; ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	cache[key] = *cfg
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
