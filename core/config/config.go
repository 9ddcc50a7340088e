package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig indicates a nil pointer was passed to Load or MustLoad.
var ErrNilConfig = errors.New("config: nil config pointer")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed config value
)

// Load parses environment variables into cfg, which must be a non-nil
// pointer to a struct. The first call for a given type parses the
// environment and caches the result; subsequent calls for the same type
// receive the cached value, so all callers observe identical configuration.
//
// A .env file in the working directory is loaded once before the first
// parse. A missing .env file is not an error; the process environment
// always takes precedence.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	// LoadOrStore keeps concurrent first loads consistent: whichever
	// goroutine stores first wins and everyone reads the same value.
	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)

	return nil
}

// MustLoad is like Load but panics on failure.
// Intended for application startup where a broken environment is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
