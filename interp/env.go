package interp

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Env looks up environment variables by name.
type Env interface {
	Lookup(name string) (string, bool)
}

// OSEnv reads the live process environment.
type OSEnv struct{}

// Lookup implements Env using os.LookupEnv.
func (OSEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv is a fixed set of variables.
type MapEnv map[string]string

// Lookup implements Env.
func (m MapEnv) Lookup(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// Snapshot copies the current process environment into a MapEnv.
// Later changes to the process environment are not visible through it.
func Snapshot() MapEnv {
	return MapEnv(env.ToMap(os.Environ()))
}
