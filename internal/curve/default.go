//go:build !blst

package curve

import "fmt"

// Default returns the engine used when none is configured.
func Default() Engine {
	return NewGnark()
}

// Engines lists the engines compiled into this binary, by name.
func Engines() []string {
	return []string{"gnark"}
}

// ByName returns the engine registered under name.
func ByName(name string) (Engine, error) {
	switch name {
	case "", "gnark":
		return NewGnark(), nil
	case "blst":
		return nil, fmt.Errorf("engine %q requires building with -tags blst", name)
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}
