//go:build blst

package curve

import "fmt"

// Default returns the engine used when none is configured. Builds tagged with
// blst prefer the C library.
func Default() Engine {
	return NewBlst()
}

// Engines lists the engines compiled into this binary, by name.
func Engines() []string {
	return []string{"blst", "gnark"}
}

// ByName returns the engine registered under name.
func ByName(name string) (Engine, error) {
	switch name {
	case "", "blst":
		return NewBlst(), nil
	case "gnark":
		return NewGnark(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}
