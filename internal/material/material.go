package material

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidMaterial = errors.New("invalid material")

// Props holds the design properties of a facade material.
type Props struct {
	Name  string  `json:"name"`
	FyMPa float64 `json:"fy_mpa"` // yield strength, N/mm²
	EMPa  float64 `json:"e_mpa"`  // elastic modulus, N/mm²
}

var registry = map[string]Props{
	"Aluminium": {Name: "Aluminium", FyMPa: 160, EMPa: 70000},
	"Steel":     {Name: "Steel", FyMPa: 275, EMPa: 210000},
}

// Lookup returns the properties for a material name.
func Lookup(name string) (Props, error) {
	p, ok := registry[name]
	if !ok {
		return Props{}, fmt.Errorf("%w: %q", ErrInvalidMaterial, name)
	}
	if p.FyMPa <= 0 || p.EMPa <= 0 {
		return Props{}, fmt.Errorf("%w: %q has non-positive fy or E", ErrInvalidMaterial, name)
	}
	return p, nil
}

// Names returns the registered material names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
