package geo

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"revenue-dashboard/internal/dashboard/core/chart"
)

//go:embed cities.yaml
var defaultCities []byte

var ErrInvalidCoordinate = errors.New("coordinate out of range")

type file struct {
	Cities map[string]chart.Coordinate `yaml:"cities"`
}

// Default returns the built-in city table.
func Default() (chart.StaticLookup, error) {
	return Parse(defaultCities)
}

// Load reads a lookup table from path, or the built-in one if path is empty.
func Load(path string) (chart.StaticLookup, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geo lookup: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (chart.StaticLookup, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse geo lookup: %w", err)
	}

	out := make(chart.StaticLookup, len(f.Cities))
	for key, c := range f.Cities {
		if c.Lon < -180 || c.Lon > 180 || c.Lat < -90 || c.Lat > 90 {
			return nil, fmt.Errorf("%w: %s (%v, %v)", ErrInvalidCoordinate, key, c.Lon, c.Lat)
		}
		out[key] = c
	}
	return out, nil
}
