package chart

// Coordinate is a (longitude, latitude) pair in degrees.
type Coordinate struct {
	Lon float64 `yaml:"lon" json:"lon"`
	Lat float64 `yaml:"lat" json:"lat"`
}

type GeoLookup interface {
	Locate(key string) (Coordinate, bool)
}

// StaticLookup is a fixed key -> coordinate table.
type StaticLookup map[string]Coordinate

func (l StaticLookup) Locate(key string) (Coordinate, bool) {
	c, ok := l[key]
	return c, ok
}
