package geo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_KnownCities(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 6 {
		t.Fatalf("expected 6 cities, got %d", len(l))
	}

	c, ok := l.Locate("NYC")
	if !ok || c.Lon != -74.0060 || c.Lat != 40.7128 {
		t.Fatalf("unexpected NYC: %+v %v", c, ok)
	}
	if _, ok := l.Locate("San Francisco"); ok {
		t.Fatalf("San Francisco must not be locatable")
	}
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geo.yaml")
	content := "cities:\n  Madrid: {lon: -3.7038, lat: 40.4168}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := l.Locate("Madrid"); !ok || len(l) != 1 {
		t.Fatalf("expected only Madrid, got %+v", l)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("cities:\n  Nowhere: {lon: 200, lat: 0}\n")); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	if _, err := Parse([]byte("cities: [")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}
