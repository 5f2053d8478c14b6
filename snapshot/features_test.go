package snapshot_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/transit-tracker/snapshot"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

func testStations() map[string]transit.Station {
	return map[string]transit.Station{
		"S1": {StationName: "Clark/Lake", Lat: 41.885, Lon: -87.630},
		"S2": {StationName: "Ghost Stop", Lat: 0, Lon: 0},
		"S3": {StationName: "Howard", Lat: 42.019, Lon: -87.672},
	}
}

func TestBuildStationFeaturesAll(t *testing.T) {
	bounds := snapshot.NewBounds()
	fc := snapshot.BuildStationFeatures(testStations(), nil, snapshot.LineFilterAll, bounds)

	if len(fc.Features) != 3 {
		t.Fatalf("expected 3 features, got %d", len(fc.Features))
	}

	// Unknown position still gets a feature but never moves the box.
	if bounds.MinLat != 41.885 || bounds.MaxLat != 42.019 {
		t.Errorf("unexpected bounds: %+v", bounds)
	}

	first := fc.Features[0]
	if first.Properties["id"] != "S1" || first.Properties["name"] != "Clark/Lake" {
		t.Errorf("unexpected properties: %+v", first.Properties)
	}
	if _, ok := first.Properties["stationData"].(transit.Station); !ok {
		t.Error("feature should carry the full station record")
	}
	point, ok := first.Geometry.(orb.Point)
	if !ok {
		t.Fatalf("expected a point geometry, got %T", first.Geometry)
	}
	if point.Lon() != -87.630 || point.Lat() != 41.885 {
		t.Errorf("coordinates must be lon,lat ordered: %+v", point)
	}
}

func TestBuildStationFeaturesLineFilter(t *testing.T) {
	lines := map[string]transit.Line{
		"red": {LineCode: "red", Stations: []string{"S3"}},
	}

	tests := []struct {
		name     string
		filter   string
		expected int
	}{
		{name: "member station only", filter: "red", expected: 1},
		{name: "unknown line yields nothing", filter: "purple", expected: 0},
		{name: "all ignores membership", filter: snapshot.LineFilterAll, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := snapshot.BuildStationFeatures(testStations(), lines, tt.filter, nil)
			if len(fc.Features) != tt.expected {
				t.Errorf("expected %d features, got %d", tt.expected, len(fc.Features))
			}
		})
	}
}

func TestBuildVehicleFeatures(t *testing.T) {
	vehicles := map[string]transit.Vehicle{
		"100": {LineCode: "red", LineColor: "c60c30", Heading: 90, RunNumber: "812", Lat: 41.9, Lon: -87.6},
		"200": {LineCode: "blue", LineColor: "00a1de", Heading: 180, Lat: 41.8, Lon: -87.7},
	}

	bounds := snapshot.NewBounds()
	fc := snapshot.BuildVehicleFeatures(vehicles, "red", bounds)

	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Properties["routeColor"] != "c60c30" {
		t.Errorf("routeColor should mirror the line color, got %v", f.Properties["routeColor"])
	}
	if f.Properties["lineCode"] != "red" || f.Properties["heading"] != float64(90) {
		t.Errorf("unexpected properties: %+v", f.Properties)
	}
	if f.Properties["runNumber"] != "812" {
		t.Errorf("raw vehicle fields should be carried, got %+v", f.Properties)
	}

	// Only the matching vehicle extends the box.
	if bounds.MinLat != 41.9 || bounds.MaxLat != 41.9 {
		t.Errorf("unexpected bounds: %+v", bounds)
	}
}
