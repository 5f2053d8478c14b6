package snapshot_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-tracker/snapshot"
)

func TestBoundsZeroPositionsIgnored(t *testing.T) {
	b := snapshot.NewBounds()
	b.Extend(0, 0)
	b.Extend(0, -87.6)
	b.Extend(41.9, 0)

	if b.Valid() {
		t.Errorf("unknown positions must not produce a valid box: %+v", b)
	}
}

func TestBoundsSinglePoint(t *testing.T) {
	b := snapshot.NewBounds()
	b.Extend(41.9, -87.6)

	if !b.Valid() {
		t.Fatal("one known position should validate the box")
	}
	if b.MinLat != 41.9 || b.MaxLat != 41.9 || b.MinLon != -87.6 || b.MaxLon != -87.6 {
		t.Errorf("single point should collapse min and max: %+v", b)
	}
}

func TestBoundsAccumulates(t *testing.T) {
	b := snapshot.NewBounds()
	b.Extend(41.9, -87.6)
	b.Extend(42.1, -87.9)
	b.Extend(0, 0) // must not reset anything
	b.Extend(41.7, -87.5)

	if b.MinLat != 41.7 || b.MaxLat != 42.1 || b.MinLon != -87.9 || b.MaxLon != -87.5 {
		t.Errorf("unexpected box: %+v", b)
	}
}
