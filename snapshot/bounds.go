package snapshot

// Bounds accumulates a bounding box over entity positions. The zero-ish
// starting values are sentinels outside the valid coordinate range, so an
// untouched Bounds reports invalid.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBounds returns an empty accumulator.
func NewBounds() *Bounds {
	return &Bounds{MinLat: 90, MaxLat: -90, MinLon: 180, MaxLon: -180}
}

// Extend grows the box to include a position. A zero latitude or longitude
// marks an unknown location and is ignored.
func (b *Bounds) Extend(lat, lon float64) {
	if lat == 0 || lon == 0 {
		return
	}
	if lat < b.MinLat {
		b.MinLat = lat
	}
	if lat > b.MaxLat {
		b.MaxLat = lat
	}
	if lon < b.MinLon {
		b.MinLon = lon
	}
	if lon > b.MaxLon {
		b.MaxLon = lon
	}
}

// Valid reports whether at least one known position was accumulated.
func (b *Bounds) Valid() bool {
	return b.MinLat != 90 && b.MaxLat != -90 && b.MinLon != 180 && b.MaxLon != -180
}
