package snapshot

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

// LineFilterAll matches every line.
const LineFilterAll = "all"

// BuildStationFeatures converts a stations snapshot into point features.
//
// With a line filter other than "all", only stations served by that line are
// emitted; an unknown line code yields no features. Stations with unknown
// positions still become features, they just never extend the bounding box.
// bounds may be nil when the caller has no viewport to fit.
func BuildStationFeatures(stations map[string]transit.Station, lines map[string]transit.Line, lineFilter string, bounds *Bounds) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	ids := make([]string, 0, len(stations))
	for id := range stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if !stationMatchesLine(id, lines, lineFilter) {
			continue
		}
		station := stations[id]

		if bounds != nil {
			bounds.Extend(station.Lat, station.Lon)
		}

		f := geojson.NewFeature(orb.Point{station.Lon, station.Lat})
		f.ID = id
		f.Properties = geojson.Properties{
			"id":          id,
			"name":        station.StationName,
			"stationData": station,
		}
		fc.Append(f)
	}
	return fc
}

func stationMatchesLine(stationID string, lines map[string]transit.Line, lineFilter string) bool {
	if lineFilter == LineFilterAll {
		return true
	}
	line, ok := lines[lineFilter]
	if !ok {
		return false
	}
	for _, id := range line.Stations {
		if id == stationID {
			return true
		}
	}
	return false
}

// BuildVehicleFeatures converts a vehicles snapshot into point features for
// vehicles on the filtered line ("all" for every line). Each feature carries
// the raw vehicle record plus the renderer-facing id, routeColor, lineCode
// and heading properties.
func BuildVehicleFeatures(vehicles map[string]transit.Vehicle, lineFilter string, bounds *Bounds) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	ids := make([]string, 0, len(vehicles))
	for id := range vehicles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		vehicle := vehicles[id]
		if lineFilter != LineFilterAll && vehicle.LineCode != lineFilter {
			continue
		}

		if bounds != nil {
			bounds.Extend(vehicle.Lat, vehicle.Lon)
		}

		f := geojson.NewFeature(orb.Point{vehicle.Lon, vehicle.Lat})
		f.ID = id
		f.Properties = geojson.Properties{
			"id":            id,
			"routeColor":    vehicle.LineColor,
			"lineCode":      vehicle.LineCode,
			"heading":       vehicle.Heading,
			"line":          vehicle.Line,
			"lineTextColor": vehicle.LineTextColor,
			"runNumber":     vehicle.RunNumber,
			"dest":          vehicle.Destination,
		}
		fc.Append(f)
	}
	return fc
}
