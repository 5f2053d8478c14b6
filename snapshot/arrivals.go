package snapshot

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

// maxBoardEntries caps how many upcoming vehicles a destination board shows.
const maxBoardEntries = 3

// DestinationBoard is the ranked arrival list for one destination group at a
// station. NoService is set when the group has no tracked, ETA-bearing
// vehicle on the filtered line.
type DestinationBoard struct {
	Destination string
	Arrivals    []transit.Arrival
	NoService   bool
}

// RankArrivals builds the per-destination boards for a station.
//
// For each destination group, vehicles on the filtered line that carry an
// ETA are sorted ascending by arrival time and truncated to the nearest
// three. Boards come back sorted by destination name so output is
// deterministic.
func RankArrivals(station transit.Station, lineFilter string) []DestinationBoard {
	dests := make([]string, 0, len(station.Destinations))
	for dest := range station.Destinations {
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	boards := make([]DestinationBoard, 0, len(dests))
	for _, dest := range dests {
		group := station.Destinations[dest]

		matched := make([]transit.Arrival, 0, len(group.Trains))
		for _, arrival := range group.Trains {
			if lineFilter != LineFilterAll && arrival.LineCode != lineFilter {
				continue
			}
			if arrival.NoETA {
				continue
			}
			matched = append(matched, arrival)
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].ActualETA < matched[j].ActualETA
		})
		if len(matched) > maxBoardEntries {
			matched = matched[:maxBoardEntries]
		}

		boards = append(boards, DestinationBoard{
			Destination: dest,
			Arrivals:    matched,
			NoService:   len(matched) == 0,
		})
	}
	return boards
}

// HasAnyService reports whether any board tracks at least one vehicle, which
// drives the station-wide "no vehicles tracking" copy.
func HasAnyService(boards []DestinationBoard) bool {
	for _, b := range boards {
		if !b.NoService {
			return true
		}
	}
	return false
}
