package transit

// Snapshot is the materialized value for one (agency, data type) pair: a
// stations, vehicles or lines map, a LastUpdated scalar, or an OutageStatus.
// Snapshots are immutable once handed out.
type Snapshot interface{}

// Arrival is one approaching vehicle in a station's destination group.
// ActualETA is unix milliseconds; NoETA marks predictions the feed could not
// produce, and such entries never appear on a ranked board.
type Arrival struct {
	Line          string  `json:"line"`
	LineCode      string  `json:"lineCode"`
	LineColor     string  `json:"lineColor"`
	LineTextColor string  `json:"lineTextColor"`
	RunNumber     string  `json:"runNumber"`
	Destination   string  `json:"dest"`
	ActualETA     int64   `json:"actualETA"`
	NoETA         bool    `json:"noETA"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Heading       float64 `json:"heading"`
}

// Destination groups the vehicles approaching a station towards one terminus.
type Destination struct {
	Trains []Arrival `json:"trains"`
}

// Station is one stop with its position and per-destination arrivals.
// A (0,0) position means the location is unknown.
type Station struct {
	StationName  string                 `json:"stationName"`
	Lat          float64                `json:"lat"`
	Lon          float64                `json:"lon"`
	Destinations map[string]Destination `json:"destinations"`
}

// Vehicle is one live vehicle position.
type Vehicle struct {
	Line          string  `json:"line"`
	LineCode      string  `json:"lineCode"`
	LineColor     string  `json:"lineColor"`
	LineTextColor string  `json:"lineTextColor"`
	RunNumber     string  `json:"runNumber"`
	Destination   string  `json:"dest"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Heading       float64 `json:"heading"`
	ActualETA     int64   `json:"actualETA"`
	NoETA         bool    `json:"noETA"`
}

// Line describes a route and the stations it serves.
type Line struct {
	LineCode       string   `json:"lineCode"`
	LineNameShort  string   `json:"lineNameShort"`
	LineNameLong   string   `json:"lineNameLong"`
	RouteColor     string   `json:"routeColor"`
	RouteTextColor string   `json:"routeTextColor"`
	Stations       []string `json:"stations"`
}

// OutageStatus is the diagnostic record behind the status endpoint.
// Known is false when the store answered "Not found", which is a valid
// non-error outcome meaning no outage has been recorded for the agency.
type OutageStatus struct {
	Known    bool   `json:"known"`
	IsOutage bool   `json:"isOutage"`
	Message  string `json:"message"`
}
