package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// FetchConfig controls how snapshots are fetched from the store.
//
// MaxAgeMS is the freshness window for cache reads: a cached snapshot younger
// than this is served without a network call. Zero disables the window and
// every read forces a fetch, matching the original tracker behaviour.
type FetchConfig struct {
	TimeoutMS         int `yaml:"timeoutMS" validate:"gte=0"`
	RefreshIntervalMS int `yaml:"refreshIntervalMS" validate:"gte=0"`
	MaxAgeMS          int `yaml:"maxAgeMS" validate:"gte=0"`
}

// Agency describes one transit agency in the registry: where its snapshots
// live and how its vehicles are presented.
type Agency struct {
	Name          string `yaml:"name" validate:"required"`
	SelectionName string `yaml:"selectionName"`

	// Endpoint is the base URL of the agency's snapshot store; data type
	// paths are appended to it. MapShapes is a static route geometry
	// document, fetched once per view. AssetRoot hosts the icon manifest
	// and icon images.
	Endpoint  string `yaml:"endpoint" validate:"required,url"`
	MapShapes string `yaml:"mapShapes" validate:"omitempty,url"`
	AssetRoot string `yaml:"assetRoot" validate:"omitempty,url"`

	// MapDefault is lat, lon, zoom for the initial viewport.
	MapDefault [3]float64 `yaml:"mapDefault"`

	Color     string `yaml:"color"`
	TextColor string `yaml:"textColor"`

	Type           string `yaml:"type"`           // Train|Bus
	TypePlural     string `yaml:"typePlural"`     // Trains|Buses
	TypeCode       string `yaml:"typeCode"`       // train|bus, used to filter the icon manifest
	TypeCodePlural string `yaml:"typeCodePlural"` // trains|buses, used in "no service" copy

	AddLine             bool `yaml:"addLine"`
	Disabled            bool `yaml:"disabled"`
	UseCodeForShortName bool `yaml:"useCodeForShortName"`
	AddShortName        bool `yaml:"addShortName"`
	ShowArrow           bool `yaml:"showArrow"`
}

// AppConfig is the root configuration document
type AppConfig struct {
	Server   ServerConfig      `yaml:"server"`
	Fetch    FetchConfig       `yaml:"fetch"`
	Agencies map[string]Agency `yaml:"agencies" validate:"required,min=1"`
}
