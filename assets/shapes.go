package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
)

// Fetcher retrieves static map assets for agencies.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates an asset fetcher with the given timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{httpClient: &http.Client{Timeout: timeout}}
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// FetchShapes retrieves an agency's route geometry document.
func (f *Fetcher) FetchShapes(ctx context.Context, agency config.Agency) (*geojson.FeatureCollection, error) {
	body, err := f.get(ctx, agency.MapShapes)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode shapes: %w", err)
	}
	return fc, nil
}

// FilterShapesByRoute keeps the shape features whose routeID property
// matches, or everything for the "all" filter.
func FilterShapesByRoute(fc *geojson.FeatureCollection, routeID string) *geojson.FeatureCollection {
	if routeID == "all" {
		return fc
	}
	out := geojson.NewFeatureCollection()
	for _, feature := range fc.Features {
		if id, ok := feature.Properties["routeID"].(string); ok && id == routeID {
			out.Append(feature)
		}
	}
	return out
}
