package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/transit-tracker/assets"
	"github.com/theoremus-urban-solutions/transit-tracker/config"
)

const shapesDoc = `{
  "type": "FeatureCollection",
  "features": [
    {"type":"Feature","properties":{"routeID":"red","routeColor":"#c60c30"},
     "geometry":{"type":"LineString","coordinates":[[-87.6,41.9],[-87.7,42.0]]}},
    {"type":"Feature","properties":{"routeID":"blue","routeColor":"#00a1de"},
     "geometry":{"type":"LineString","coordinates":[[-87.6,41.8],[-87.9,41.9]]}}
  ]
}`

func TestFetchAndFilterShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(shapesDoc))
	}))
	defer srv.Close()

	f := assets.NewFetcher(2 * time.Second)
	fc, err := f.FetchShapes(context.Background(), config.Agency{MapShapes: srv.URL + "/shapes.geojson"})
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 shape features, got %d", len(fc.Features))
	}

	filtered := assets.FilterShapesByRoute(fc, "red")
	if len(filtered.Features) != 1 {
		t.Fatalf("expected 1 red feature, got %d", len(filtered.Features))
	}
	if filtered.Features[0].Properties["routeID"] != "red" {
		t.Errorf("wrong feature survived the filter: %+v", filtered.Features[0].Properties)
	}

	if all := assets.FilterShapesByRoute(fc, "all"); len(all.Features) != 2 {
		t.Errorf("all filter must pass everything, got %d", len(all.Features))
	}
}

func TestFetchShapesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := assets.NewFetcher(2 * time.Second)
	if _, err := f.FetchShapes(context.Background(), config.Agency{MapShapes: srv.URL}); err == nil {
		t.Fatal("expected an error for a missing shape document")
	}
}
