package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/transit-tracker/assets"
	"github.com/theoremus-urban-solutions/transit-tracker/config"
)

func TestFetchIconManifestDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icons.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`["red_train.png","blue_train.png","red_train.png","ff0000.arrow.png"]`))
	}))
	defer srv.Close()

	f := assets.NewFetcher(2 * time.Second)
	names, err := f.FetchIconManifest(context.Background(), config.Agency{AssetRoot: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"red_train.png", "blue_train.png", "ff0000.arrow.png"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("expected %v, got %v", expected, names)
	}
}

func TestFilterManifest(t *testing.T) {
	names := []string{"red_train.png", "blue_bus.png", "ff0000.arrow.png"}

	if got := assets.FilterManifest(names, "train"); len(got) != 1 || got[0] != "red_train.png" {
		t.Errorf("train filter: got %v", got)
	}
	if got := assets.FilterManifest(names, "arrow"); len(got) != 1 || got[0] != "ff0000.arrow.png" {
		t.Errorf("arrow filter: got %v", got)
	}
}

func TestIconKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		arrow    bool
		expected string
	}{
		{name: "type icon keyed before underscore", input: "red_train.png", arrow: false, expected: "red"},
		{name: "arrow icon keyed before extension", input: "ff0000.arrow.png", arrow: true, expected: "ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assets.IconKey(tt.input, tt.arrow); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLoadIconsRecordsFailuresWithoutAborting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/icons/broken_train.png" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	f := assets.NewFetcher(2 * time.Second)
	results := f.LoadIcons(context.Background(), config.Agency{AssetRoot: srv.URL},
		[]string{"red_train.png", "broken_train.png", "blue_train.png"}, false)

	if len(results) != 3 {
		t.Fatalf("every load must be accounted for, got %d results", len(results))
	}
	var failed, loaded int
	for _, res := range results {
		if res.Err != nil {
			failed++
			if res.Name != "broken_train.png" {
				t.Errorf("unexpected failure for %s: %v", res.Name, res.Err)
			}
			continue
		}
		loaded++
		if string(res.Data) != "png-bytes" {
			t.Errorf("unexpected payload for %s", res.Name)
		}
	}
	if failed != 1 || loaded != 2 {
		t.Errorf("expected 1 failure and 2 loads, got %d/%d", failed, loaded)
	}
}
