package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
)

// maxConcurrentIconLoads bounds the parallel image fetches per batch.
const maxConcurrentIconLoads = 8

// IconResult is the outcome of one icon load. A failed load carries Err and
// nil Data; the rest of the batch is unaffected.
type IconResult struct {
	Name string // file name from the manifest
	Key  string // sprite key the renderer registers the image under
	Data []byte
	Err  error
}

// FetchIconManifest retrieves the agency's icon manifest: a JSON array of
// image file names, de-duplicated here while preserving order.
func (f *Fetcher) FetchIconManifest(ctx context.Context, agency config.Agency) ([]string, error) {
	body, err := f.get(ctx, agency.AssetRoot+"/icons.json")
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("decode icon manifest: %w", err)
	}

	seen := map[string]struct{}{}
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique, nil
}

// FilterManifest keeps the manifest entries containing substr, e.g. the
// agency's type code or "arrow".
func FilterManifest(names []string, substr string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(name, substr) {
			out = append(out, name)
		}
	}
	return out
}

// IconKey derives the sprite key for a manifest entry. Vehicle-type icons
// are keyed by the segment before the first underscore; arrow icons keep
// everything before the file extension.
func IconKey(name string, arrow bool) string {
	if arrow {
		return strings.SplitN(name, ".", 2)[0]
	}
	return strings.SplitN(name, "_", 2)[0]
}

// LoadIcons fetches a set of manifest entries in parallel. Failures are
// logged and recorded per item, never aborting the batch; callers decide
// what to do with the gaps.
func (f *Fetcher) LoadIcons(ctx context.Context, agency config.Agency, names []string, arrow bool) []IconResult {
	p := pool.NewWithResults[IconResult]().WithMaxGoroutines(maxConcurrentIconLoads)

	for _, name := range names {
		p.Go(func() IconResult {
			data, err := f.get(ctx, agency.AssetRoot+"/icons/"+name)
			if err != nil {
				log.Warn().Err(err).Str("icon", name).Msg("Icon load failed, skipping")
				return IconResult{Name: name, Key: IconKey(name, arrow), Err: err}
			}
			return IconResult{Name: name, Key: IconKey(name, arrow), Data: data}
		})
	}
	return p.Wait()
}
