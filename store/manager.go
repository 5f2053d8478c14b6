package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

var (
	// ErrUnknownAgency is returned when an agency key does not resolve in
	// the registry.
	ErrUnknownAgency = errors.New("unknown agency")

	// ErrUnknownDataType is returned for a data type outside the enumeration.
	ErrUnknownDataType = errors.New("unknown data type")
)

// cacheKey is the composite cache key; string concatenation is confined to
// the singleflight group which requires flat keys.
type cacheKey struct {
	Agency   string
	DataType transit.DataType
}

func (k cacheKey) String() string {
	return k.Agency + "|" + string(k.DataType)
}

// cacheEntry holds the last successfully fetched snapshot for one key.
// Failed fetches never touch it.
type cacheEntry struct {
	value     transit.Snapshot
	fetchedAt time.Time
}

// Manager owns the snapshot cache and performs deduplicated fetches.
//
// The singleflight group carries the in-flight marker per cache key: the
// first caller starts the fetch, later callers attach to it, and everyone
// resolves with the same value or the same error. The entry table only ever
// holds completed results, so a consumer always sees the most recently
// completed fetch for a key and never partial state.
type Manager struct {
	cfg    *config.AppConfig
	client *Client
	maxAge time.Duration

	mu      sync.RWMutex
	entries map[cacheKey]*cacheEntry

	group singleflight.Group
}

// NewManager creates the shared synchronization core for a registry.
func NewManager(cfg *config.AppConfig) *Manager {
	return &Manager{
		cfg:     cfg,
		client:  NewClient(cfg.FetchTimeout()),
		maxAge:  cfg.MaxAge(),
		entries: map[cacheKey]*cacheEntry{},
	}
}

// GetData returns the snapshot for (agencyKey, dataType).
//
// When a cached entry is younger than the configured freshness window it is
// returned directly; with the default zero window every call fetches. While
// a fetch for the key is outstanding, callers attach to it instead of
// issuing another request. Errors propagate to all attached callers and are
// not cached, so the next call retries from scratch.
func (m *Manager) GetData(ctx context.Context, agencyKey string, dataType transit.DataType) (transit.Snapshot, error) {
	agency, ok := m.cfg.Agency(agencyKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgency, agencyKey)
	}
	if !dataType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataType, dataType)
	}

	key := cacheKey{Agency: agencyKey, DataType: dataType}

	if m.maxAge > 0 {
		if value, fetchedAt, ok := m.Cached(agencyKey, dataType); ok && time.Since(fetchedAt) < m.maxAge {
			return value, nil
		}
	}

	value, err, _ := m.group.Do(key.String(), func() (interface{}, error) {
		// Detached context: an unmounting view must not cancel a fetch
		// other consumers are attached to. Once issued, the fetch runs
		// to completion; the client timeout still bounds it.
		fetchCtx := context.WithoutCancel(ctx)

		snapshot, err := m.client.FetchSnapshot(fetchCtx, agency, dataType)
		if err != nil {
			log.Warn().Err(err).Str("agency", agencyKey).Stringer("datatype", dataType).Msg("Snapshot fetch failed")
			return nil, err
		}

		m.mu.Lock()
		m.entries[key] = &cacheEntry{value: snapshot, fetchedAt: time.Now()}
		m.mu.Unlock()

		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Cached returns the last completed snapshot for a key and when it was
// fetched, without triggering network I/O.
func (m *Manager) Cached(agencyKey string, dataType transit.DataType) (transit.Snapshot, time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[cacheKey{Agency: agencyKey, DataType: dataType}]
	if !ok {
		return nil, time.Time{}, false
	}
	return entry.value, entry.fetchedAt, true
}

// Stations fetches the stations snapshot for an agency.
func (m *Manager) Stations(ctx context.Context, agencyKey string) (map[string]transit.Station, error) {
	value, err := m.GetData(ctx, agencyKey, transit.DataTypeStations)
	if err != nil {
		return nil, err
	}
	return value.(map[string]transit.Station), nil
}

// Vehicles fetches the vehicles snapshot for an agency.
func (m *Manager) Vehicles(ctx context.Context, agencyKey string) (map[string]transit.Vehicle, error) {
	value, err := m.GetData(ctx, agencyKey, transit.DataTypeVehicles)
	if err != nil {
		return nil, err
	}
	return value.(map[string]transit.Vehicle), nil
}

// Lines fetches the lines snapshot for an agency.
func (m *Manager) Lines(ctx context.Context, agencyKey string) (map[string]transit.Line, error) {
	value, err := m.GetData(ctx, agencyKey, transit.DataTypeLines)
	if err != nil {
		return nil, err
	}
	return value.(map[string]transit.Line), nil
}

// LastUpdated fetches the freshness timestamp for an agency.
func (m *Manager) LastUpdated(ctx context.Context, agencyKey string) (time.Time, error) {
	value, err := m.GetData(ctx, agencyKey, transit.DataTypeLastUpdated)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(value.(int64)), nil
}

// Outage fetches the outage diagnostic for an agency.
func (m *Manager) Outage(ctx context.Context, agencyKey string) (transit.OutageStatus, error) {
	value, err := m.GetData(ctx, agencyKey, transit.DataTypeOutageStatus)
	if err != nil {
		return transit.OutageStatus{}, err
	}
	return value.(transit.OutageStatus), nil
}

// DegradedMessage resolves the user-facing message for a failed load: the
// operator-authored outage message when one is recorded, otherwise a generic
// fallback. Errors querying the diagnostic itself also fall back.
func (m *Manager) DegradedMessage(ctx context.Context, agencyKey string) string {
	const generic = "Error loading data"

	status, err := m.Outage(ctx, agencyKey)
	if err != nil || !status.Known || !status.IsOutage {
		return generic
	}
	return status.Message
}
