package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

// notFoundBody is the literal reply of the status endpoint when no outage
// record exists for an agency. It is a valid outcome, not an error.
var notFoundBody = []byte("Not found")

// Client fetches snapshot documents from agency store endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a snapshot store client with the given fetch timeout.
// A zero timeout disables it.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSnapshot fetches and decodes one (agency, data type) document.
// Non-2xx statuses and malformed payloads are errors, except for the status
// endpoint's "Not found" sentinel which decodes to an unknown OutageStatus.
func (c *Client) FetchSnapshot(ctx context.Context, agency config.Agency, dataType transit.DataType) (transit.Snapshot, error) {
	if !dataType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataType, dataType)
	}

	url := fmt.Sprintf("%s/%s", agency.Endpoint, dataType.Path())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}

	if dataType == transit.DataTypeOutageStatus {
		// The store answers 404/"Not found" when no outage is recorded.
		if resp.StatusCode == http.StatusNotFound || bytes.Equal(bytes.TrimSpace(body), notFoundBody) {
			return transit.OutageStatus{Known: false}, nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	return transit.DecodeSnapshot(dataType, body)
}
