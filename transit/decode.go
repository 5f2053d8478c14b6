package transit

import (
	"encoding/json"
	"fmt"
)

// DecodeSnapshot decodes a raw store payload into the typed snapshot for the
// given data type. Unknown data types and malformed documents are errors;
// downstream code never sees an untyped payload.
func DecodeSnapshot(t DataType, data []byte) (Snapshot, error) {
	switch t {
	case DataTypeStations:
		return DecodeStations(data)
	case DataTypeVehicles:
		return DecodeVehicles(data)
	case DataTypeLines:
		return DecodeLines(data)
	case DataTypeLastUpdated:
		return DecodeLastUpdated(data)
	case DataTypeOutageStatus:
		return DecodeOutageStatus(data)
	}
	return nil, fmt.Errorf("unknown data type %q", t)
}

// DecodeStations decodes the stations document: station id -> Station.
func DecodeStations(data []byte) (map[string]Station, error) {
	var out map[string]Station
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	return out, nil
}

// DecodeVehicles decodes the vehicles document: vehicle id -> Vehicle.
func DecodeVehicles(data []byte) (map[string]Vehicle, error) {
	var out map[string]Vehicle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return out, nil
}

// DecodeLines decodes the lines document: line code -> Line.
func DecodeLines(data []byte) (map[string]Line, error) {
	var out map[string]Line
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode lines: %w", err)
	}
	return out, nil
}

// DecodeLastUpdated decodes the freshness scalar (unix milliseconds).
func DecodeLastUpdated(data []byte) (int64, error) {
	var ts int64
	if err := json.Unmarshal(data, &ts); err != nil {
		return 0, fmt.Errorf("decode lastUpdated: %w", err)
	}
	return ts, nil
}

// outageDocument is the wire shape of the status endpoint's JSON reply.
type outageDocument struct {
	IsOutage bool   `json:"isOutage"`
	Message  string `json:"message"`
}

// DecodeOutageStatus decodes the status endpoint's JSON reply. The caller is
// expected to have handled the "Not found" sentinel body already; here a
// malformed document is an error, distinct from the not-found outcome.
func DecodeOutageStatus(data []byte) (OutageStatus, error) {
	var doc outageDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return OutageStatus{}, fmt.Errorf("decode outage status: %w", err)
	}
	return OutageStatus{Known: true, IsOutage: doc.IsOutage, Message: doc.Message}, nil
}
