package transit

// DataType identifies one of the per-agency documents in the snapshot store.
type DataType string

const (
	DataTypeStations     DataType = "stations"
	DataTypeVehicles     DataType = "vehicles"
	DataTypeLines        DataType = "lines"
	DataTypeLastUpdated  DataType = "lastUpdated"
	DataTypeOutageStatus DataType = "outageStatus"
)

// DataTypes lists every valid data type.
var DataTypes = []DataType{
	DataTypeStations,
	DataTypeVehicles,
	DataTypeLines,
	DataTypeLastUpdated,
	DataTypeOutageStatus,
}

// Valid reports whether t is one of the enumerated data types.
func (t DataType) Valid() bool {
	switch t {
	case DataTypeStations, DataTypeVehicles, DataTypeLines, DataTypeLastUpdated, DataTypeOutageStatus:
		return true
	}
	return false
}

// Path is the URL path segment appended to an agency's endpoint for this
// data type. The outage diagnostic lives on its own path, separate from the
// snapshot documents.
func (t DataType) Path() string {
	if t == DataTypeOutageStatus {
		return "status"
	}
	return string(t)
}

func (t DataType) String() string { return string(t) }
