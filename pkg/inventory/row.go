package inventory

import "strings"

// DefaultCIDR is the prefix length assumed when a row leaves CIDR empty.
const DefaultCIDR = "24"

// Column names recognized in the inventory header.
const (
	ColumnName = "Device Name"
	ColumnIP   = "IP Address"
	ColumnURL  = "URL"
	ColumnCIDR = "CIDR"
)

// RawRow is one inventory record as read from the source. Absent columns are
// empty strings.
type RawRow struct {
	Name      string
	IPAddress string // comma-separated list
	URL       string
	CIDR      string

	// Line is the 1-based line the record started on, 0 when unknown.
	Line int
}

// DeviceEntry is a single device address ready for grouping.
type DeviceEntry struct {
	Name string
	IP   string
	CIDR string
	URL  string

	// Line is copied from the originating RawRow.
	Line int
}

// Normalize expands rows into device entries, one per comma-separated address,
// in row order.
//
// All entries of a row share the same name, CIDR and URL. When the row has no
// name, the first address token exactly as written (before trimming) is used
// for every entry of that row.
func Normalize(rows []RawRow) []DeviceEntry {
	var entries []DeviceEntry
	for _, row := range rows {
		entries = append(entries, row.Entries()...)
	}
	return entries
}

// Entries expands a single row. See [Normalize].
func (r RawRow) Entries() []DeviceEntry {
	tokens := strings.Split(r.IPAddress, ",")

	name := r.Name
	if name == "" {
		name = tokens[0]
	}
	cidr := strings.TrimSpace(r.CIDR)
	if cidr == "" {
		cidr = DefaultCIDR
	}

	entries := make([]DeviceEntry, len(tokens))
	for i, tok := range tokens {
		entries[i] = DeviceEntry{
			Name: name,
			IP:   strings.TrimSpace(tok),
			CIDR: cidr,
			URL:  r.URL,
			Line: r.Line,
		}
	}
	return entries
}
