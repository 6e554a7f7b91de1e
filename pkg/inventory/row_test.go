package inventory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		rows []RawRow
		want []DeviceEntry
	}{
		{
			name: "named multi-address row",
			rows: []RawRow{{Name: "core-sw", IPAddress: "10.0.0.1,10.0.0.2", CIDR: "24"}},
			want: []DeviceEntry{
				{Name: "core-sw", IP: "10.0.0.1", CIDR: "24"},
				{Name: "core-sw", IP: "10.0.0.2", CIDR: "24"},
			},
		},
		{
			name: "unnamed row shares first untrimmed token",
			rows: []RawRow{{IPAddress: " 10.0.0.1, 10.0.0.2"}},
			want: []DeviceEntry{
				{Name: " 10.0.0.1", IP: "10.0.0.1", CIDR: "24"},
				{Name: " 10.0.0.1", IP: "10.0.0.2", CIDR: "24"},
			},
		},
		{
			name: "cidr trimmed and defaulted",
			rows: []RawRow{
				{Name: "a", IPAddress: "10.1.0.1", CIDR: " 16 "},
				{Name: "b", IPAddress: "10.2.0.1", CIDR: "   "},
			},
			want: []DeviceEntry{
				{Name: "a", IP: "10.1.0.1", CIDR: "16"},
				{Name: "b", IP: "10.2.0.1", CIDR: "24"},
			},
		},
		{
			name: "url kept verbatim",
			rows: []RawRow{{Name: "fw", IPAddress: "10.0.0.254", URL: " https://fw.example/ "}},
			want: []DeviceEntry{
				{Name: "fw", IP: "10.0.0.254", CIDR: "24", URL: " https://fw.example/ "},
			},
		},
		{
			name: "empty and malformed addresses pass through",
			rows: []RawRow{
				{IPAddress: ""},
				{Name: "bad", IPAddress: "not-an-ip,10.0.0.1,"},
			},
			want: []DeviceEntry{
				{Name: "", IP: "", CIDR: "24"},
				{Name: "bad", IP: "not-an-ip", CIDR: "24"},
				{Name: "bad", IP: "10.0.0.1", CIDR: "24"},
				{Name: "bad", IP: "", CIDR: "24"},
			},
		},
		{
			name: "line carried to every entry",
			rows: []RawRow{{Name: "sw", IPAddress: "10.0.0.1,10.0.0.2", Line: 7}},
			want: []DeviceEntry{
				{Name: "sw", IP: "10.0.0.1", CIDR: "24", Line: 7},
				{Name: "sw", IP: "10.0.0.2", CIDR: "24", Line: 7},
			},
		},
		{
			name: "no rows",
			rows: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.rows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntriesShareRowAttributes(t *testing.T) {
	row := RawRow{Name: "dist", IPAddress: "10.0.0.1, 10.0.1.1 ,10.0.2.1", URL: "http://dist", CIDR: "23"}
	entries := row.Entries()

	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Name != "dist" || e.URL != "http://dist" || e.CIDR != "23" {
			t.Errorf("entry %d = %+v, want shared name/url/cidr", i, e)
		}
	}
	if entries[1].IP != "10.0.1.1" {
		t.Errorf("entries[1].IP = %q, want trimmed %q", entries[1].IP, "10.0.1.1")
	}
}
