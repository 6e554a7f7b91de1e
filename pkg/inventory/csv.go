package inventory

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/matzehuels/netgliffy/pkg/errors"
)

// ReadFile opens the CSV inventory at path and returns its rows.
// See [ReadCSV] for the accepted format.
func ReadFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "open %s", path)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "read %s", path)
	}
	return rows, nil
}

// ReadCSV decodes a CSV inventory from r.
//
// The first record is the header; header cells are trimmed and matched
// exactly against the column names. Columns may appear in any order and
// unknown columns are ignored. Records shorter than the header read their
// missing cells as empty. A UTF-8 or UTF-16 byte order mark is consumed
// before parsing.
//
// Quoting is lenient: a stray quote inside an unquoted cell (19" rack) is kept
// as text, and a quoted cell left open at the end of input runs to the end.
//
// An empty source (no header) or a failing reader yields an error; ReadCSV
// does not close r.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeSourceUnreadable, "missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "parse header")
	}
	cols := indexColumns(header)

	var rows []RawRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "parse record")
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, RawRow{
			Name:      cols.get(rec, ColumnName),
			IPAddress: cols.get(rec, ColumnIP),
			URL:       cols.get(rec, ColumnURL),
			CIDR:      cols.get(rec, ColumnCIDR),
			Line:      line,
		})
	}
	return rows, nil
}

type columns map[string]int

func indexColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
