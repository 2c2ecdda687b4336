// Package codec decodes delimited bank-export text into named rows and
// encodes normalized rows back into delimited text.
package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/revcsv-dev/revcsv/internal/model"
)

// Delimiter used by both the input and output formats.
const Delimiter = ","

// Table is a decoded CSV file: a header line plus one RawRow per data line.
type Table struct {
	Header []string
	Rows   []model.RawRow
}

// Decode reads delimited text whose first line is a header and zips each
// following line into a column-name → value map. Decoding is lenient:
// short rows yield empty strings for their missing trailing columns, and
// extra cells beyond the header are dropped. Only a reader failure is an
// error; malformed rows never are.
func Decode(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := records[0]
	rows := make([]model.RawRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(model.RawRow, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return &Table{Header: header, Rows: rows}, nil
}

// MissingColumns returns the required column names absent from the header,
// in the order given. An empty result means the schema is complete.
func (t *Table) MissingColumns(required []string) []string {
	present := make(map[string]bool, len(t.Header))
	for _, col := range t.Header {
		present[col] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// Encode joins rows into delimited lines with no header line. A field is
// wrapped in double quotes, with inner quotes doubled, if and only if it
// contains the delimiter, a double quote, or a newline. The destination
// format depends on this exact rule, so encoding is done by hand instead
// of through csv.Writer (which also quotes leading whitespace).
func Encode(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteString(Delimiter)
			}
			b.WriteString(quote(field))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func quote(field string) string {
	if !strings.ContainsAny(field, Delimiter+"\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
