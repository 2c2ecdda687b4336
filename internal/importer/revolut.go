package importer

import (
	"fmt"
	"io"

	"github.com/revcsv-dev/revcsv/internal/codec"
	"github.com/revcsv-dev/revcsv/internal/model"
)

// RevolutParser parses Revolut transaction CSV exports.
type RevolutParser struct{}

// Format returns the parser name.
func (p *RevolutParser) Format() string { return "revolut" }

// Parse reads a Revolut CSV. Malformed rows never fail the parse; a
// header missing required columns is reported in the Result so the
// caller can warn.
func (p *RevolutParser) Parse(r io.Reader) (*Result, error) {
	table, err := codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("reading revolut CSV: %w", err)
	}

	return &Result{
		Rows:           table.Rows,
		MissingColumns: table.MissingColumns(model.RequiredColumns),
	}, nil
}
