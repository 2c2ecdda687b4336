// Package export serializes normalized transactions into the headerless
// output CSV consumed downstream.
package export

import (
	"fmt"
	"io"

	"github.com/revcsv-dev/revcsv/internal/codec"
	"github.com/revcsv-dev/revcsv/internal/model"
)

// Output column order. The destination format is data-only: Columns is
// documentation and validation, never written as a header line.
var Columns = []string{
	"Date", "Type", "Amount", "Currency", "Category", "Name", "Account", "Notes", "Source",
}

const (
	numFields   = 9
	colDate     = 0
	colType     = 1
	colAmount   = 2
	colCurrency = 3
	colCategory = 4
	colName     = 5
	colAccount  = 6
	colNotes    = 7
	colSource   = 8
)

// MarshalTransaction converts a Transaction to an output row ([]string).
// Amount is rendered with exactly two decimal places.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date
	row[colType] = string(tx.Type)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colCurrency] = tx.Currency
	row[colCategory] = tx.Category
	row[colName] = tx.Name
	row[colAccount] = tx.Account
	row[colNotes] = tx.Notes
	row[colSource] = tx.Source
	return row
}

// Encode returns the headerless CSV text for txns.
func Encode(txns []model.Transaction) string {
	rows := make([][]string, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, MarshalTransaction(tx))
	}
	return codec.Encode(rows)
}

// Write writes the headerless CSV for txns to w.
func Write(w io.Writer, txns []model.Transaction) error {
	if _, err := io.WriteString(w, Encode(txns)); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
