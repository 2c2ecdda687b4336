package model

import (
	"github.com/shopspring/decimal"
)

// TxType says which side of the ledger a transaction falls on. Sign
// information lives here; Amount is always non-negative.
type TxType string

const (
	TypeExpense TxType = "Expense"
	TypeIncome  TxType = "Income"
)

// Revolut export column names, case-sensitive.
const (
	ColType          = "Type"
	ColProduct       = "Product"
	ColStartedDate   = "Started Date"
	ColCompletedDate = "Completed Date"
	ColDescription   = "Description"
	ColAmount        = "Amount"
	ColFee           = "Fee"
	ColCurrency      = "Currency"
	ColState         = "State"
	ColBalance       = "Balance"
)

// RequiredColumns is the header set a Revolut export is expected to carry.
// A missing column is reported as a warning, not an error.
var RequiredColumns = []string{
	ColType, ColProduct, ColStartedDate, ColCompletedDate, ColDescription,
	ColAmount, ColFee, ColCurrency, ColState, ColBalance,
}

// StateCompleted is the State value admitted by the completed-only filter.
const StateCompleted = "COMPLETED"

// RawRow is one decoded CSV row, keyed by header column name. Columns
// missing from a short row are present with empty values.
type RawRow map[string]string

// Get returns the value for a column, or "" when absent.
func (r RawRow) Get(col string) string { return r[col] }

// Transaction is a normalized output row.
type Transaction struct {
	Date     string // YYYY-MM-DD, or "" when the source date was unparseable
	Type     TxType
	Amount   decimal.Decimal // >= 0, two decimal places
	Currency string
	Category string
	Name     string // original merchant/description text
	Account  string // source institution label
	Notes    string
	Source   string // producing site label
}
