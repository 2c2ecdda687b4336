// Package transform turns raw Revolut rows into normalized transactions
// and applies the export-time filters.
package transform

import (
	"github.com/revcsv-dev/revcsv/internal/amount"
	"github.com/revcsv-dev/revcsv/internal/category"
	"github.com/revcsv-dev/revcsv/internal/config"
	"github.com/revcsv-dev/revcsv/internal/dates"
	"github.com/revcsv-dev/revcsv/internal/model"
)

// Transform normalizes raw rows. Per row: the completed-only filter is
// applied, the configured date column is normalized (falling back to the
// alternate column when empty), the amount's sign becomes the Type and
// its magnitude the Amount, and the category comes from cats with the
// heuristic as fallback. Labels and empty notes are stamped from set.
func Transform(rows []model.RawRow, set *config.Settings, cats *category.Map) []model.Transaction {
	heuristic := category.Heuristic{}

	var out []model.Transaction
	for _, row := range rows {
		if set.OnlyCompleted && row.Get(model.ColState) != model.StateCompleted {
			continue
		}

		rawDate := row.Get(set.DateField)
		if rawDate == "" {
			rawDate = row.Get(set.AlternateDateField())
		}

		signed := amount.Parse(row.Get(model.ColAmount))
		txType := model.TypeIncome
		if signed.IsNegative() {
			txType = model.TypeExpense
		}

		name := row.Get(model.ColDescription)
		cat, ok := cats.Lookup(name)
		if !ok {
			cat = heuristic.Categorize(name)
		}

		out = append(out, model.Transaction{
			Date:     dates.Normalize(rawDate),
			Type:     txType,
			Amount:   signed.Abs().Round(2),
			Currency: row.Get(model.ColCurrency),
			Category: cat,
			Name:     name,
			Account:  set.Account,
			Notes:    "",
			Source:   set.Website,
		})
	}
	return out
}

// Filter selects the transactions admitted by the type filter. The input
// is never mutated; relative order is preserved.
func Filter(txns []model.Transaction, typeFilter string) []model.Transaction {
	var want model.TxType
	switch typeFilter {
	case config.FilterExpense:
		want = model.TypeExpense
	case config.FilterIncome:
		want = model.TypeIncome
	default:
		return txns
	}

	var out []model.Transaction
	for _, tx := range txns {
		if tx.Type == want {
			out = append(out, tx)
		}
	}
	return out
}

// DistinctNames returns the unique descriptions of txns in first-seen
// order, for batching into the classifier.
func DistinctNames(txns []model.Transaction) []string {
	seen := make(map[string]bool, len(txns))
	var names []string
	for _, tx := range txns {
		if tx.Name == "" || seen[tx.Name] {
			continue
		}
		seen[tx.Name] = true
		names = append(names, tx.Name)
	}
	return names
}

// ApplyCategories re-resolves each transaction's category from the map,
// used after a classifier pass has merged new entries.
func ApplyCategories(txns []model.Transaction, cats *category.Map) {
	for i := range txns {
		if cat, ok := cats.Lookup(txns[i].Name); ok {
			txns[i].Category = cat
		}
	}
}
