// Package category assigns spending categories to merchant names, either
// through ordered keyword rules or a remote text classifier.
package category

import "context"

// Category names, in taxonomy order.
const (
	Groceries      = "Groceries"
	Restaurants    = "Restaurants"
	Transport      = "Transport"
	Shopping       = "Shopping"
	Entertainment  = "Entertainment"
	Bills          = "Bills"
	Housing        = "Housing"
	Health         = "Health"
	Travel         = "Travel"
	CashWithdrawal = "Cash Withdrawal"
	Transfers      = "Transfers"
	Income         = "Income"
	Fees           = "Fees"
	Other          = "Other"
)

// Taxonomy is the fixed category set, in the order presented to the
// classifier and to users.
var Taxonomy = []string{
	Groceries, Restaurants, Transport, Shopping, Entertainment, Bills,
	Housing, Health, Travel, CashWithdrawal, Transfers, Income, Fees, Other,
}

// InTaxonomy reports whether name is one of the fixed categories.
func InTaxonomy(name string) bool {
	for _, c := range Taxonomy {
		if c == name {
			return true
		}
	}
	return false
}

// Classifier is the contract shared by both categorization strategies:
// resolve a set of merchant names and merge the results into a Map. The
// heuristic never fails; the remote strategy may return an error after
// merging the batches that completed.
type Classifier interface {
	ClassifyInto(ctx context.Context, names []string, m *Map) error
}
