package category

import (
	"context"
	"regexp"
	"strings"
)

// rule matches a lower-cased merchant name by substring keywords or an
// optional pattern. First matching rule wins.
type rule struct {
	category string
	keywords []string
	pattern  *regexp.Regexp
}

// rules is an ordered priority list. Income and transfer keywords come
// before merchant keywords so that, e.g., "Salary ACME" never falls
// through to a shopping match, and "uber eats" is checked before "uber".
// The order is a frozen contract: reordering changes classifications.
var rules = []rule{
	{category: Income, keywords: []string{"salary", "payroll", "wages", "pension", "dividend", "stipend"}},
	{category: Transfers, keywords: []string{"transfer", "top-up", "top up", "revolut user", "exchanged to"},
		pattern: regexp.MustCompile(`^(to|from) [a-z]`)},
	{category: CashWithdrawal, keywords: []string{"cash withdrawal", "cash at"},
		pattern: regexp.MustCompile(`\batm\b`)},
	{category: Fees, keywords: []string{"commission", "service charge"},
		pattern: regexp.MustCompile(`\bfees?\b`)},
	{category: Groceries, keywords: []string{"conad", "coop", "lidl", "aldi", "carrefour", "esselunga",
		"tesco", "sainsbury", "eurospin", "supermarket", "supermercato", "grocery", "groceries"}},
	{category: Restaurants, keywords: []string{"uber eats", "deliveroo", "just eat", "glovo", "restaurant",
		"ristorante", "pizzeria", "trattoria", "osteria", "mcdonald", "burger", "kebab", "sushi",
		"cafe", "caffe", "coffee", "starbucks", "bakery", "bistro"}},
	{category: Transport, keywords: []string{"uber", "lyft", "bolt", "taxi", "trenitalia", "italo",
		"flixbus", "metro", "bus ", "railway", "parking", "autostrade", "shell", "esso", "q8", "fuel"}},
	{category: Travel, keywords: []string{"ryanair", "easyjet", "wizz", "vueling", "lufthansa",
		"booking.com", "airbnb", "hotel", "hostel", "expedia", "flight"}},
	{category: Entertainment, keywords: []string{"netflix", "spotify", "disney", "cinema",
		"steam", "playstation", "nintendo", "xbox", "twitch", "concert", "theatre"}},
	{category: Bills, keywords: []string{"enel", "vodafone", "telecom", "tim ", "fastweb", "iliad",
		"electricity", "utility", "insurance", "bolletta", "luce e gas", "internet"}},
	{category: Housing, keywords: []string{"affitto", "mortgage", "landlord", "condominio"},
		pattern: regexp.MustCompile(`\brent\b`)},
	{category: Health, keywords: []string{"farmacia", "pharmacy", "doctor", "dental", "hospital",
		"clinic", "medical", "gym", "palestra"}},
	{category: Shopping, keywords: []string{"amazon", "zalando", "ebay", "aliexpress", "ikea", "zara",
		"h&m", "decathlon", "mediaworld", "apple store", "shop", "store"}},
}

// Heuristic is the rule-based fallback strategy. It is pure and
// deterministic: no I/O, same input always yields the same category.
type Heuristic struct{}

// Categorize returns the category for a single merchant name, or Other
// when no rule matches.
func (Heuristic) Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
		if r.pattern != nil && r.pattern.MatchString(lower) {
			return r.category
		}
	}
	return Other
}

// ClassifyInto implements Classifier over the rule list. It never fails.
func (h Heuristic) ClassifyInto(_ context.Context, names []string, m *Map) error {
	for _, name := range names {
		m.Set(name, h.Categorize(name))
	}
	return nil
}
