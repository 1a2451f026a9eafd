// Package classify decides what a user message is asking for: record an
// expense, record income, or answer a query. Two classifiers exist, a
// model-backed one and a keyword fallback, and callers are expected to chain
// them.
package classify

import (
	"strings"

	"github.com/KrisKind75/ai-accounting-app/internal/core"
)

var (
	expenseTriggers = []string{"bought", "paid", "spent"}
	incomeTriggers  = []string{"received", "earned", "got paid"}
	queryTriggers   = []string{"show", "what", "how much", "balance"}
)

// Keyword classifies text by case-insensitive substring match against fixed
// trigger lists. It is the fallback path when no model is available and must
// stay deterministic.
func Keyword(text string) core.Intent {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, expenseTriggers):
		return core.IntentExpense
	case containsAny(lower, incomeTriggers):
		return core.IntentIncome
	case containsAny(lower, queryTriggers):
		return core.IntentQuery
	default:
		return core.IntentUnknown
	}
}

// categoryRules are checked in order; the first hit wins.
var categoryRules = []struct {
	words   []string
	account string
}{
	{[]string{"food", "lunch", "dinner", "coffee"}, core.ExpensesFood},
	{[]string{"gas", "uber", "taxi", "parking"}, core.ExpensesTransport},
}

// CategorizeExpense maps expense text to an expense account. Unmatched text
// falls through to Expenses:General.
func CategorizeExpense(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if containsAny(lower, rule.words) {
			return rule.account
		}
	}
	return core.ExpensesGeneral
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
