// Package report turns slices of ledger transactions into the three chat
// replies: account balances, recent transactions, and an expense summary.
// Everything here is a pure function so reports are testable without a
// database.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KrisKind75/ai-accounting-app/internal/core"
)

// RecentLimit caps the recent-transactions report.
const RecentLimit = 5

// AccountTotal is one aggregated report line.
type AccountTotal struct {
	Account string
	Total   decimal.Decimal
}

// ComputeBalances sums each account's debits minus its credits. Accounts
// that net to zero are dropped; the rest come back sorted by account name.
func ComputeBalances(txs []core.Transaction) []AccountTotal {
	balances := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		balances[tx.DebitAccount] = balances[tx.DebitAccount].Add(tx.Amount)
		balances[tx.CreditAccount] = balances[tx.CreditAccount].Sub(tx.Amount)
	}

	out := make([]AccountTotal, 0, len(balances))
	for account, total := range balances {
		if total.IsZero() {
			continue
		}
		out = append(out, AccountTotal{Account: account, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out
}

// Balances renders the balance report. Positive balances display as DR,
// the rest as CR, amounts always as absolute values.
func Balances(txs []core.Transaction) string {
	var b strings.Builder
	b.WriteString("**Account Balances:**\n")
	for _, bal := range ComputeBalances(txs) {
		side := "CR"
		if bal.Total.IsPositive() {
			side = "DR"
		}
		fmt.Fprintf(&b, "%s: $%s %s\n", bal.Account, bal.Total.Abs().StringFixed(2), side)
	}
	return b.String()
}

// Recent renders up to RecentLimit transactions, newest first. The
// description is cut to 30 runes and always followed by "...", even when it
// was already short; replies depend on that exact shape.
func Recent(txs []core.Transaction) string {
	sorted := make([]core.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}

	var b strings.Builder
	b.WriteString("**Recent Transactions:**\n")
	for _, tx := range sorted {
		fmt.Fprintf(&b, "%s: %s... $%s\n",
			tx.Date.Format("01/02"),
			truncate(tx.Description, 30),
			tx.Amount.StringFixed(2))
	}
	return b.String()
}

// ComputeExpenseTotals sums expense-account debits per account, ordered by
// total descending (account name breaks ties).
func ComputeExpenseTotals(txs []core.Transaction) ([]AccountTotal, decimal.Decimal) {
	perAccount := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, tx := range txs {
		if !strings.HasPrefix(tx.DebitAccount, core.ExpensePrefix) {
			continue
		}
		perAccount[tx.DebitAccount] = perAccount[tx.DebitAccount].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	out := make([]AccountTotal, 0, len(perAccount))
	for account, sum := range perAccount {
		out = append(out, AccountTotal{Account: account, Total: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Account < out[j].Account
	})
	return out, total
}

// ExpenseSummary renders per-account expense totals plus a trailing grand
// total.
func ExpenseSummary(txs []core.Transaction) string {
	totals, grand := ComputeExpenseTotals(txs)

	var b strings.Builder
	b.WriteString("**Expense Summary:**\n")
	for _, at := range totals {
		fmt.Fprintf(&b, "%s: $%s\n", at.Account, at.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n**Total Expenses: $%s**", grand.StringFixed(2))
	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
