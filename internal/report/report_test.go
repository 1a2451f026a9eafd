package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrisKind75/ai-accounting-app/internal/core"
)

func tx(id int64, date time.Time, desc, debit, credit string, amount string) core.Transaction {
	return core.Transaction{
		ID:            id,
		Date:          date,
		Description:   desc,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        decimal.RequireFromString(amount),
	}
}

func TestBalancesEmptyLedger(t *testing.T) {
	assert.Equal(t, "**Account Balances:**\n", Balances(nil))
}

func TestBalancesSingleExpense(t *testing.T) {
	txs := []core.Transaction{
		tx(1, time.Now(), "I spent $45 on groceries", core.ExpensesFood, core.AccountCash, "45"),
	}
	got := Balances(txs)
	assert.Contains(t, got, "Expenses:Food: $45.00 DR\n")
	assert.Contains(t, got, "Assets:Cash: $45.00 CR\n")
}

func TestBalancesSuppressesZeroAndSorts(t *testing.T) {
	now := time.Now()
	txs := []core.Transaction{
		tx(1, now, "a", "Expenses:Food", "Assets:Cash", "10"),
		// Round trip through Assets:Bank nets it to zero.
		tx(2, now, "b", "Assets:Bank", "Revenue:Sales", "50"),
		tx(3, now, "c", "Expenses:Transport", "Assets:Bank", "50"),
	}
	got := Balances(txs)
	assert.NotContains(t, got, "Assets:Bank")

	lines := strings.Split(strings.TrimSpace(got), "\n")[1:]
	require.True(t, sortedAscending(lines), "lines not sorted: %v", lines)
}

func sortedAscending(lines []string) bool {
	for i := 1; i < len(lines); i++ {
		if lines[i] < lines[i-1] {
			return false
		}
	}
	return true
}

func TestRecentCapsAtFiveNewestFirst(t *testing.T) {
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	var txs []core.Transaction
	for i := 0; i < 9; i++ {
		txs = append(txs, tx(int64(i+1), base.AddDate(0, 0, i), "day", core.ExpensesGeneral, core.AccountCash, "1"))
	}

	got := Recent(txs)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 1+RecentLimit)
	// Newest is June 9, then backwards.
	assert.True(t, strings.HasPrefix(lines[1], "06/09:"), "got %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "06/05:"), "got %q", lines[5])
}

func TestRecentTruncatesUnconditionally(t *testing.T) {
	date := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	long := strings.Repeat("x", 40)
	txs := []core.Transaction{
		tx(1, date, long, core.ExpensesGeneral, core.AccountCash, "12.5"),
		tx(2, date, "short", core.ExpensesGeneral, core.AccountCash, "3"),
	}

	got := Recent(txs)
	assert.Contains(t, got, strings.Repeat("x", 30)+"... $12.50")
	assert.NotContains(t, got, strings.Repeat("x", 31))
	// The ellipsis marker is appended even to short descriptions.
	assert.Contains(t, got, "short... $3.00")
}

func TestExpenseSummaryTotalsMatch(t *testing.T) {
	now := time.Now()
	txs := []core.Transaction{
		tx(1, now, "groceries", core.ExpensesFood, core.AccountCash, "45.25"),
		tx(2, now, "taxi", core.ExpensesTransport, core.AccountCash, "20"),
		tx(3, now, "coffee", core.ExpensesFood, core.AccountCash, "4.75"),
		tx(4, now, "pay", core.AccountBank, core.AccountSales, "5000"),
	}

	totals, grand := ComputeExpenseTotals(txs)
	require.Len(t, totals, 2)

	sum := decimal.Zero
	for _, at := range totals {
		sum = sum.Add(at.Total)
	}
	assert.True(t, grand.Equal(sum), "grand %s != sum %s", grand, sum)
	assert.True(t, grand.Equal(decimal.RequireFromString("70")))

	// Ordered by total descending: Food 50.00 before Transport 20.00.
	assert.Equal(t, core.ExpensesFood, totals[0].Account)

	rendered := ExpenseSummary(txs)
	assert.Contains(t, rendered, "Expenses:Food: $50.00\n")
	assert.Contains(t, rendered, "Expenses:Transport: $20.00\n")
	assert.True(t, strings.HasSuffix(rendered, "**Total Expenses: $70.00**"))
}

func TestExpenseSummaryEmpty(t *testing.T) {
	got := ExpenseSummary(nil)
	assert.Equal(t, "**Expense Summary:**\n\n**Total Expenses: $0.00**", got)
}
