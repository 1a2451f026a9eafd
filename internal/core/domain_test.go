package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validTransaction() Transaction {
	return Transaction{
		Date:          time.Now(),
		Description:   "I spent $45 on groceries",
		DebitAccount:  ExpensesFood,
		CreditAccount: AccountCash,
		Amount:        decimal.NewFromInt(45),
		AICategorized: true,
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"blank debit", func(tx *Transaction) { tx.DebitAccount = "  " }, ErrEmptyDebit},
		{"blank credit", func(tx *Transaction) { tx.CreditAccount = "" }, ErrEmptyCredit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(&tx)
			if err := tx.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTransactionValidateAllowsEqualSides(t *testing.T) {
	// Permissive on purpose: existing ledgers may contain such rows.
	tx := validTransaction()
	tx.CreditAccount = tx.DebitAccount
	if err := tx.Validate(); err != nil {
		t.Fatalf("equal debit/credit should pass: %v", err)
	}
}
