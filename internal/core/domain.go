package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentExpense Intent = "EXPENSE"
	IntentIncome  Intent = "INCOME"
	IntentQuery   Intent = "QUERY"
	IntentUnknown Intent = "UNKNOWN"
)

type (
	// Transaction is the single persisted entity: one immutable ledger row
	// with a debit side and a credit side. Rows are appended, never updated.
	Transaction struct {
		ID            int64
		Date          time.Time
		Description   string
		DebitAccount  string
		CreditAccount string
		Amount        decimal.Decimal
		AICategorized bool
	}
)

var (
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrEmptyDebit     = errors.New("empty debit account")
	ErrEmptyCredit    = errors.New("empty credit account")
	ErrAmountNotFound = errors.New("no amount found in text")
)

// Validate rejects non-positive amounts and blank account names before they
// reach storage. Debit and credit being equal is deliberately not checked;
// the recording handlers never produce that shape and stored history from
// older deployments must keep loading.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.DebitAccount) == "" {
		return ErrEmptyDebit
	}
	if strings.TrimSpace(t.CreditAccount) == "" {
		return ErrEmptyCredit
	}
	return nil
}
