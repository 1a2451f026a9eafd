package events

import (
	"encoding/json"
	"time"

	"github.com/KrisKind75/ai-accounting-app/internal/core"
)

// TransactionRecorded is the wire message emitted after each ledger insert.
// The amount travels as its fixed two-decimal string so consumers never see
// float drift.
type TransactionRecorded struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	DebitAccount  string    `json:"debit_account"`
	CreditAccount string    `json:"credit_account"`
	Amount        string    `json:"amount"`
	AICategorized bool      `json:"ai_categorized"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionRecorded(tx core.Transaction) *TransactionRecorded {
	return &TransactionRecorded{
		ID:            tx.ID,
		Date:          tx.Date,
		Description:   tx.Description,
		DebitAccount:  tx.DebitAccount,
		CreditAccount: tx.CreditAccount,
		Amount:        tx.Amount.StringFixed(2),
		AICategorized: tx.AICategorized,
		Timestamp:     time.Now(),
	}
}

func (m *TransactionRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionRecordedFromJSON(data []byte) (*TransactionRecorded, error) {
	var msg TransactionRecorded
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
