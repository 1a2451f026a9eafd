// Package assistant is the conversational front of the ledger: it takes one
// free-text message, decides what the user wants, and returns a plain-text
// reply. Collaborators arrive through the constructor so tests can swap any
// of them out.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KrisKind75/ai-accounting-app/internal/classify"
	"github.com/KrisKind75/ai-accounting-app/internal/core"
	"github.com/KrisKind75/ai-accounting-app/internal/report"
)

// Fixed conversational replies. These are part of the external contract;
// clients and tests match on them verbatim.
const (
	GuidanceReply      = "I can help you record transactions or check balances. Try saying 'I spent $X on Y' or 'Show me my expenses'"
	NoAmountReply      = "I couldn't find an amount. Please include a number like '$25' or '25.50'"
	NoIncomeAmount     = "I couldn't find an amount. Please include a number."
	StorageFailedReply = "Sorry, I couldn't record that right now. Please try again."
	ReportFailedReply  = "Sorry, I couldn't read the ledger right now. Please try again."
)

// Ledger is the storage the assistant records to and reports from.
type Ledger interface {
	Insert(ctx context.Context, tx *core.Transaction) error
	All(ctx context.Context) ([]core.Transaction, error)
	Recent(ctx context.Context, n int) ([]core.Transaction, error)
	Expenses(ctx context.Context) ([]core.Transaction, error)
}

// IntentClassifier is the model-backed classification capability. It is
// optional; when absent the keyword classifier runs alone.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (core.Intent, error)
}

// EventPublisher receives a notification after each successful insert.
type EventPublisher interface {
	PublishRecorded(ctx context.Context, tx core.Transaction) error
}

type Assistant struct {
	ledger Ledger
	model  IntentClassifier
	events EventPublisher
}

// New wires an assistant. model and events may be nil; ledger must not be.
func New(ledger Ledger, model IntentClassifier, events EventPublisher) *Assistant {
	return &Assistant{
		ledger: ledger,
		model:  model,
		events: events,
	}
}

// Handle processes one user message and returns the reply text. Message
// history is deliberately not consulted: every message classifies on its
// own.
func (a *Assistant) Handle(ctx context.Context, text string) string {
	switch a.classifyIntent(ctx, text) {
	case core.IntentExpense:
		return a.recordExpense(ctx, text)
	case core.IntentIncome:
		return a.recordIncome(ctx, text)
	case core.IntentQuery:
		return a.answerQuery(ctx, text)
	default:
		return GuidanceReply
	}
}

// classifyIntent consults the model when one is configured and falls back
// to the keyword classifier on any failure. Model trouble never reaches the
// user.
func (a *Assistant) classifyIntent(ctx context.Context, text string) core.Intent {
	if a.model == nil {
		return classify.Keyword(text)
	}
	intent, err := a.model.Classify(ctx, text)
	if err != nil {
		if !errors.Is(err, classify.ErrModelUnavailable) {
			slog.WarnContext(ctx, "Model classifier failed, using keyword fallback", "error", err)
		}
		return classify.Keyword(text)
	}
	return intent
}

func (a *Assistant) recordExpense(ctx context.Context, text string) string {
	amount, err := core.ExtractAmount(text)
	if err != nil {
		return NoAmountReply
	}

	category := classify.CategorizeExpense(text)
	tx := core.Transaction{
		Date:          time.Now(),
		Description:   text,
		DebitAccount:  category,
		CreditAccount: core.AccountCash,
		Amount:        amount,
		AICategorized: true,
	}
	if err := a.ledger.Insert(ctx, &tx); err != nil {
		slog.ErrorContext(ctx, "Failed to record expense", "error", err)
		return StorageFailedReply
	}
	a.publish(ctx, tx)

	return fmt.Sprintf("✓ Recorded: %s $%s\nDescription: %s", category, amount.StringFixed(2), text)
}

func (a *Assistant) recordIncome(ctx context.Context, text string) string {
	amount, err := core.ExtractAmount(text)
	if err != nil {
		return NoIncomeAmount
	}

	tx := core.Transaction{
		Date:          time.Now(),
		Description:   text,
		DebitAccount:  core.AccountBank,
		CreditAccount: core.AccountSales,
		Amount:        amount,
		AICategorized: true,
	}
	if err := a.ledger.Insert(ctx, &tx); err != nil {
		slog.ErrorContext(ctx, "Failed to record income", "error", err)
		return StorageFailedReply
	}
	a.publish(ctx, tx)

	return fmt.Sprintf("✓ Recorded income: $%s\nDescription: %s", amount.StringFixed(2), text)
}

// answerQuery picks the report from substrings of the question: "balance"
// wins, then "expense", otherwise the recent-transactions default.
func (a *Assistant) answerQuery(ctx context.Context, text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "balance"):
		txs, err := a.ledger.All(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load transactions for balances", "error", err)
			return ReportFailedReply
		}
		return report.Balances(txs)
	case strings.Contains(lower, "expense"):
		txs, err := a.ledger.Expenses(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load expenses", "error", err)
			return ReportFailedReply
		}
		return report.ExpenseSummary(txs)
	default:
		txs, err := a.ledger.Recent(ctx, report.RecentLimit)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load recent transactions", "error", err)
			return ReportFailedReply
		}
		return report.Recent(txs)
	}
}

// publish emits the ledger event when a publisher is configured. The insert
// already succeeded, so failures only get logged.
func (a *Assistant) publish(ctx context.Context, tx core.Transaction) {
	if a.events == nil {
		return
	}
	if err := a.events.PublishRecorded(ctx, tx); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event", "id", tx.ID, "error", err)
	}
}
