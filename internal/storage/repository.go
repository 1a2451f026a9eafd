package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/KrisKind75/ai-accounting-app/internal/core"
)

// ErrStorageUnavailable means no database is configured. Reads degrade to
// empty results elsewhere; writes surface this error.
var ErrStorageUnavailable = errors.New("no storage backend configured")

// SQLiteLedger is the durable append-only transaction store. The embedded
// *sql.DB is a connection pool, so each operation checks a connection out
// and returns it before the call completes; no transaction spans two
// operations.
type SQLiteLedger struct {
	db *sql.DB
}

// NewSQLiteLedger opens (or creates) the database at dbPath and runs the
// schema migrations. Safe to call on every startup.
func NewSQLiteLedger(dbPath string) (*SQLiteLedger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteLedger{db: db}, nil
}

func (l *SQLiteLedger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// dateFormat is fixed-width: fractional seconds are zero-padded to nine
// digits so the stored text sorts chronologically. RFC3339Nano would trim
// trailing zeros and break ORDER BY date ('Z' compares above '.').
const dateFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Insert appends one immutable transaction and fills in its assigned ID.
// The date is normalized to UTC before formatting.
func (l *SQLiteLedger) Insert(ctx context.Context, tx *core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	tx.Date = tx.Date.UTC()

	res, err := l.db.ExecContext(ctx, `
		INSERT INTO transactions (date, description, debit_account, credit_account, amount, ai_categorized)
		VALUES (?, ?, ?, ?, ?, ?)`,
		tx.Date.Format(dateFormat),
		tx.Description,
		tx.DebitAccount,
		tx.CreditAccount,
		tx.Amount.StringFixed(2),
		tx.AICategorized,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted id: %w", err)
	}
	tx.ID = id

	slog.InfoContext(ctx, "Transaction recorded",
		"id", tx.ID,
		"debit", tx.DebitAccount,
		"credit", tx.CreditAccount,
		"amount", tx.Amount.StringFixed(2))

	return nil
}

// All returns every transaction in insertion order. Balance and summary
// aggregation happens in the report package over this slice.
func (l *SQLiteLedger) All(ctx context.Context) ([]core.Transaction, error) {
	return l.queryTransactions(ctx, `
		SELECT id, date, description, debit_account, credit_account, amount, ai_categorized
		FROM transactions
		ORDER BY id ASC`)
}

// Recent returns the n most recent transactions, newest first. Equal dates
// tie-break on id so ordering stays deterministic under the append-only id.
func (l *SQLiteLedger) Recent(ctx context.Context, n int) ([]core.Transaction, error) {
	return l.queryTransactions(ctx, `
		SELECT id, date, description, debit_account, credit_account, amount, ai_categorized
		FROM transactions
		ORDER BY date DESC, id DESC
		LIMIT ?`, n)
}

// Expenses returns transactions debiting an expense account.
func (l *SQLiteLedger) Expenses(ctx context.Context) ([]core.Transaction, error) {
	return l.queryTransactions(ctx, `
		SELECT id, date, description, debit_account, credit_account, amount, ai_categorized
		FROM transactions
		WHERE debit_account LIKE ?
		ORDER BY id ASC`, core.ExpensePrefix+"%")
}

func (l *SQLiteLedger) queryTransactions(ctx context.Context, query string, args ...any) ([]core.Transaction, error) {
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			tx     core.Transaction
			date   string
			amount string
		)
		if err := rows.Scan(&tx.ID, &date, &tx.Description, &tx.DebitAccount, &tx.CreditAccount, &amount, &tx.AICategorized); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if tx.Date, err = time.Parse(dateFormat, date); err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", date, err)
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse transaction amount %q: %w", amount, err)
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// DisabledLedger stands in when no database path is configured: reads come
// back empty, writes fail with ErrStorageUnavailable. The process keeps
// answering chat messages either way.
type DisabledLedger struct{}

func (DisabledLedger) Insert(ctx context.Context, tx *core.Transaction) error {
	return ErrStorageUnavailable
}

func (DisabledLedger) All(ctx context.Context) ([]core.Transaction, error) { return nil, nil }

func (DisabledLedger) Recent(ctx context.Context, n int) ([]core.Transaction, error) {
	return nil, nil
}

func (DisabledLedger) Expenses(ctx context.Context) ([]core.Transaction, error) { return nil, nil }
