// Package core holds the ledger domain types and amount parsing.
//
// Amount extraction intentionally mirrors the behaviour downstream replies
// and reports were built around: the first numeric substring wins, even when
// the text contains several numbers. Do not widen the pattern.
package core

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches an optional $ sign followed by digits and an
// optional decimal fraction: "$25", "25.50", "100".
var amountPattern = regexp.MustCompile(`\$?(\d+\.?\d*)`)

// ExtractAmount pulls the first monetary value out of free text. Multiple
// numbers in the text is a documented limitation, not an error: only the
// first match is used. Returns ErrAmountNotFound when no numeric pattern
// exists.
func ExtractAmount(text string) (decimal.Decimal, error) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, ErrAmountNotFound
	}
	// The pattern admits a trailing dot ("25."), which the decimal parser
	// does not.
	d, err := decimal.NewFromString(strings.TrimSuffix(m[1], "."))
	if err != nil {
		return decimal.Decimal{}, ErrAmountNotFound
	}
	return d, nil
}
