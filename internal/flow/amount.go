package flow

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var amountCleaner = strings.NewReplacer("$", "", "€", "", ",", "", "USD", "")

// ParseAmount parses free-text monetary input: currency symbols, thousands
// separators and the literal token USD are stripped, the rest must be a
// positive decimal number. Failures are recoverable user errors.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountCleaner.Replace(strings.TrimSpace(text)))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", text)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", d)
	}
	return d, nil
}
