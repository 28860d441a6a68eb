package invoice

import "fmt"

// CounterKey returns the per-year counter document key. The key changes
// every calendar year, so sequence numbering restarts implicitly while
// old-year counters are retained.
func CounterKey(year int) string {
	return fmt.Sprintf("invoice-%d", year)
}

// FormatReceiptNumber renders the human-readable receipt number.
// Supports up to 9,999,999 invoices per year within the padded width;
// beyond that the number simply grows wider and stays unique.
func FormatReceiptNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%07d", year, seq)
}
