package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReceiptNumber(t *testing.T) {
	assert.Equal(t, "INV-2024-0000001", FormatReceiptNumber(2024, 1))
	assert.Equal(t, "INV-2024-0000042", FormatReceiptNumber(2024, 42))
	assert.Equal(t, "INV-2025-9999999", FormatReceiptNumber(2025, 9999999))
	// Past the padded width the number grows instead of wrapping.
	assert.Equal(t, "INV-2025-10000000", FormatReceiptNumber(2025, 10000000))
}

func TestCounterKeyIsYearScoped(t *testing.T) {
	assert.Equal(t, "invoice-2024", CounterKey(2024))
	assert.NotEqual(t, CounterKey(2024), CounterKey(2025))
}
