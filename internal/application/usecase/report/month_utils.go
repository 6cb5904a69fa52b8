// Package report contains reporting and aggregation use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// MonthNames is the fixed January-December sequence every monthly
// aggregation is zipped against. Index 0 is January.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthBuckets holds one year of expenses bucketed by calendar month.
// Both aggregations share this so totals and counts can never drift out of
// alignment with MonthNames.
type monthBuckets struct {
	totals [12]decimal.Decimal
	counts [12]int
}

// bucketByMonth folds dated amounts into 12 month buckets. Empty months keep
// a zero total and zero count rather than being skipped.
func bucketByMonth(rows []adapter.DatedAmount) monthBuckets {
	var b monthBuckets
	for i := range b.totals {
		b.totals[i] = decimal.Zero
	}
	for _, row := range rows {
		idx := int(row.Date.Month()) - 1
		b.totals[idx] = b.totals[idx].Add(row.Amount)
		b.counts[idx]++
	}
	return b
}
