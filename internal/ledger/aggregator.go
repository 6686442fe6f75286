package ledger

import (
	"github.com/shopspring/decimal"

	"rent-ledger-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Aggregate totals a set of records. Only paid records count as collected;
// pending and overdue both remain outstanding. An empty or zero-valued set
// yields a collection rate of 0.
func Aggregate(records []domain.RentRecord) domain.CollectionSummary {
	expected := decimal.Zero
	collected := decimal.Zero
	for _, r := range records {
		expected = expected.Add(r.Amount)
		if r.Status == domain.RentStatusPaid {
			collected = collected.Add(r.Amount)
		}
	}

	summary := domain.CollectionSummary{
		Expected:    expected,
		Collected:   collected,
		Pending:     expected.Sub(collected),
		RecordCount: len(records),
	}
	if expected.IsPositive() {
		summary.CollectionRate = collected.Mul(hundred).Div(expected).InexactFloat64()
	}
	return summary
}
