package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-backend/internal/domain"
)

func TestAggregate(t *testing.T) {
	payments := []domain.Payment{
		{ID: "p1", Date: "2024-01-15", Method: domain.MethodCash, Amount: 100},
		{ID: "p2", Date: "2024-01-15", Method: domain.MethodCard, Amount: 50},
		{ID: "p3", Date: "2024-01-14", Method: domain.MethodCash, Amount: 30},
	}

	reports := Aggregate(payments)
	require.Len(t, reports, 2)
	assert.Equal(t, "2024-01-15", reports[0].Date)
	assert.Equal(t, "2024-01-14", reports[1].Date)

	day := reports[0]
	assert.InDelta(t, 100, day.CashTotal, 0.001)
	assert.InDelta(t, 50, day.CardTotal, 0.001)
	assert.Equal(t, 1, day.CashCount)
	assert.Equal(t, 1, day.CardCount)
	assert.InDelta(t, 150, day.TotalAmount, 0.001)
	assert.Equal(t, 2, day.TotalCount)
	assert.InDelta(t, 33.33, day.CardShare, 0.001)
}

func TestAggregateUnknownMethod(t *testing.T) {
	payments := []domain.Payment{
		{ID: "p1", Date: "2024-02-01", Method: domain.MethodCash, Amount: 40},
		{ID: "p2", Date: "2024-02-01", Method: domain.PaymentMethod("voucher"), Amount: 25},
	}

	reports := Aggregate(payments)
	require.Len(t, reports, 1)
	day := reports[0]
	// The voucher payment hits neither method column but both totals.
	assert.InDelta(t, 40, day.CashTotal, 0.001)
	assert.InDelta(t, 0, day.CardTotal, 0.001)
	assert.InDelta(t, 65, day.TotalAmount, 0.001)
	assert.Equal(t, 2, day.TotalCount)
}

func TestAggregateSumLaw(t *testing.T) {
	payments := []domain.Payment{
		{Date: "2024-03-01", Method: domain.MethodCash, Amount: 12.5},
		{Date: "2024-03-02", Method: domain.MethodCard, Amount: 7.25},
		{Date: "2024-03-02", Method: domain.PaymentMethod("gift"), Amount: 3},
		{Date: "2024-03-03", Method: domain.MethodCard, Amount: 99.99},
	}

	var flat float64
	for _, p := range payments {
		flat += p.Amount
	}

	summary := Summarize(Aggregate(payments))
	assert.InDelta(t, flat, summary.TotalAmount, 0.001)
	assert.Equal(t, len(payments), summary.TotalCount)
	assert.Equal(t, 1, summary.CashCount)
	assert.Equal(t, 2, summary.CardCount)
}

func TestAggregateAllStatusesCounted(t *testing.T) {
	payments := []domain.Payment{
		{Date: "2024-04-01", Method: domain.MethodCash, Amount: 10, Status: domain.PaymentCompleted},
		{Date: "2024-04-01", Method: domain.MethodCash, Amount: 10, Status: domain.PaymentPending},
		{Date: "2024-04-01", Method: domain.MethodCash, Amount: 10, Status: domain.PaymentCancelled},
	}
	reports := Aggregate(payments)
	require.Len(t, reports, 1)
	assert.InDelta(t, 30, reports[0].TotalAmount, 0.001)
}

func TestAggregateZeroTotalShare(t *testing.T) {
	payments := []domain.Payment{
		{Date: "2024-05-01", Method: domain.MethodCash, Amount: 0},
	}
	reports := Aggregate(payments)
	require.Len(t, reports, 1)
	assert.Equal(t, 0.0, reports[0].CardShare)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Equal(t, ReportSummary{}, Summarize(nil))
}

func TestTodayReport(t *testing.T) {
	payments := []domain.Payment{
		{Date: "2024-01-15", Method: domain.MethodCard, Amount: 50},
		{Date: "2024-01-14", Method: domain.MethodCash, Amount: 30},
	}

	t.Run("scoped to the given date", func(t *testing.T) {
		today := TodayReport(payments, "2024-01-15")
		assert.Equal(t, "2024-01-15", today.Date)
		assert.InDelta(t, 50, today.TotalAmount, 0.001)
		assert.Equal(t, 0, today.CashCount)
	})

	t.Run("no payments yet", func(t *testing.T) {
		today := TodayReport(payments, "2024-01-16")
		assert.Equal(t, DailyReport{Date: "2024-01-16"}, today)
	})
}
