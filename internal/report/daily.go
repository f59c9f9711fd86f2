package report

import (
	"sort"

	"resto-backend/internal/domain"
)

// DailyReport is the per-date bucket of payment aggregation.
//
// Payments with a method other than cash or card land in neither method
// column but still count toward TotalAmount and TotalCount. Payment status is
// not consulted: pending and cancelled payments are summed like completed
// ones. Both are deliberate policy, not gaps.
type DailyReport struct {
	Date        string
	CashTotal   float64
	CardTotal   float64
	CashCount   int
	CardCount   int
	TotalAmount float64
	TotalCount  int
	CardShare   float64
}

// ReportSummary is the cross-bucket footer: the elementwise sum of every
// bucket, which by construction equals aggregating the flat payment list.
type ReportSummary struct {
	CashTotal   float64
	CardTotal   float64
	CashCount   int
	CardCount   int
	TotalAmount float64
	TotalCount  int
}

// Aggregate buckets payments by calendar date, newest date first.
// Lexicographic order on the YYYY-MM-DD strings is date order.
func Aggregate(payments []domain.Payment) []DailyReport {
	buckets := make(map[string]*DailyReport)
	dates := make([]string, 0)
	for _, p := range payments {
		b, ok := buckets[p.Date]
		if !ok {
			b = &DailyReport{Date: p.Date}
			buckets[p.Date] = b
			dates = append(dates, p.Date)
		}
		switch p.Method {
		case domain.MethodCash:
			b.CashTotal += p.Amount
			b.CashCount++
		case domain.MethodCard:
			b.CardTotal += p.Amount
			b.CardCount++
		}
		b.TotalAmount += p.Amount
		b.TotalCount++
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	out := make([]DailyReport, 0, len(dates))
	for _, d := range dates {
		b := *buckets[d]
		b.CardShare = round2(Share(b.CardTotal, b.TotalAmount))
		out = append(out, b)
	}
	return out
}

// Summarize folds bucket reports into the footer totals.
func Summarize(reports []DailyReport) ReportSummary {
	var s ReportSummary
	for _, r := range reports {
		s.CashTotal += r.CashTotal
		s.CardTotal += r.CardTotal
		s.CashCount += r.CashCount
		s.CardCount += r.CardCount
		s.TotalAmount += r.TotalAmount
		s.TotalCount += r.TotalCount
	}
	return s
}

// TodayReport recomputes the live snapshot for a single date from scratch.
// A date with no payments yields an all-zero bucket, not an error.
func TodayReport(payments []domain.Payment, today string) DailyReport {
	scoped := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Date == today {
			scoped = append(scoped, p)
		}
	}
	reports := Aggregate(scoped)
	if len(reports) == 0 {
		return DailyReport{Date: today}
	}
	return reports[0]
}
