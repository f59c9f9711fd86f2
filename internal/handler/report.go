package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"resto-backend/internal/domain"
	"resto-backend/internal/report"
	"resto-backend/internal/store"
)

type ReportHandler struct {
	Store store.PaymentStore
}

func (h ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/daily", h.daily)
	r.Get("/reports/today", h.today)
	r.Get("/reports/export", h.export)
}

// daily serves the date-bucketed payment report, newest first, with the
// cross-bucket footer the report screen renders below the table. Optional
// startDate/endDate narrow the payment window before bucketing.
func (h ReportHandler) daily(w http.ResponseWriter, r *http.Request) {
	reports, err := h.loadReports(w, r)
	if reports == nil || err != nil {
		return
	}
	summary := report.Summarize(reports)

	resp := make([]map[string]any, 0, len(reports))
	for _, b := range reports {
		resp = append(resp, toReportResponse(b))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reports": resp,
		"summary": map[string]any{
			"cashTotal":   summary.CashTotal,
			"cardTotal":   summary.CardTotal,
			"cashCount":   summary.CashCount,
			"cardCount":   summary.CardCount,
			"totalAmount": summary.TotalAmount,
			"totalCount":  summary.TotalCount,
		},
	})
}

func (h ReportHandler) today(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	today := report.TodayReport(payments, time.Now().Format(dateLayout))
	writeJSON(w, http.StatusOK, toReportResponse(today))
}

func (h ReportHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	reports, err := h.loadReports(w, r)
	if reports == nil || err != nil {
		return
	}

	filenameSuffix := time.Now().Format("20060102_150405")
	switch format {
	case "csv":
		data, err := exportReportsCSV(reports)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"daily_reports_%s.csv\"", filenameSuffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportReportsXLSX(reports)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"daily_reports_%s.xlsx\"", filenameSuffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

// loadReports reads payments, applies the optional date window and buckets
// them. On failure it writes the error response and returns nil.
func (h ReportHandler) loadReports(w http.ResponseWriter, r *http.Request) ([]report.DailyReport, error) {
	startDate, err := parseDateQuery(r, "startDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate")
		return nil, err
	}
	endDate, err := parseDateQuery(r, "endDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate")
		return nil, err
	}
	if startDate != "" && endDate != "" && startDate > endDate {
		writeError(w, http.StatusBadRequest, "startDate must be before endDate")
		return nil, fmt.Errorf("bad range")
	}

	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return nil, err
	}
	if startDate != "" || endDate != "" {
		scoped := make([]domain.Payment, 0, len(payments))
		for _, p := range payments {
			if startDate != "" && p.Date < startDate {
				continue
			}
			if endDate != "" && p.Date > endDate {
				continue
			}
			scoped = append(scoped, p)
		}
		payments = scoped
	}
	reports := report.Aggregate(payments)
	if reports == nil {
		reports = []report.DailyReport{}
	}
	return reports, nil
}

func toReportResponse(b report.DailyReport) map[string]any {
	return map[string]any{
		"date":        b.Date,
		"cashTotal":   b.CashTotal,
		"cardTotal":   b.CardTotal,
		"cashCount":   b.CashCount,
		"cardCount":   b.CardCount,
		"totalAmount": b.TotalAmount,
		"totalCount":  b.TotalCount,
		"cardShare":   b.CardShare,
	}
}

func exportReportsCSV(reports []report.DailyReport) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"date", "cash_total", "card_total", "cash_count", "card_count", "total_amount", "total_count", "card_share"})
	for _, b := range reports {
		_ = w.Write([]string{
			b.Date,
			strconv.FormatFloat(b.CashTotal, 'f', 2, 64),
			strconv.FormatFloat(b.CardTotal, 'f', 2, 64),
			strconv.Itoa(b.CashCount),
			strconv.Itoa(b.CardCount),
			strconv.FormatFloat(b.TotalAmount, 'f', 2, 64),
			strconv.Itoa(b.TotalCount),
			strconv.FormatFloat(b.CardShare, 'f', 2, 64),
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportReportsXLSX(reports []report.DailyReport) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Daily Reports"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"Date", "Cash Total", "Card Total", "Cash Count", "Card Count", "Total Amount", "Total Count", "Card Share %"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, b := range reports {
		row := r + 2
		values := []any{b.Date, b.CashTotal, b.CardTotal, b.CashCount, b.CardCount, b.TotalAmount, b.TotalCount, b.CardShare}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "H", 14)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "H1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
