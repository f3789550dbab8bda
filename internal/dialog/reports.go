package dialog

import (
	"context"
	"fmt"
	"log"

	"factory-backend/internal/metrics"
	"factory-backend/internal/models"
	"factory-backend/internal/report"
	"factory-backend/internal/session"
	"factory-backend/internal/timeutil"
)

// snapshot fetches entries and accounts once; report generation never
// re-queries mid-computation.
func (m *Machine) snapshot(ctx context.Context) ([]*models.ProductionEntry, []*models.Account, error) {
	entries, err := m.store.ListEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := m.store.ListAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return entries, accounts, nil
}

// dailyReport renders today's breakdown as chunked text plus a workbook.
func (m *Machine) dailyReport(ctx context.Context) (session.Flow, []Reply, error) {
	entries, accounts, err := m.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := timeutil.Now()
	r := report.BuildDaily(entries, accounts, now)
	if r.Empty() {
		return nil, nil, &ReportError{Msg: msgNoDataToday}
	}

	replies := textReplies(r.RenderDaily())

	book, err := report.Workbook(r.DailyTables())
	if err != nil {
		log.Printf("[Dialog] daily workbook generation failed: %v", err)
		replies = append(replies, Reply{Text: msgExportFailed})
	} else {
		replies = append(replies, Reply{Document: &Document{
			Name:  fmt.Sprintf("daily_report_%s.xlsx", now.Format(timeutil.DateLayout)),
			Bytes: book,
		}})
	}

	metrics.ReportsGenerated.WithLabelValues("daily").Inc()
	return nil, replies, nil
}

// monthlyReport renders the current month as chunked text plus a workbook.
func (m *Machine) monthlyReport(ctx context.Context) (session.Flow, []Reply, error) {
	entries, accounts, err := m.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := timeutil.Now()
	r := report.BuildMonthly(entries, accounts, now)
	if r.Empty() {
		return nil, nil, &ReportError{Msg: msgNoDataThisMonth}
	}

	replies := textReplies(r.RenderMonthly())

	book, err := report.Workbook(r.MonthlyTables())
	if err != nil {
		log.Printf("[Dialog] monthly workbook generation failed: %v", err)
		replies = append(replies, Reply{Text: msgExportFailed})
	} else {
		replies = append(replies, Reply{Document: &Document{
			Name:  fmt.Sprintf("production_%s.xlsx", now.Format("2006-01")),
			Bytes: book,
		}})
	}

	metrics.ReportsGenerated.WithLabelValues("monthly").Inc()
	return nil, replies, nil
}

func textReplies(text string) []Reply {
	chunks := report.ChunkText(text, report.MaxChunk)
	replies := make([]Reply, 0, len(chunks)+1)
	for _, c := range chunks {
		replies = append(replies, Reply{Text: c})
	}
	return replies
}
