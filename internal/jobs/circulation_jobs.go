package jobs

import (
	"time"

	"library-circulation/internal/domain"
	"library-circulation/internal/logger"
)

// CirculationRow describes one on-loan book in a circulation report.
type CirculationRow struct {
	BookID     string
	Title      string
	Kind       domain.BookKind
	HolderID   string
	DaysOnLoan int
	DaysLate   int
}

// BuildCirculationReport collects one row per on-loan book, evaluated
// at the given time. Available books are skipped.
func BuildCirculationReport(books []*domain.Book, at time.Time) []CirculationRow {
	var rows []CirculationRow
	for _, b := range books {
		if b.Available {
			continue
		}
		rows = append(rows, CirculationRow{
			BookID:     b.ID,
			Title:      b.Title,
			Kind:       b.Kind,
			HolderID:   b.HolderID,
			DaysOnLoan: b.DaysOnLoan(at),
			DaysLate:   b.DaysLate(at),
		})
	}
	return rows
}

// CirculationReport logs every book currently on loan with its holder,
// days out, and days late
func (jr *JobRunner) CirculationReport() {
	jr.runWithRecovery("CirculationReport", func() {
		now := jr.library.Now()
		rows := BuildCirculationReport(jr.library.Books(), now)

		overdue := 0
		for _, row := range rows {
			if row.DaysLate > 0 {
				overdue++
			}
			logger.Debug("Book on loan",
				"book_id", row.BookID,
				"title", row.Title,
				"kind", row.Kind,
				"holder_id", row.HolderID,
				"days_on_loan", row.DaysOnLoan,
				"days_late", row.DaysLate)
		}

		logger.Info("Circulation report", "on_loan", len(rows), "overdue", overdue)
	})
}

// FineSummary logs each borrower's held count, fine balance, and
// borrow eligibility
func (jr *JobRunner) FineSummary() {
	jr.runWithRecovery("FineSummary", func() {
		borrowers := jr.library.Borrowers()

		var owedCents int64
		blocked := 0
		for _, u := range borrowers {
			summary := u.Summary()
			owedCents += summary.FineCents
			if !summary.CanBorrow {
				blocked++
			}
			logger.Debug("Borrower account",
				"borrower_id", summary.ID,
				"name", summary.Name,
				"kind", summary.Kind,
				"held", summary.HeldCount,
				"loan_limit", summary.LoanLimit,
				"fine_cents", summary.FineCents,
				"can_borrow", summary.CanBorrow)
		}

		logger.Info("Fine summary",
			"borrowers", len(borrowers),
			"blocked", blocked,
			"owed_cents", owedCents)
	})
}
