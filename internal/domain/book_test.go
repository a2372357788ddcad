package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-circulation/internal/domain"
)

var loanStart = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestBookKind_LoanDays(t *testing.T) {
	assert.Equal(t, 14, domain.BookKindPhysical.LoanDays())
	assert.Equal(t, 7, domain.BookKindDigital.LoanDays())
	assert.Equal(t, 0, domain.BookKind("UNKNOWN").LoanDays())
}

func TestBook_Lend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		book := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)

		ok := book.Lend("EST-001", loanStart)

		require.True(t, ok)
		assert.False(t, book.Available)
		assert.Equal(t, "EST-001", book.HolderID)
		require.NotNil(t, book.LoanedAt)
		assert.Equal(t, loanStart, *book.LoanedAt)
	})

	t.Run("Already On Loan", func(t *testing.T) {
		book := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)
		require.True(t, book.Lend("EST-001", loanStart))

		ok := book.Lend("EST-002", loanStart.AddDate(0, 0, 1))

		assert.False(t, ok)
		assert.Equal(t, "EST-001", book.HolderID, "first holder must be kept")
		assert.Equal(t, loanStart, *book.LoanedAt, "first timestamp must be kept")
	})
}

func TestBook_Return(t *testing.T) {
	t.Run("On Time", func(t *testing.T) {
		book := domain.NewDigitalBook("LIB-000002", "Clean Code", "Martin", 2008, "epub", 4.2)
		require.True(t, book.Lend("PROF-001", loanStart))

		daysLate, holderID := book.Return(loanStart.AddDate(0, 0, 5))

		assert.Equal(t, 0, daysLate)
		assert.Equal(t, "PROF-001", holderID)
		assert.True(t, book.Available)
		assert.Nil(t, book.LoanedAt)
		assert.Empty(t, book.HolderID)
	})

	t.Run("Late", func(t *testing.T) {
		book := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)
		require.True(t, book.Lend("EST-001", loanStart))

		daysLate, holderID := book.Return(loanStart.AddDate(0, 0, 20))

		assert.Equal(t, 6, daysLate, "20 days out minus 14 allowed")
		assert.Equal(t, "EST-001", holderID)
	})

	t.Run("Exactly At Allowed Duration", func(t *testing.T) {
		book := domain.NewDigitalBook("LIB-000002", "Clean Code", "Martin", 2008, "epub", 4.2)
		require.True(t, book.Lend("EST-001", loanStart))

		daysLate, _ := book.Return(loanStart.AddDate(0, 0, 7))

		assert.Equal(t, 0, daysLate)
	})

	t.Run("Not On Loan", func(t *testing.T) {
		book := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)

		daysLate, holderID := book.Return(loanStart)

		assert.Equal(t, 0, daysLate)
		assert.Empty(t, holderID)
		assert.True(t, book.Available)
	})
}

func TestBook_DaysOnLoan(t *testing.T) {
	book := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)
	assert.Equal(t, 0, book.DaysOnLoan(loanStart), "available book has no loan age")

	require.True(t, book.Lend("EST-001", loanStart))
	assert.Equal(t, 0, book.DaysOnLoan(loanStart))
	assert.Equal(t, 3, book.DaysOnLoan(loanStart.AddDate(0, 0, 3)))
	assert.Equal(t, 0, book.DaysOnLoan(loanStart.AddDate(0, 0, -1)), "clock before loan start floors at zero")
}

func TestBook_PhysicalOperations(t *testing.T) {
	physical := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)
	digital := domain.NewDigitalBook("LIB-000002", "Clean Code", "Martin", 2008, "epub", 4.2)

	t.Run("Relocate", func(t *testing.T) {
		assert.True(t, physical.Relocate("B-07"))
		assert.Equal(t, "B-07", physical.Shelf)
		assert.False(t, digital.Relocate("B-07"))
	})

	t.Run("Condition And Repair", func(t *testing.T) {
		assert.False(t, physical.NeedsRepair())
		assert.True(t, physical.UpdateCondition(domain.BookConditionFair))
		assert.True(t, physical.NeedsRepair())
		assert.True(t, physical.UpdateCondition(domain.BookConditionPoor))
		assert.True(t, physical.NeedsRepair())

		assert.False(t, digital.UpdateCondition(domain.BookConditionPoor))
		assert.False(t, digital.NeedsRepair())
	})
}

func TestBook_DigitalOperations(t *testing.T) {
	t.Run("Downloads And Popularity", func(t *testing.T) {
		book := domain.NewDigitalBook("LIB-000002", "Clean Code", "Martin", 2008, "epub", 4.2)

		assert.Equal(t, "Low", book.DownloadStats().Popularity)

		for i := 0; i < 11; i++ {
			require.True(t, book.RecordDownload())
		}
		stats := book.DownloadStats()
		assert.Equal(t, 11, stats.Total)
		assert.Equal(t, "EPUB", stats.Format)
		assert.Equal(t, "Medium", stats.Popularity)

		for i := 0; i < 40; i++ {
			book.RecordDownload()
		}
		assert.Equal(t, "High", book.DownloadStats().Popularity)
	})

	t.Run("Physical Book Has No Downloads", func(t *testing.T) {
		book := domain.NewPhysicalBook("LIB-000001", "Dune", "Herbert", 1965, "A-01", domain.BookConditionGood, 412)
		assert.False(t, book.RecordDownload())
		assert.Equal(t, domain.DownloadStats{}, book.DownloadStats())
	})

	t.Run("Device Compatibility", func(t *testing.T) {
		epub := domain.NewDigitalBook("LIB-000002", "Clean Code", "Martin", 2008, "epub", 4.2)
		mobi := domain.NewDigitalBook("LIB-000003", "SICP", "Abelson", 1985, "mobi", 2.8)

		assert.True(t, epub.SupportsDevice("tablet"))
		assert.True(t, epub.SupportsDevice("ereader"))
		assert.False(t, epub.SupportsDevice("kindle"))
		assert.True(t, mobi.SupportsDevice("kindle"))
		assert.False(t, mobi.SupportsDevice("ereader"))
		assert.False(t, epub.SupportsDevice("phonograph"))
	})
}
