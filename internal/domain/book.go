package domain

import (
	"strings"
	"time"
)

type BookKind string

const (
	BookKindPhysical BookKind = "PHYSICAL"
	BookKindDigital  BookKind = "DIGITAL"
)

// LoanDays returns the allowed loan duration in days for this kind.
// Unknown kinds get 0, which makes every return immediately late rather
// than silently generous.
func (k BookKind) LoanDays() int {
	switch k {
	case BookKindPhysical:
		return 14
	case BookKindDigital:
		return 7
	default:
		return 0
	}
}

// Label returns the human-readable tag for this kind.
func (k BookKind) Label() string {
	switch k {
	case BookKindPhysical:
		return "Physical Book"
	case BookKindDigital:
		return "Digital Book"
	default:
		return string(k)
	}
}

type BookCondition string

const (
	BookConditionGood BookCondition = "GOOD"
	BookConditionFair BookCondition = "FAIR"
	BookConditionPoor BookCondition = "POOR"
)

// Book is a lendable unit. Exactly one borrower may hold it at a time.
// Invariant: LoanedAt is set and HolderID is non-empty exactly when
// Available is false. HolderID is a weak reference; the registry owns
// borrower lifetime.
type Book struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Year      int        `json:"year"`
	Kind      BookKind   `json:"kind"`
	Available bool       `json:"available"`
	LoanedAt  *time.Time `json:"loaned_at,omitempty"`
	HolderID  string     `json:"holder_id,omitempty"`

	// Physical copies only
	Shelf     string        `json:"shelf,omitempty"`
	Condition BookCondition `json:"condition,omitempty"`
	Pages     int           `json:"pages,omitempty"`

	// Digital copies only
	Format    string  `json:"format,omitempty"`
	SizeMB    float64 `json:"size_mb,omitempty"`
	Downloads int     `json:"downloads,omitempty"`
}

// NewPhysicalBook creates an available physical book.
func NewPhysicalBook(id, title, author string, year int, shelf string, condition BookCondition, pages int) *Book {
	return &Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Year:      year,
		Kind:      BookKindPhysical,
		Available: true,
		Shelf:     shelf,
		Condition: condition,
		Pages:     pages,
	}
}

// NewDigitalBook creates an available digital book. The format tag is
// normalized to upper case so device compatibility checks stay exact.
func NewDigitalBook(id, title, author string, year int, format string, sizeMB float64) *Book {
	return &Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Year:      year,
		Kind:      BookKindDigital,
		Available: true,
		Format:    strings.ToUpper(format),
		SizeMB:    sizeMB,
	}
}

// Lend puts the book on loan to the given holder at the given time.
// Returns false without mutating anything if the book is already on loan.
func (b *Book) Lend(holderID string, at time.Time) bool {
	if !b.Available {
		return false
	}
	loanedAt := at
	b.Available = false
	b.LoanedAt = &loanedAt
	b.HolderID = holderID
	return true
}

// Return closes the current loan at the given time and reports how many
// whole days past the allowed duration the book was held, together with
// the holder that had it. A book that is not on loan reports (0, "")
// and stays untouched.
func (b *Book) Return(at time.Time) (daysLate int, holderID string) {
	if b.Available {
		return 0, ""
	}
	daysLate = b.DaysLate(at)
	holderID = b.HolderID
	b.Available = true
	b.LoanedAt = nil
	b.HolderID = ""
	return daysLate, holderID
}

// DaysOnLoan reports whole days elapsed since the loan started, 0 when
// the book is available.
func (b *Book) DaysOnLoan(at time.Time) int {
	if b.Available || b.LoanedAt == nil {
		return 0
	}
	days := int(at.Sub(*b.LoanedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DaysLate reports days on loan beyond the kind's allowed duration,
// floored at zero.
func (b *Book) DaysLate(at time.Time) int {
	late := b.DaysOnLoan(at) - b.Kind.LoanDays()
	if late < 0 {
		return 0
	}
	return late
}

// Relocate moves a physical book to a new shelf. False for digital books.
func (b *Book) Relocate(shelf string) bool {
	if b.Kind != BookKindPhysical {
		return false
	}
	b.Shelf = shelf
	return true
}

// UpdateCondition records a new condition grade for a physical book.
func (b *Book) UpdateCondition(c BookCondition) bool {
	if b.Kind != BookKindPhysical {
		return false
	}
	b.Condition = c
	return true
}

// NeedsRepair is true for physical books graded FAIR or POOR.
func (b *Book) NeedsRepair() bool {
	if b.Kind != BookKindPhysical {
		return false
	}
	return b.Condition == BookConditionFair || b.Condition == BookConditionPoor
}

// RecordDownload increments the download counter of a digital book.
// False for physical books.
func (b *Book) RecordDownload() bool {
	if b.Kind != BookKindDigital {
		return false
	}
	b.Downloads++
	return true
}

// DownloadStats summarizes a digital book's download activity.
type DownloadStats struct {
	Total      int     `json:"total"`
	Format     string  `json:"format"`
	SizeMB     float64 `json:"size_mb"`
	Popularity string  `json:"popularity"`
}

// DownloadStats returns the download summary for a digital book; the
// zero value for anything else.
func (b *Book) DownloadStats() DownloadStats {
	if b.Kind != BookKindDigital {
		return DownloadStats{}
	}
	popularity := "Low"
	switch {
	case b.Downloads > 50:
		popularity = "High"
	case b.Downloads > 10:
		popularity = "Medium"
	}
	return DownloadStats{
		Total:      b.Downloads,
		Format:     b.Format,
		SizeMB:     b.SizeMB,
		Popularity: popularity,
	}
}

// deviceFormats maps a reading device to the formats it accepts.
var deviceFormats = map[string][]string{
	"kindle":   {"MOBI", "AZW", "PDF"},
	"tablet":   {"PDF", "EPUB", "MOBI"},
	"ereader":  {"EPUB", "PDF"},
	"computer": {"PDF", "EPUB", "MOBI", "TXT"},
}

// SupportsDevice reports whether a digital book's format is readable on
// the given device. Unknown devices and physical books get false.
func (b *Book) SupportsDevice(device string) bool {
	if b.Kind != BookKindDigital {
		return false
	}
	for _, format := range deviceFormats[strings.ToLower(device)] {
		if format == b.Format {
			return true
		}
	}
	return false
}
