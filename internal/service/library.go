package service

import (
	"time"

	"library-circulation/internal/domain"
	"library-circulation/internal/idgen"
	"library-circulation/internal/logger"
	"library-circulation/internal/registry"
)

// Library is the circulation coordinator. It owns the registries and
// the ID sequences, resolves identifiers to entities, and routes
// lend/return/payment requests to them. Domain failures surface as
// booleans and zero values, never as errors.
type Library struct {
	store    *registry.MemoryStore
	books    *idgen.Sequence
	requests *idgen.Sequence
	now      func() time.Time
}

// NewLibrary creates a coordinator over the given store. A nil clock
// defaults to time.Now; tests and the scenario runner inject their own.
func NewLibrary(store *registry.MemoryStore, now func() time.Time) *Library {
	if now == nil {
		now = time.Now
	}
	return &Library{
		store:    store,
		books:    idgen.NewSequence("LIB", 6),
		requests: idgen.NewSequence("SOL", 6),
		now:      now,
	}
}

// AddBook registers a book. Books arriving without an ID get one minted
// from the library's sequence. False when the ID is already taken.
func (l *Library) AddBook(b *domain.Book) bool {
	if b.ID == "" {
		b.ID = l.books.Next()
	}
	added := l.store.Books.Add(b)
	if !added {
		logger.Warn("Book ID already registered", "book_id", b.ID)
	}
	return added
}

// RegisterBorrower registers a borrower. False when the ID is already
// taken.
func (l *Library) RegisterBorrower(u *domain.Borrower) bool {
	added := l.store.Borrowers.Add(u)
	if !added {
		logger.Warn("Borrower ID already registered", "borrower_id", u.ID)
	}
	return added
}

// Lend routes a loan request. False when either ID is unknown, the
// borrower is ineligible, or the book is already on loan.
func (l *Library) Lend(bookID, borrowerID string) bool {
	book, ok := l.store.Books.Get(bookID)
	if !ok {
		logger.Debug("Lend for unknown book", "book_id", bookID)
		return false
	}
	borrower, ok := l.store.Borrowers.Get(borrowerID)
	if !ok {
		logger.Debug("Lend for unknown borrower", "borrower_id", borrowerID)
		return false
	}
	return borrower.Borrow(book, l.now())
}

// Return routes a return request and reports the fine accrued in cents.
// Unknown IDs and books the borrower does not hold yield 0.
func (l *Library) Return(bookID, borrowerID string) int64 {
	book, ok := l.store.Books.Get(bookID)
	if !ok {
		return 0
	}
	borrower, ok := l.store.Borrowers.Get(borrowerID)
	if !ok {
		return 0
	}
	return borrower.ReturnBook(book, l.now())
}

// PayFine applies a payment and returns the remaining balance. False
// when the borrower is unknown.
func (l *Library) PayFine(borrowerID string, cents int64) (int64, bool) {
	borrower, ok := l.store.Borrowers.Get(borrowerID)
	if !ok {
		return 0, false
	}
	return borrower.PayFine(cents), true
}

// RequestAcquisition files a specialized-book acquisition request on
// behalf of a faculty borrower and returns the minted request ID. Only
// faculty may file; anyone else gets ("", false).
func (l *Library) RequestAcquisition(borrowerID, title string) (string, bool) {
	borrower, ok := l.store.Borrowers.Get(borrowerID)
	if !ok || borrower.Kind != domain.BorrowerKindFaculty {
		return "", false
	}
	requestID := l.requests.Next()
	logger.Info("Acquisition requested",
		"request_id", requestID,
		"borrower_id", borrowerID,
		"title", title)
	return requestID, true
}

// Book resolves a book by ID.
func (l *Library) Book(id string) (*domain.Book, bool) {
	return l.store.Books.Get(id)
}

// Borrower resolves a borrower by ID.
func (l *Library) Borrower(id string) (*domain.Borrower, bool) {
	return l.store.Borrowers.Get(id)
}

// Books lists all books in registration order.
func (l *Library) Books() []*domain.Book {
	return l.store.Books.List()
}

// Borrowers lists all borrowers in registration order.
func (l *Library) Borrowers() []*domain.Borrower {
	return l.store.Borrowers.List()
}

// Now returns the coordinator's current time.
func (l *Library) Now() time.Time {
	return l.now()
}
