package registry

import "library-circulation/internal/domain"

// BookRegistry stores books keyed by ID, preserving insertion order.
type BookRegistry interface {
	Add(book *domain.Book) bool
	Get(id string) (*domain.Book, bool)
	List() []*domain.Book
	Len() int
}

// BorrowerRegistry stores borrowers keyed by ID, preserving insertion
// order.
type BorrowerRegistry interface {
	Add(borrower *domain.Borrower) bool
	Get(id string) (*domain.Borrower, bool)
	List() []*domain.Borrower
	Len() int
}

// MemoryStore bundles the registries behind one constructor, the way a
// driver-backed store would bundle its repositories. Entities live only
// for process lifetime. Not safe for concurrent mutation; callers run
// single-threaded.
type MemoryStore struct {
	Books     BookRegistry
	Borrowers BorrowerRegistry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Books:     &bookRegistry{byID: make(map[string]*domain.Book)},
		Borrowers: &borrowerRegistry{byID: make(map[string]*domain.Borrower)},
	}
}

type bookRegistry struct {
	order []string
	byID  map[string]*domain.Book
}

// Add stores the book. False when the ID is already taken; the existing
// entry is kept.
func (r *bookRegistry) Add(book *domain.Book) bool {
	if _, exists := r.byID[book.ID]; exists {
		return false
	}
	r.byID[book.ID] = book
	r.order = append(r.order, book.ID)
	return true
}

func (r *bookRegistry) Get(id string) (*domain.Book, bool) {
	book, ok := r.byID[id]
	return book, ok
}

func (r *bookRegistry) List() []*domain.Book {
	out := make([]*domain.Book, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *bookRegistry) Len() int {
	return len(r.order)
}

type borrowerRegistry struct {
	order []string
	byID  map[string]*domain.Borrower
}

// Add stores the borrower. False when the ID is already taken.
func (r *borrowerRegistry) Add(borrower *domain.Borrower) bool {
	if _, exists := r.byID[borrower.ID]; exists {
		return false
	}
	r.byID[borrower.ID] = borrower
	r.order = append(r.order, borrower.ID)
	return true
}

func (r *borrowerRegistry) Get(id string) (*domain.Borrower, bool) {
	borrower, ok := r.byID[id]
	return borrower, ok
}

func (r *borrowerRegistry) List() []*domain.Borrower {
	out := make([]*domain.Borrower, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *borrowerRegistry) Len() int {
	return len(r.order)
}
