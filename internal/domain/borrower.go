package domain

import "time"

type BorrowerKind string

const (
	BorrowerKindStudent BorrowerKind = "STUDENT"
	BorrowerKindFaculty BorrowerKind = "FACULTY"
)

// LoanLimit returns how many books this kind of borrower may hold at once.
func (k BorrowerKind) LoanLimit() int {
	switch k {
	case BorrowerKindStudent:
		return 3
	case BorrowerKindFaculty:
		return 10
	default:
		return 0
	}
}

// FineRateCents returns the fine per day late, in cents.
func (k BorrowerKind) FineRateCents() int64 {
	switch k {
	case BorrowerKindStudent:
		return 50
	case BorrowerKindFaculty:
		return 100
	default:
		return 0
	}
}

// Label returns the human-readable tag for this kind.
func (k BorrowerKind) Label() string {
	switch k {
	case BorrowerKindStudent:
		return "Student"
	case BorrowerKindFaculty:
		return "Faculty"
	default:
		return string(k)
	}
}

// LoanRecord is one entry in a borrower's history. It is created open
// when the loan starts and closed exactly once by the matching return;
// a closed record is never reopened.
type LoanRecord struct {
	BookID     string     `json:"book_id"`
	Title      string     `json:"title"`
	Kind       BookKind   `json:"kind"`
	LoanedAt   time.Time  `json:"loaned_at"`
	Returned   bool       `json:"returned"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	DaysLate   int        `json:"days_late"`
}

// Borrower holds books subject to a kind-specific loan limit and fine
// policy. Held book IDs are weak references; the registry owns book
// lifetime. The fine balance never goes negative: it only grows through
// late returns and only shrinks through PayFine.
type Borrower struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	RegisteredAt time.Time    `json:"registered_at"`
	Kind         BorrowerKind `json:"kind"`
	FineCents    int64        `json:"fine_cents"`

	// Students only
	Program  string `json:"program,omitempty"`
	Semester int    `json:"semester,omitempty"`

	// Faculty only
	Department    string `json:"department,omitempty"`
	AcademicTitle string `json:"academic_title,omitempty"`

	heldIDs []string
	history []LoanRecord
}

// NewStudent creates a student borrower with no loans and no fines.
func NewStudent(id, name, email string, registeredAt time.Time, program string, semester int) *Borrower {
	return &Borrower{
		ID:           id,
		Name:         name,
		Email:        email,
		RegisteredAt: registeredAt,
		Kind:         BorrowerKindStudent,
		Program:      program,
		Semester:     semester,
	}
}

// NewFaculty creates a faculty borrower with no loans and no fines.
func NewFaculty(id, name, email string, registeredAt time.Time, department, academicTitle string) *Borrower {
	return &Borrower{
		ID:            id,
		Name:          name,
		Email:         email,
		RegisteredAt:  registeredAt,
		Kind:          BorrowerKindFaculty,
		Department:    department,
		AcademicTitle: academicTitle,
	}
}

// CanBorrow is true when the borrower is under the loan limit AND owes
// nothing. A single outstanding cent blocks further borrowing.
func (u *Borrower) CanBorrow() bool {
	return len(u.heldIDs) < u.Kind.LoanLimit() && u.FineCents == 0
}

// Borrow takes the book on loan at the given time. Eligibility is
// checked before touching the book, so an ineligible borrower never
// mutates book state. On success the book joins the held set and an
// open loan record is appended.
func (u *Borrower) Borrow(b *Book, at time.Time) bool {
	if !u.CanBorrow() {
		return false
	}
	if !b.Lend(u.ID, at) {
		return false
	}
	u.heldIDs = append(u.heldIDs, b.ID)
	u.history = append(u.history, LoanRecord{
		BookID:   b.ID,
		Title:    b.Title,
		Kind:     b.Kind,
		LoanedAt: at,
	})
	return true
}

// ReturnBook gives the book back at the given time and returns the fine
// accrued by this return, in cents (0 when on time). Returning a book
// this borrower does not hold is a no-op with zero fine. The newest
// open record for the book is closed with the return timestamp and
// days-late value.
func (u *Borrower) ReturnBook(b *Book, at time.Time) int64 {
	if !u.Holds(b.ID) {
		return 0
	}

	daysLate, _ := b.Return(at)
	u.removeHeld(b.ID)

	for i := len(u.history) - 1; i >= 0; i-- {
		record := &u.history[i]
		if record.BookID == b.ID && !record.Returned {
			returnedAt := at
			record.Returned = true
			record.ReturnedAt = &returnedAt
			record.DaysLate = daysLate
			break
		}
	}

	if daysLate <= 0 {
		return 0
	}
	fine := int64(daysLate) * u.Kind.FineRateCents()
	u.FineCents += fine
	return fine
}

// PayFine reduces the fine balance by the given amount and returns the
// remaining balance. Non-positive amounts are ignored. Overpayment is
// absorbed: the balance floors at zero and no change is returned.
func (u *Borrower) PayFine(cents int64) int64 {
	if cents <= 0 {
		return u.FineCents
	}
	u.FineCents -= cents
	if u.FineCents < 0 {
		u.FineCents = 0
	}
	return u.FineCents
}

// Holds reports whether the borrower currently holds the given book.
func (u *Borrower) Holds(bookID string) bool {
	for _, id := range u.heldIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// HeldCount returns how many books the borrower currently holds.
func (u *Borrower) HeldCount() int {
	return len(u.heldIDs)
}

// HeldIDs returns a copy of the held book IDs in borrow order.
func (u *Borrower) HeldIDs() []string {
	out := make([]string, len(u.heldIDs))
	copy(out, u.heldIDs)
	return out
}

// History returns a copy of the loan history, oldest first.
func (u *Borrower) History() []LoanRecord {
	out := make([]LoanRecord, len(u.history))
	copy(out, u.history)
	return out
}

func (u *Borrower) removeHeld(bookID string) {
	for i, id := range u.heldIDs {
		if id == bookID {
			u.heldIDs = append(u.heldIDs[:i], u.heldIDs[i+1:]...)
			return
		}
	}
}

// BorrowerSummary is a point-in-time snapshot of a borrower's account.
type BorrowerSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	HeldCount  int    `json:"held_count"`
	LoanLimit  int    `json:"loan_limit"`
	TotalLoans int    `json:"total_loans"`
	FineCents  int64  `json:"fine_cents"`
	CanBorrow  bool   `json:"can_borrow"`
}

// Summary returns the borrower's account snapshot.
func (u *Borrower) Summary() BorrowerSummary {
	return BorrowerSummary{
		ID:         u.ID,
		Name:       u.Name,
		Kind:       u.Kind.Label(),
		HeldCount:  len(u.heldIDs),
		LoanLimit:  u.Kind.LoanLimit(),
		TotalLoans: len(u.history),
		FineCents:  u.FineCents,
		CanBorrow:  u.CanBorrow(),
	}
}

// AdvanceSemester moves a student one semester forward. False for
// non-students.
func (u *Borrower) AdvanceSemester() bool {
	if u.Kind != BorrowerKindStudent {
		return false
	}
	u.Semester++
	return true
}

// ChangeProgram switches a student to a new program.
func (u *Borrower) ChangeProgram(program string) bool {
	if u.Kind != BorrowerKindStudent {
		return false
	}
	u.Program = program
	return true
}

// ChangeDepartment moves a faculty borrower to a new department.
func (u *Borrower) ChangeDepartment(department string) bool {
	if u.Kind != BorrowerKindFaculty {
		return false
	}
	u.Department = department
	return true
}
