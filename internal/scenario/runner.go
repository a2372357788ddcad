package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-circulation/internal/domain"
	"library-circulation/internal/logger"
	"library-circulation/internal/service"
)

// Report tallies what happened during a scenario run. Domain denials
// (a refused loan, a return of a book not held) are counted, not
// errored; only malformed steps abort a run.
type Report struct {
	Scenario            string            `json:"scenario"`
	Steps               int               `json:"steps"`
	DaysSimulated       int               `json:"days_simulated"`
	LoansGranted        int               `json:"loans_granted"`
	LoansDenied         int               `json:"loans_denied"`
	Returns             int               `json:"returns"`
	FinesAccruedCents   int64             `json:"fines_accrued_cents"`
	FinesPaidCents      int64             `json:"fines_paid_cents"`
	AcquisitionRequests []string          `json:"acquisition_requests,omitempty"`
	Balances            []BorrowerBalance `json:"balances"`
}

// BorrowerBalance is a borrower's final account line in the report.
type BorrowerBalance struct {
	BorrowerID string `json:"borrower_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	HeldCount  int    `json:"held_count"`
	FineCents  int64  `json:"fine_cents"`
	CanBorrow  bool   `json:"can_borrow"`
}

// Runner executes scenario steps against a library on a virtual clock.
type Runner struct {
	library *service.Library
	clock   *Clock
}

// NewRunner creates a runner. The library must have been constructed
// with the same clock's Now so lend and return timestamps track the
// scenario's virtual days.
func NewRunner(library *service.Library, clock *Clock) *Runner {
	return &Runner{library: library, clock: clock}
}

// Run executes every step in order and returns the tally. An error
// means a malformed step (unknown kind or condition), not a domain
// denial.
func (r *Runner) Run(s *Scenario) (*Report, error) {
	log := logger.WithComponent("scenario")
	log.Info("Running scenario", "name", s.Name, "steps", len(s.Steps))

	report := &Report{Scenario: s.Name, Steps: len(s.Steps)}

	for i, step := range s.Steps {
		if err := r.runStep(step, report); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	report.DaysSimulated = r.clock.Days()
	for _, u := range r.library.Borrowers() {
		summary := u.Summary()
		report.Balances = append(report.Balances, BorrowerBalance{
			BorrowerID: summary.ID,
			Name:       summary.Name,
			Kind:       summary.Kind,
			HeldCount:  summary.HeldCount,
			FineCents:  summary.FineCents,
			CanBorrow:  summary.CanBorrow,
		})
	}

	log.Info("Scenario finished",
		"name", s.Name,
		"days", report.DaysSimulated,
		"loans_granted", report.LoansGranted,
		"loans_denied", report.LoansDenied,
		"fines_accrued_cents", report.FinesAccruedCents)
	return report, nil
}

func (r *Runner) runStep(step Step, report *Report) error {
	switch {
	case step.RegisterBorrower != nil:
		borrower, err := buildBorrower(step.RegisterBorrower, r.library.Now())
		if err != nil {
			return err
		}
		r.library.RegisterBorrower(borrower)

	case step.AddBook != nil:
		book, err := buildBook(step.AddBook)
		if err != nil {
			return err
		}
		r.library.AddBook(book)

	case step.Lend != nil:
		if r.library.Lend(step.Lend.BookID, step.Lend.BorrowerID) {
			report.LoansGranted++
		} else {
			report.LoansDenied++
		}

	case step.Return != nil:
		fine := r.library.Return(step.Return.BookID, step.Return.BorrowerID)
		report.Returns++
		report.FinesAccruedCents += fine

	case step.PayFine != nil:
		before, ok := r.library.Borrower(step.PayFine.BorrowerID)
		if !ok {
			break
		}
		owed := before.FineCents
		remaining, _ := r.library.PayFine(step.PayFine.BorrowerID, step.PayFine.Cents)
		report.FinesPaidCents += owed - remaining

	case step.AdvanceDays != nil:
		r.clock.Advance(*step.AdvanceDays)

	case step.RequestAcquisition != nil:
		if id, ok := r.library.RequestAcquisition(step.RequestAcquisition.BorrowerID, step.RequestAcquisition.Title); ok {
			report.AcquisitionRequests = append(report.AcquisitionRequests, id)
		}

	case step.Relocate != nil:
		if book, ok := r.library.Book(step.Relocate.BookID); ok {
			book.Relocate(step.Relocate.Shelf)
		}

	case step.UpdateCondition != nil:
		condition, err := parseCondition(step.UpdateCondition.Condition)
		if err != nil {
			return err
		}
		if book, ok := r.library.Book(step.UpdateCondition.BookID); ok {
			book.UpdateCondition(condition)
		}

	case step.RecordDownload != nil:
		if book, ok := r.library.Book(step.RecordDownload.BookID); ok {
			book.RecordDownload()
		}
	}
	return nil
}

func buildBook(spec *BookSpec) (*domain.Book, error) {
	switch strings.ToLower(spec.Kind) {
	case "physical":
		condition := domain.BookConditionGood
		if spec.Condition != "" {
			var err error
			if condition, err = parseCondition(spec.Condition); err != nil {
				return nil, err
			}
		}
		return domain.NewPhysicalBook(spec.ID, spec.Title, spec.Author, spec.Year, spec.Shelf, condition, spec.Pages), nil
	case "digital":
		return domain.NewDigitalBook(spec.ID, spec.Title, spec.Author, spec.Year, spec.Format, spec.SizeMB), nil
	default:
		return nil, fmt.Errorf("unknown book kind %q", spec.Kind)
	}
}

func buildBorrower(spec *BorrowerSpec, registeredAt time.Time) (*domain.Borrower, error) {
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	switch strings.ToLower(spec.Kind) {
	case "student":
		return domain.NewStudent(id, spec.Name, spec.Email, registeredAt, spec.Program, spec.Semester), nil
	case "faculty":
		return domain.NewFaculty(id, spec.Name, spec.Email, registeredAt, spec.Department, spec.Title), nil
	default:
		return nil, fmt.Errorf("unknown borrower kind %q", spec.Kind)
	}
}

func parseCondition(s string) (domain.BookCondition, error) {
	switch strings.ToUpper(s) {
	case "GOOD":
		return domain.BookConditionGood, nil
	case "FAIR":
		return domain.BookConditionFair, nil
	case "POOR":
		return domain.BookConditionPoor, nil
	default:
		return "", fmt.Errorf("unknown book condition %q", s)
	}
}
