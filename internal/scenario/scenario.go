package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named sequence of steps executed against a fresh
// library. Steps run in order on a virtual clock; days only pass
// through explicit advance_days steps, which is how deterministic
// "returned after N days" situations are written down.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step sets exactly one action. Parse rejects steps that set none or
// more than one.
type Step struct {
	RegisterBorrower   *BorrowerSpec    `yaml:"register_borrower,omitempty"`
	AddBook            *BookSpec        `yaml:"add_book,omitempty"`
	Lend               *LendAction      `yaml:"lend,omitempty"`
	Return             *ReturnAction    `yaml:"return,omitempty"`
	PayFine            *PayFineAction   `yaml:"pay_fine,omitempty"`
	AdvanceDays        *int             `yaml:"advance_days,omitempty"`
	RequestAcquisition *AcquireAction   `yaml:"request_acquisition,omitempty"`
	Relocate           *RelocateAction  `yaml:"relocate,omitempty"`
	UpdateCondition    *ConditionAction `yaml:"update_condition,omitempty"`
	RecordDownload     *DownloadAction  `yaml:"record_download,omitempty"`
}

// BookSpec describes a book to add. Kind is "physical" or "digital";
// an empty ID lets the library mint one.
type BookSpec struct {
	ID        string  `yaml:"id"`
	Kind      string  `yaml:"kind"`
	Title     string  `yaml:"title"`
	Author    string  `yaml:"author"`
	Year      int     `yaml:"year"`
	Shelf     string  `yaml:"shelf"`
	Condition string  `yaml:"condition"`
	Pages     int     `yaml:"pages"`
	Format    string  `yaml:"format"`
	SizeMB    float64 `yaml:"size_mb"`
}

// BorrowerSpec describes a borrower to register. Kind is "student" or
// "faculty"; an empty ID gets a generated one.
type BorrowerSpec struct {
	ID         string `yaml:"id"`
	Kind       string `yaml:"kind"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Program    string `yaml:"program"`
	Semester   int    `yaml:"semester"`
	Department string `yaml:"department"`
	Title      string `yaml:"title"`
}

type LendAction struct {
	BookID     string `yaml:"book_id"`
	BorrowerID string `yaml:"borrower_id"`
}

type ReturnAction struct {
	BookID     string `yaml:"book_id"`
	BorrowerID string `yaml:"borrower_id"`
}

type PayFineAction struct {
	BorrowerID string `yaml:"borrower_id"`
	Cents      int64  `yaml:"cents"`
}

type AcquireAction struct {
	BorrowerID string `yaml:"borrower_id"`
	Title      string `yaml:"title"`
}

type RelocateAction struct {
	BookID string `yaml:"book_id"`
	Shelf  string `yaml:"shelf"`
}

type ConditionAction struct {
	BookID    string `yaml:"book_id"`
	Condition string `yaml:"condition"`
}

type DownloadAction struct {
	BookID string `yaml:"book_id"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML and validates its shape.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario has no name")
	}
	for i, step := range s.Steps {
		if n := step.actionCount(); n != 1 {
			return nil, fmt.Errorf("step %d sets %d actions, want exactly 1", i+1, n)
		}
	}
	return &s, nil
}

func (s *Step) actionCount() int {
	n := 0
	for _, set := range []bool{
		s.RegisterBorrower != nil,
		s.AddBook != nil,
		s.Lend != nil,
		s.Return != nil,
		s.PayFine != nil,
		s.AdvanceDays != nil,
		s.RequestAcquisition != nil,
		s.Relocate != nil,
		s.UpdateCondition != nil,
		s.RecordDownload != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// TotalDays sums the scenario's advance_days steps, the span of its
// virtual timeline.
func (s *Scenario) TotalDays() int {
	total := 0
	for _, step := range s.Steps {
		if step.AdvanceDays != nil {
			total += *step.AdvanceDays
		}
	}
	return total
}
