package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-circulation/internal/scenario"
)

func TestParse(t *testing.T) {
	t.Run("Valid Scenario", func(t *testing.T) {
		s, err := scenario.Parse([]byte(`
name: smoke
steps:
  - add_book:
      id: LIB-000001
      kind: physical
      title: Dune
  - register_borrower:
      id: EST-001
      kind: student
      name: Ana
  - lend:
      book_id: LIB-000001
      borrower_id: EST-001
  - advance_days: 3
  - return:
      book_id: LIB-000001
      borrower_id: EST-001
`))

		require.NoError(t, err)
		assert.Equal(t, "smoke", s.Name)
		assert.Len(t, s.Steps, 5)
		assert.Equal(t, 3, s.TotalDays())
	})

	t.Run("Missing Name", func(t *testing.T) {
		_, err := scenario.Parse([]byte("steps: []\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("Step With No Action", func(t *testing.T) {
		_, err := scenario.Parse([]byte("name: bad\nsteps:\n  - {}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step 1")
	})

	t.Run("Step With Two Actions", func(t *testing.T) {
		_, err := scenario.Parse([]byte(`
name: bad
steps:
  - advance_days: 1
    lend:
      book_id: LIB-000001
      borrower_id: EST-001
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly 1")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := scenario.Parse([]byte("name: [broken\n"))
		assert.Error(t, err)
	})
}
