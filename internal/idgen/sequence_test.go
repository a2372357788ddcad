package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"library-circulation/internal/idgen"
)

func TestSequence_Next(t *testing.T) {
	seq := idgen.NewSequence("LIB", 6)

	assert.Equal(t, "LIB-000001", seq.Next())
	assert.Equal(t, "LIB-000002", seq.Next())
	assert.Equal(t, "LIB-000003", seq.Next())
}

func TestSequence_Peek(t *testing.T) {
	seq := idgen.NewSequence("SOL", 6)

	assert.Equal(t, "SOL-000001", seq.Peek())
	assert.Equal(t, "SOL-000001", seq.Peek(), "peek must not advance")
	assert.Equal(t, "SOL-000001", seq.Next())
	assert.Equal(t, "SOL-000002", seq.Peek())
}

func TestSequence_Width(t *testing.T) {
	assert.Equal(t, "REQ-001", idgen.NewSequence("REQ", 3).Next())
	assert.Equal(t, "X-000001", idgen.NewSequence("X", 0).Next(), "non-positive width falls back to 6")
}

func TestSequence_InstancesAreIndependent(t *testing.T) {
	a := idgen.NewSequence("LIB", 6)
	b := idgen.NewSequence("LIB", 6)

	a.Next()
	a.Next()

	assert.Equal(t, "LIB-000001", b.Next(), "counters must not be shared")
}
