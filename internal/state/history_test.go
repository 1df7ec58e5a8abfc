package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryPushAndAll(t *testing.T) {
	h := NewHistory(5)

	h.Push("atlas", 10)
	h.Push("atlas", 20)
	h.Push("atlas", 30)

	assert.Equal(t, []float64{10, 20, 30}, h.All("atlas"))
	assert.Equal(t, 3, h.Count("atlas"))
}

func TestHistoryBoundedAtRetention(t *testing.T) {
	h := NewHistory(5)

	for i := 0; i < 12; i++ {
		h.Push("atlas", float64(i))
	}

	got := h.All("atlas")
	assert.Len(t, got, 5)
	// Oldest entries are evicted first.
	assert.Equal(t, []float64{7, 8, 9, 10, 11}, got)
}

func TestHistoryLast(t *testing.T) {
	h := NewHistory(10)

	for i := 0; i < 6; i++ {
		h.Push("atlas", float64(i))
	}

	assert.Equal(t, []float64{4, 5}, h.Last("atlas", 2))
	// Asking for more than recorded returns everything.
	assert.Len(t, h.Last("atlas", 100), 6)
}

func TestHistorySeriesAreIndependent(t *testing.T) {
	h := NewHistory(5)

	h.Push("atlas", 1)
	h.Push("borealis", 2)

	assert.Equal(t, []float64{1}, h.All("atlas"))
	assert.Equal(t, []float64{2}, h.All("borealis"))
	assert.Empty(t, h.All("unknown"))
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(5)

	h.Push("atlas", 1)
	h.Push("borealis", 2)
	h.Clear("atlas")

	assert.Empty(t, h.All("atlas"))
	assert.Equal(t, []float64{2}, h.All("borealis"))
}
