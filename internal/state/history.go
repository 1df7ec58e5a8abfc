package state

// DefaultRetention is the default number of samples retained per entity.
const DefaultRetention = 60

// History stores bounded per-entity sample series using ring buffers.
// Insertion is append-at-end; eviction is remove-oldest, so the buffer is
// always in chronological order for sparkline rendering.
type History struct {
	size   int
	series map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker retaining size samples per entity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultRetention
	}
	return &History{
		size:   size,
		series: make(map[string]*ringBuffer),
	}
}

// Push appends a sample for the given entity, evicting the oldest sample
// once the retention bound is reached.
func (h *History) Push(id string, value float64) {
	buf, ok := h.series[id]
	if !ok {
		buf = newRingBuffer(h.size)
		h.series[id] = buf
	}
	buf.push(value)
}

// Last returns up to count most recent samples in chronological order
// (oldest first). Returns fewer values if not enough history exists.
func (h *History) Last(id string, count int) []float64 {
	buf, ok := h.series[id]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// All returns every stored sample for the entity in chronological order.
func (h *History) All(id string) []float64 {
	buf, ok := h.series[id]
	if !ok {
		return nil
	}
	return buf.getLast(buf.count)
}

// Count returns the number of samples stored for the entity.
func (h *History) Count(id string) int {
	buf, ok := h.series[id]
	if !ok {
		return 0
	}
	return buf.count
}

// Retention returns the per-entity sample bound.
func (h *History) Retention() int {
	return h.size
}

// Clear removes all history for the given entity.
func (h *History) Clear(id string) {
	delete(h.series, id)
}

// newRingBuffer creates a ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1; we want count values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
