package arena

// SizeInUse returns the number of bytes consumed so far, including
// internal padding inserted for alignment.
func (a *Arena) SizeInUse() int {
	return int(a.offset)
}

// Capacity returns the total size of the backing buffer in bytes.
// Zero after Release.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available before the
// arena is exhausted, ignoring any padding a future allocation may
// need.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.offset)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to
// 1.0). Returns 0.0 for a released arena.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently consumed, padding included
	Capacity    int     // Fixed buffer size in bytes
	Remaining   int     // Bytes left before exhaustion
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
