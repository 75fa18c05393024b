package bitfield

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implementations must be safe for concurrent use, since reads may run from
// several goroutines.
type MetricsCollector interface {
	// RecordAdd is called after each metadata-only registration.
	// err is nil if successful.
	RecordAdd(err error)

	// RecordInsert is called after each insert. width is the requested field
	// width, err is nil if successful.
	RecordInsert(width uint32, err error)

	// RecordGet is called after each field lookup. found is false when no
	// field is registered at the requested position.
	RecordGet(found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(error)            {}
func (NoopMetricsCollector) RecordInsert(uint32, error) {}
func (NoopMetricsCollector) RecordGet(bool)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount     atomic.Int64
	AddErrors    atomic.Int64
	InsertCount  atomic.Int64
	InsertErrors atomic.Int64
	InsertBits   atomic.Int64
	GetCount     atomic.Int64
	GetMisses    atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(err error) {
	b.AddCount.Add(1)
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(width uint32, err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	b.InsertBits.Add(int64(width))
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(found bool) {
	b.GetCount.Add(1)
	if !found {
		b.GetMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:     b.AddCount.Load(),
		AddErrors:    b.AddErrors.Load(),
		InsertCount:  b.InsertCount.Load(),
		InsertErrors: b.InsertErrors.Load(),
		InsertBits:   b.InsertBits.Load(),
		GetCount:     b.GetCount.Load(),
		GetMisses:    b.GetMisses.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount     int64
	AddErrors    int64
	InsertCount  int64
	InsertErrors int64
	InsertBits   int64
	GetCount     int64
	GetMisses    int64
}
