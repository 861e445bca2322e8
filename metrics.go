package glovego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting pipeline metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordVocabBuild is called after a vocabulary build pass.
	// words is the finalized vocabulary size, duration is the total time
	// taken, err is nil if successful.
	RecordVocabBuild(words int, duration time.Duration, err error)

	// RecordIngest is called after a co-occurrence accumulation pass.
	// records is the number of records appended during the pass.
	RecordIngest(records int, duration time.Duration, err error)

	// RecordEpoch is called after each completed training epoch.
	RecordEpoch(epoch, records int, duration time.Duration)

	// RecordExport is called after each artifact export.
	RecordExport(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordVocabBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIngest(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordEpoch(int, int, time.Duration)        {}
func (NoopMetricsCollector) RecordExport(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	VocabBuildCount  atomic.Int64
	VocabBuildErrors atomic.Int64
	VocabWords       atomic.Int64
	IngestCount      atomic.Int64
	IngestErrors     atomic.Int64
	IngestRecords    atomic.Int64
	EpochCount       atomic.Int64
	EpochTotalNanos  atomic.Int64
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
}

// RecordVocabBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordVocabBuild(words int, duration time.Duration, err error) {
	b.VocabBuildCount.Add(1)
	b.VocabWords.Store(int64(words))
	if err != nil {
		b.VocabBuildErrors.Add(1)
	}
}

// RecordIngest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIngest(records int, duration time.Duration, err error) {
	b.IngestCount.Add(1)
	b.IngestRecords.Add(int64(records))
	if err != nil {
		b.IngestErrors.Add(1)
	}
}

// RecordEpoch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEpoch(epoch, records int, duration time.Duration) {
	b.EpochCount.Add(1)
	b.EpochTotalNanos.Add(duration.Nanoseconds())
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(duration time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		VocabBuildCount:  b.VocabBuildCount.Load(),
		VocabBuildErrors: b.VocabBuildErrors.Load(),
		VocabWords:       b.VocabWords.Load(),
		IngestCount:      b.IngestCount.Load(),
		IngestErrors:     b.IngestErrors.Load(),
		IngestRecords:    b.IngestRecords.Load(),
		EpochCount:       b.EpochCount.Load(),
		EpochAvgNanos:    b.getAvgEpochNanos(),
		ExportCount:      b.ExportCount.Load(),
		ExportErrors:     b.ExportErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgEpochNanos() int64 {
	count := b.EpochCount.Load()
	if count == 0 {
		return 0
	}
	return b.EpochTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	VocabBuildCount  int64
	VocabBuildErrors int64
	VocabWords       int64
	IngestCount      int64
	IngestErrors     int64
	IngestRecords    int64
	EpochCount       int64
	EpochAvgNanos    int64
	ExportCount      int64
	ExportErrors     int64
}
