package validator

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
)

// Concern names used for per-concern metrics.
const (
	ConcernGroup       = "group"
	ConcernChoice      = "choice"
	ConcernTable       = "table"
	ConcernCalculated  = "calculated"
	ConcernReceiver    = "receiver"
	ConcernStructural  = "structural"
	ConcernOrder       = "order"
	ConcernMetadata    = "metadata"
	ConcernSettings    = "settings"
	ConcernLanguage    = "language"
	ConcernTranslation = "translation"
)

// Metrics tracks validation passes using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	passesTotal atomic.Uint64
	passesValid atomic.Uint64

	// Timing (stored as nanoseconds)
	passTimeTotal atomic.Uint64
	passTimeMin   atomic.Uint64
	passTimeMax   atomic.Uint64

	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	concerns sync.Map // map[string]*concernMetrics
}

type concernMetrics struct {
	invocations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	issuesFound atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.passTimeMin.Store(^uint64(0))
	return m
}

// RecordPass records a completed validation pass.
func (m *Metrics) RecordPass(duration time.Duration, errs []issue.ValidationError) {
	m.passesTotal.Add(1)

	errors := issue.CountLevel(errs, issue.LevelError)
	if errors == 0 {
		m.passesValid.Add(1)
	}
	m.errorsTotal.Add(uint64(errors))                                          //nolint:gosec // counts are never negative
	m.warningsTotal.Add(uint64(issue.CountLevel(errs, issue.LevelWarning))) //nolint:gosec // counts are never negative
	m.infosTotal.Add(uint64(issue.CountLevel(errs, issue.LevelInfo)))       //nolint:gosec // counts are never negative

	ns := uint64(duration.Nanoseconds()) //nolint:gosec // durations are never negative
	m.passTimeTotal.Add(ns)
	for {
		old := m.passTimeMin.Load()
		if ns >= old || m.passTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.passTimeMax.Load()
		if ns <= old || m.passTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordConcern records one invocation of a rule concern.
func (m *Metrics) RecordConcern(name string, duration time.Duration, issuesFound int) {
	cm := m.concern(name)
	cm.invocations.Add(1)
	cm.totalTime.Add(uint64(duration.Nanoseconds())) //nolint:gosec // durations are never negative
	cm.issuesFound.Add(uint64(issuesFound))          //nolint:gosec // counts are never negative
}

func (m *Metrics) concern(name string) *concernMetrics {
	if v, ok := m.concerns.Load(name); ok {
		return v.(*concernMetrics)
	}
	actual, _ := m.concerns.LoadOrStore(name, &concernMetrics{})
	return actual.(*concernMetrics)
}

// PassesTotal returns the number of validation passes.
func (m *Metrics) PassesTotal() uint64 {
	return m.passesTotal.Load()
}

// PassesValid returns the number of passes without error-level entries.
func (m *Metrics) PassesValid() uint64 {
	return m.passesValid.Load()
}

// ErrorsTotal returns the total error-level entries found.
func (m *Metrics) ErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// WarningsTotal returns the total warning-level entries found.
func (m *Metrics) WarningsTotal() uint64 {
	return m.warningsTotal.Load()
}

// AveragePassTime returns the average pass duration.
func (m *Metrics) AveragePassTime() time.Duration {
	total := m.passesTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.passTimeTotal.Load() / total) //nolint:gosec // nanoseconds within int64 range
}

// MinPassTime returns the minimum pass duration.
func (m *Metrics) MinPassTime() time.Duration {
	v := m.passTimeMin.Load()
	if v == ^uint64(0) {
		return 0
	}
	return time.Duration(v) //nolint:gosec // nanoseconds within int64 range
}

// MaxPassTime returns the maximum pass duration.
func (m *Metrics) MaxPassTime() time.Duration {
	return time.Duration(m.passTimeMax.Load()) //nolint:gosec // nanoseconds within int64 range
}

// ConcernStats holds the statistics of one rule concern.
type ConcernStats struct {
	Name        string        `json:"name"`
	Invocations uint64        `json:"invocations"`
	TotalTime   time.Duration `json:"total_time"`
	IssuesFound uint64        `json:"issues_found"`
}

// ConcernStats returns statistics for one concern.
func (m *Metrics) ConcernStats(name string) (ConcernStats, bool) {
	v, ok := m.concerns.Load(name)
	if !ok {
		return ConcernStats{Name: name}, false
	}
	return v.(*concernMetrics).stats(name), true
}

// AllConcernStats returns statistics for every concern, sorted by name.
func (m *Metrics) AllConcernStats() []ConcernStats {
	var stats []ConcernStats
	m.concerns.Range(func(key, value any) bool {
		stats = append(stats, value.(*concernMetrics).stats(key.(string)))
		return true
	})
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

func (cm *concernMetrics) stats(name string) ConcernStats {
	return ConcernStats{
		Name:        name,
		Invocations: cm.invocations.Load(),
		TotalTime:   time.Duration(cm.totalTime.Load()), //nolint:gosec // nanoseconds within int64 range
		IssuesFound: cm.issuesFound.Load(),
	}
}

// MetricsSnapshot is a point-in-time copy of all metrics.
type MetricsSnapshot struct {
	Timestamp     time.Time      `json:"timestamp"`
	PassesTotal   uint64         `json:"passes_total"`
	PassesValid   uint64         `json:"passes_valid"`
	AvgPassTimeNs uint64         `json:"avg_pass_time_ns"`
	MinPassTimeNs uint64         `json:"min_pass_time_ns"`
	MaxPassTimeNs uint64         `json:"max_pass_time_ns"`
	ErrorsTotal   uint64         `json:"errors_total"`
	WarningsTotal uint64         `json:"warnings_total"`
	InfosTotal    uint64         `json:"infos_total"`
	Concerns      []ConcernStats `json:"concerns,omitempty"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Timestamp:     time.Now(),
		PassesTotal:   m.passesTotal.Load(),
		PassesValid:   m.passesValid.Load(),
		AvgPassTimeNs: uint64(m.AveragePassTime().Nanoseconds()), //nolint:gosec // durations are never negative
		MinPassTimeNs: uint64(m.MinPassTime().Nanoseconds()),     //nolint:gosec // durations are never negative
		MaxPassTimeNs: m.passTimeMax.Load(),
		ErrorsTotal:   m.errorsTotal.Load(),
		WarningsTotal: m.warningsTotal.Load(),
		InfosTotal:    m.infosTotal.Load(),
		Concerns:      m.AllConcernStats(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.passesTotal.Store(0)
	m.passesValid.Store(0)
	m.passTimeTotal.Store(0)
	m.passTimeMin.Store(^uint64(0))
	m.passTimeMax.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
	m.concerns.Range(func(key, _ any) bool {
		m.concerns.Delete(key)
		return true
	})
}
