// Package util provides logging, error formatting, prompts and
// performance tracking shared by the fliphash commands.
package util

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// PerfEnabled indicates if performance tracking is enabled
var PerfEnabled bool

// PerfMetric represents the accumulated timings of one operation
type PerfMetric struct {
	Name      string
	Duration  time.Duration
	Count     int64
	TotalTime time.Duration
}

// PerfTracker tracks timings and counters
type PerfTracker struct {
	mu       sync.RWMutex
	metrics  map[string]*PerfMetric
	started  time.Time
	counters map[string]*int64
}

var (
	globalPerf     *PerfTracker
	globalPerfOnce sync.Once
)

// newPerfTracker returns an empty tracker
func newPerfTracker() *PerfTracker {
	return &PerfTracker{
		metrics:  make(map[string]*PerfMetric),
		started:  time.Now(),
		counters: make(map[string]*int64),
	}
}

// GetPerfTracker returns the global performance tracker
func GetPerfTracker() *PerfTracker {
	globalPerfOnce.Do(func() {
		globalPerf = newPerfTracker()
	})
	return globalPerf
}

// Timer represents an active timing operation
type Timer struct {
	name    string
	start   time.Time
	tracker *PerfTracker
}

// StartTimer starts a timer on the global tracker. It returns nil when
// tracking is disabled; a nil Timer is safe to stop.
func StartTimer(name string) *Timer {
	if !PerfEnabled {
		return nil
	}
	return &Timer{
		name:    name,
		start:   time.Now(),
		tracker: GetPerfTracker(),
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop() time.Duration {
	if t == nil {
		return 0
	}
	duration := time.Since(t.start)
	t.tracker.Record(t.name, duration)
	return duration
}

// StopAndLog stops the timer and logs the duration
func (t *Timer) StopAndLog() time.Duration {
	if t == nil {
		return 0
	}
	duration := t.Stop()
	Debugf("[PERF] %s took %v", t.name, duration)
	return duration
}

// Record records a metric with the given name and duration
func (pt *PerfTracker) Record(name string, duration time.Duration) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	metric, exists := pt.metrics[name]
	if !exists {
		metric = &PerfMetric{Name: name}
		pt.metrics[name] = metric
	}

	metric.Count++
	metric.TotalTime += duration
	metric.Duration = duration
}

// AddCounter adds delta to a named counter
func (pt *PerfTracker) AddCounter(name string, delta int64) {
	pt.mu.Lock()
	counter, exists := pt.counters[name]
	if !exists {
		var c int64
		counter = &c
		pt.counters[name] = counter
	}
	pt.mu.Unlock()

	atomic.AddInt64(counter, delta)
}

// GetCounter returns the current value of a counter
func (pt *PerfTracker) GetCounter(name string) int64 {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	counter, exists := pt.counters[name]
	if !exists {
		return 0
	}
	return atomic.LoadInt64(counter)
}

var (
	perfTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	perfMetricStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1D3"))

	perfValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	perfSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#636E72"))
)

// WriteReport writes timings (slowest first) and counters to w
func (pt *PerfTracker) WriteReport(w io.Writer) {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	var report strings.Builder
	report.WriteString(perfSeparatorStyle.Render(strings.Repeat("─", 60)))
	report.WriteString("\n")
	report.WriteString(perfTitleStyle.Render("⚡ PERFORMANCE REPORT"))
	report.WriteString("\n")
	report.WriteString(fmt.Sprintf("   uptime %s\n", perfValueStyle.Render(time.Since(pt.started).Round(time.Microsecond).String())))

	metrics := make([]*PerfMetric, 0, len(pt.metrics))
	for _, m := range pt.metrics {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].TotalTime > metrics[j].TotalTime
	})
	for _, m := range metrics {
		report.WriteString(fmt.Sprintf("   %-30s %12s x%d\n",
			perfMetricStyle.Render(m.Name),
			perfValueStyle.Render(m.TotalTime.Round(time.Microsecond).String()),
			m.Count))
	}

	names := make([]string, 0, len(pt.counters))
	for name := range pt.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		report.WriteString(fmt.Sprintf("   %-30s %12s\n",
			perfMetricStyle.Render(name),
			perfValueStyle.Render(fmt.Sprintf("%d", atomic.LoadInt64(pt.counters[name])))))
	}

	report.WriteString(perfSeparatorStyle.Render(strings.Repeat("─", 60)))
	report.WriteString("\n")
	_, _ = fmt.Fprint(w, report.String())
}

// PerfCount adds delta to a counter on the global tracker
func PerfCount(name string, delta int64) {
	if !PerfEnabled {
		return
	}
	GetPerfTracker().AddCounter(name, delta)
}
