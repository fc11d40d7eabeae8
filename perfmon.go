package signal

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const rollingWindow = 120

// systemStats is the per-system timing histogram the teacher's app loop
// printed ad hoc with fmt.Println+time.Since; here it is retained across
// frames instead of printed every tick.
type systemStats struct {
	calls   uint64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples [rollingWindow]time.Duration
	idx     int
	filled  int
}

func (s *systemStats) record(d time.Duration) {
	s.calls++
	s.total += d
	if s.calls == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.samples[s.idx] = d
	s.idx = (s.idx + 1) % rollingWindow
	if s.filled < rollingWindow {
		s.filled++
	}
}

func (s *systemStats) rollingAverage() time.Duration {
	if s.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < s.filled; i++ {
		sum += s.samples[i]
	}
	return sum / time.Duration(s.filled)
}

// SystemTiming is a point-in-time read of one system's accumulated stats
// (§4.9).
type SystemTiming struct {
	Name            string
	Calls           uint64
	Total           time.Duration
	Min             time.Duration
	Max             time.Duration
	RollingAverage  time.Duration
}

// PerformanceMonitor accumulates per-system call counts and timing
// (§4.9): call count, cumulative/min/max, and a rolling 120-frame
// average, with an optional Prometheus exporter wired in when a
// Registerer is supplied.
type PerformanceMonitor struct {
	mu     sync.Mutex
	stats  map[string]*systemStats
	budget time.Duration
	logger Logger

	histogram *prometheus.HistogramVec
	gauge     *prometheus.GaugeVec
}

// NewPerformanceMonitor creates a monitor warning whenever a single
// system step exceeds budget (zero disables the warning).
func NewPerformanceMonitor(budget time.Duration, logger Logger) *PerformanceMonitor {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &PerformanceMonitor{
		stats:  make(map[string]*systemStats),
		budget: budget,
		logger: logger,
	}
}

// EnableMetrics registers a HistogramVec/GaugeVec pair with reg so
// per-system timings are visible to Prometheus in addition to the
// in-process rolling stats (§4.9, opt-in: no metrics are exported until
// EnableMetrics is called).
func (m *PerformanceMonitor) EnableMetrics(reg prometheus.Registerer, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "system_duration_seconds",
		Help:      "Per-system update duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"system"})
	m.gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "system_last_duration_seconds",
		Help:      "Most recent per-system update duration.",
	}, []string{"system"})
	if err := reg.Register(m.histogram); err != nil {
		return err
	}
	return reg.Register(m.gauge)
}

// Record adds one timing sample for name (called by Scheduler.Tick).
func (m *PerformanceMonitor) Record(name string, d time.Duration) {
	m.mu.Lock()
	stats, ok := m.stats[name]
	if !ok {
		stats = &systemStats{}
		m.stats[name] = stats
	}
	stats.record(d)
	hist, gauge := m.histogram, m.gauge
	m.mu.Unlock()

	if hist != nil {
		hist.WithLabelValues(name).Observe(d.Seconds())
	}
	if gauge != nil {
		gauge.WithLabelValues(name).Set(d.Seconds())
	}

	if m.budget > 0 && d > m.budget {
		m.logger.Warnf("perfmon: system %q took %s, over per-system budget %s", name, d, m.budget)
	}
}

// Snapshot returns a timing report for every system observed so far, in
// no particular order.
func (m *PerformanceMonitor) Snapshot() []SystemTiming {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SystemTiming, 0, len(m.stats))
	for name, s := range m.stats {
		out = append(out, SystemTiming{
			Name:           name,
			Calls:          s.calls,
			Total:          s.total,
			Min:            s.min,
			Max:            s.max,
			RollingAverage: s.rollingAverage(),
		})
	}
	return out
}
