package metrics

import (
	"sync"
	"time"
)

// Metrics counts gated log calls per level name.
type Metrics struct {
	mutex      sync.RWMutex
	emitted    map[string]int64
	suppressed map[string]int64
	startTime  time.Time
}

type Snapshot struct {
	TotalEmitted    int64                   `json:"total_emitted"`
	TotalSuppressed int64                   `json:"total_suppressed"`
	Uptime          time.Duration           `json:"uptime"`
	Levels          map[string]LevelMetrics `json:"levels"`
}

type LevelMetrics struct {
	Emitted    int64 `json:"emitted"`
	Suppressed int64 `json:"suppressed"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		emitted:    make(map[string]int64),
		suppressed: make(map[string]int64),
		startTime:  time.Now(),
	}
}

// Record satisfies logger.Recorder.
func (m *Metrics) Record(level string, emitted bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if emitted {
		m.emitted[level]++
	} else {
		m.suppressed[level]++
	}
}

func (m *Metrics) Snapshot() Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Uptime: time.Since(m.startTime),
		Levels: make(map[string]LevelMetrics),
	}

	allLevels := make(map[string]bool)
	for level := range m.emitted {
		allLevels[level] = true
	}
	for level := range m.suppressed {
		allLevels[level] = true
	}

	for level := range allLevels {
		lm := LevelMetrics{
			Emitted:    m.emitted[level],
			Suppressed: m.suppressed[level],
		}
		snap.TotalEmitted += lm.Emitted
		snap.TotalSuppressed += lm.Suppressed
		snap.Levels[level] = lm
	}

	return snap
}
