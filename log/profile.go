package log

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// frameWindow is how many recent frames the profiler keeps.
	frameWindow = 100
	// FrameBudget is the time a frame may take at 60fps.
	FrameBudget = 16 * time.Millisecond
)

// RenderProfiler records how long frames and their components take to render.
type RenderProfiler struct {
	mu         sync.RWMutex
	components map[string]*ComponentMetrics
	frames     int64
	total      time.Duration
	slow       int64
	recent     [frameWindow]time.Duration
	next       int
	filled     int
}

// ComponentMetrics holds the timings of one component.
type ComponentMetrics struct {
	Name   string
	Count  int64
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
	LastAt time.Time
}

// Avg returns the mean render time.
func (m ComponentMetrics) Avg() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}

// ProfileStats is a copy of the profiler counters.
type ProfileStats struct {
	Frames     int64
	SlowFrames int64
	AvgFrame   time.Duration
	// Recent covers the last frameWindow frames.
	RecentAvg  time.Duration
	RecentMax  time.Duration
	Components []ComponentMetrics
}

var profiler = newRenderProfiler()

func newRenderProfiler() *RenderProfiler {
	return &RenderProfiler{components: make(map[string]*ComponentMetrics)}
}

// GetProfiler returns the shared render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender times a component render. Call the returned func when done.
func (p *RenderProfiler) StartRender(component string) func() {
	if !ProfilingEnabled() {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.recordRender(component, time.Since(start))
	}
}

func (p *RenderProfiler) recordRender(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component, Min: elapsed, Max: elapsed}
		p.components[component] = m
	}
	m.Count++
	m.Total += elapsed
	m.LastAt = time.Now()
	m.Min = min(m.Min, elapsed)
	m.Max = max(m.Max, elapsed)
}

// RecordFrame records a complete frame.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !ProfilingEnabled() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frames++
	p.total += elapsed
	p.recent[p.next] = elapsed
	p.next = (p.next + 1) % frameWindow
	p.filled = min(p.filled+1, frameWindow)

	if elapsed > FrameBudget {
		p.slow++
		trace("PERF", "slow frame: %v", elapsed)
	}
}

// Stats returns a copy of the counters, components sorted by total time.
func (p *RenderProfiler) Stats() ProfileStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st := ProfileStats{Frames: p.frames, SlowFrames: p.slow}
	if p.frames > 0 {
		st.AvgFrame = p.total / time.Duration(p.frames)
	}
	if p.filled > 0 {
		var sum time.Duration
		for _, d := range p.recent[:p.filled] {
			sum += d
			st.RecentMax = max(st.RecentMax, d)
		}
		st.RecentAvg = sum / time.Duration(p.filled)
	}

	for _, m := range p.components {
		st.Components = append(st.Components, *m)
	}
	sort.Slice(st.Components, func(i, j int) bool {
		if st.Components[i].Total != st.Components[j].Total {
			return st.Components[i].Total > st.Components[j].Total
		}
		return st.Components[i].Name < st.Components[j].Name
	})
	return st
}

// GetStats formats the counters for the dev-tools overlay. It is empty while
// profiling is off.
func (p *RenderProfiler) GetStats() string {
	if !ProfilingEnabled() {
		return ""
	}
	st := p.Stats()

	var sb strings.Builder
	sb.WriteString("Render Profile\n")
	fmt.Fprintf(&sb, "frames: %d (slow: %d)\n", st.Frames, st.SlowFrames)
	if st.Frames > 0 {
		fmt.Fprintf(&sb, "avg frame: %v (%.1f fps)\n", st.AvgFrame, 1/st.AvgFrame.Seconds())
		fmt.Fprintf(&sb, "recent: avg=%v max=%v\n", st.RecentAvg, st.RecentMax)
	}
	if len(st.Components) > 0 {
		sb.WriteString("\ncomponents\n")
	}
	for _, m := range st.Components {
		fmt.Fprintf(&sb, "  %-10s count=%d avg=%v min=%v max=%v\n", m.Name, m.Count, m.Avg(), m.Min, m.Max)
	}
	return sb.String()
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.components = make(map[string]*ComponentMetrics)
	p.frames, p.total, p.slow = 0, 0, 0
	p.next, p.filled = 0, 0
}
