package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProfiling(t *testing.T) *RenderProfiler {
	t.Helper()
	DebugEnabled = false
	SetProfiling(true)
	t.Cleanup(func() { SetProfiling(false) })
	p := newRenderProfiler()
	return p
}

func TestStartRenderNoopWhenDisabled(t *testing.T) {
	DebugEnabled = false
	SetProfiling(false)
	p := newRenderProfiler()

	p.StartRender("viewport")()
	assert.Empty(t, p.Stats().Components)
	assert.Empty(t, p.GetStats())
}

func TestStartRenderAccumulates(t *testing.T) {
	p := withProfiling(t)

	for i := 0; i < 5; i++ {
		done := p.StartRender("toolbar")
		done()
	}
	p.recordRender("viewport", 3*time.Millisecond)
	p.recordRender("viewport", time.Millisecond)

	st := p.Stats()
	require.Len(t, st.Components, 2)
	vp := st.Components[0]
	assert.Equal(t, "viewport", vp.Name)
	assert.Equal(t, int64(2), vp.Count)
	assert.Equal(t, time.Millisecond, vp.Min)
	assert.Equal(t, 3*time.Millisecond, vp.Max)
	assert.Equal(t, 2*time.Millisecond, vp.Avg())
	assert.Equal(t, int64(5), st.Components[1].Count)
}

func TestRecordFrame(t *testing.T) {
	p := withProfiling(t)

	p.RecordFrame(10 * time.Millisecond)
	p.RecordFrame(30 * time.Millisecond)

	st := p.Stats()
	assert.Equal(t, int64(2), st.Frames)
	assert.Equal(t, int64(1), st.SlowFrames)
	assert.Equal(t, 20*time.Millisecond, st.AvgFrame)
	assert.Equal(t, 30*time.Millisecond, st.RecentMax)
}

func TestRecentFramesWindow(t *testing.T) {
	p := withProfiling(t)

	for i := 0; i < frameWindow; i++ {
		p.RecordFrame(time.Millisecond)
	}
	for i := 0; i < frameWindow/2; i++ {
		p.RecordFrame(3 * time.Millisecond)
	}

	st := p.Stats()
	assert.Equal(t, int64(frameWindow+frameWindow/2), st.Frames)
	assert.Equal(t, 2*time.Millisecond, st.RecentAvg)
}

func TestGetStats(t *testing.T) {
	p := withProfiling(t)

	p.RecordFrame(10 * time.Millisecond)
	p.recordRender("content", time.Millisecond)

	stats := p.GetStats()
	assert.Contains(t, stats, "Render Profile")
	assert.Contains(t, stats, "frames: 1 (slow: 0)")
	assert.Contains(t, stats, "content")

	SetProfiling(false)
	assert.Empty(t, p.GetStats())
}

func TestReset(t *testing.T) {
	p := withProfiling(t)
	p.RecordFrame(time.Millisecond)
	p.recordRender("content", time.Millisecond)

	p.Reset()
	st := p.Stats()
	assert.Zero(t, st.Frames)
	assert.Empty(t, st.Components)
	assert.Zero(t, st.RecentAvg)
}
