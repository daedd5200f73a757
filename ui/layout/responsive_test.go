package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstrain(t *testing.T) {
	tests := []struct {
		name       string
		container  ContainerSize
		desired    DesiredSize
		wantWidth  int
		wantHeight int
		wantZoom   float64
	}{
		{
			name:       "fits without scaling",
			container:  ContainerSize{Width: 1000, Height: 800},
			desired:    DesiredSize{Width: 380, Height: 600},
			wantWidth:  380,
			wantHeight: 600,
			wantZoom:   1,
		},
		{
			name:       "only width overflows",
			container:  ContainerSize{Width: 500, Height: 900},
			desired:    DesiredSize{Width: 2000, Height: 400},
			wantWidth:  2000,
			wantHeight: 400,
			wantZoom:   466.0 / 2000.0, // 500-34 available
		},
		{
			name:       "only height overflows",
			container:  ContainerSize{Width: 1000, Height: 441},
			desired:    DesiredSize{Width: 380, Height: 800},
			wantWidth:  380,
			wantHeight: 800,
			wantZoom:   0.5, // 441-41 = 400 available
		},
		{
			name:       "both overflow - tighter axis wins",
			container:  ContainerSize{Width: 434, Height: 241},
			desired:    DesiredSize{Width: 800, Height: 800},
			wantWidth:  800,
			wantHeight: 800,
			wantZoom:   0.25, // width 400/800=0.5, height 200/800=0.25
		},
		{
			name:       "collapsed container falls back to the floor",
			container:  ContainerSize{Width: 0, Height: 0},
			desired:    DesiredSize{Width: 380, Height: 600},
			wantWidth:  MinViewport,
			wantHeight: MinViewport,
			wantZoom:   CollapsedZoom,
		},
		{
			name:       "tiny desired size is floored",
			container:  ContainerSize{Width: 1000, Height: 800},
			desired:    DesiredSize{Width: 10, Height: 20},
			wantWidth:  MinViewport,
			wantHeight: MinViewport,
			wantZoom:   1,
		},
		{
			name:       "negative desired size skips scaling",
			container:  ContainerSize{Width: 1000, Height: 800},
			desired:    DesiredSize{Width: -300, Height: 0},
			wantWidth:  MinViewport,
			wantHeight: MinViewport,
			wantZoom:   1,
		},
		{
			name:       "container smaller than floor",
			container:  ContainerSize{Width: 60, Height: 60},
			desired:    DesiredSize{Width: 10, Height: 10},
			wantWidth:  MinViewport,
			wantHeight: MinViewport,
			wantZoom:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Constrain(tt.container, tt.desired)
			assert.Equal(t, tt.wantWidth, got.Width, "Width")
			assert.Equal(t, tt.wantHeight, got.Height, "Height")
			assert.InDelta(t, tt.wantZoom, got.Zoom, 1e-9, "Zoom")
		})
	}
}

var (
	containerEdges = []int{0, 1, 10, 34, 35, 41, 60, 100, 500, 1920}
	desiredEdges   = []float64{-100, 0, 1, 49, 50, 50.4, 380, 1000, 5000}
)

func forEachInput(t *testing.T, fn func(t *testing.T, container ContainerSize, desired DesiredSize)) {
	for _, cw := range containerEdges {
		for _, ch := range containerEdges {
			for _, dw := range desiredEdges {
				for _, dh := range desiredEdges {
					fn(t, ContainerSize{Width: cw, Height: ch}, DesiredSize{Width: dw, Height: dh})
				}
			}
		}
	}
}

func TestConstrainInvariants(t *testing.T) {
	forEachInput(t, func(t *testing.T, container ContainerSize, desired DesiredSize) {
		got := Constrain(container, desired)

		require.GreaterOrEqual(t, got.Width, MinViewport, "floor width for %+v %+v", container, desired)
		require.GreaterOrEqual(t, got.Height, MinViewport, "floor height for %+v %+v", container, desired)
		require.LessOrEqual(t, got.Zoom, 1.0, "zoom must not magnify for %+v %+v", container, desired)
		require.Greater(t, got.Zoom, 0.0, "zoom must stay positive for %+v %+v", container, desired)
		require.False(t, math.IsNaN(got.Zoom) || math.IsInf(got.Zoom, 0))

		require.Equal(t, got, Constrain(container, desired), "Constrain must be idempotent")

		_, widthZoom := constrainAxis(desired.Width, max(0, container.Width-DefaultChrome.Horizontal))
		_, heightZoom := constrainAxis(desired.Height, max(0, container.Height-DefaultChrome.Vertical))
		require.Equal(t, math.Min(widthZoom, heightZoom), got.Zoom, "zoom is the tighter axis")

		availWidth, availHeight := DefaultChrome.Available(container)
		frame := got.Frame()
		if availWidth >= MinViewport {
			require.LessOrEqual(t, frame.BoxWidth, availWidth, "rendered width fits for %+v %+v", container, desired)
		}
		if availHeight >= MinViewport {
			require.LessOrEqual(t, frame.BoxHeight, availHeight, "rendered height fits for %+v %+v", container, desired)
		}
	})
}

func TestConstrainOrderIndependent(t *testing.T) {
	// The result depends only on the latest inputs, never on which one changed last.
	type inputs struct {
		container ContainerSize
		desired   DesiredSize
	}
	final := inputs{
		container: ContainerSize{Width: 800, Height: 600},
		desired:   DesiredSize{Width: 1200, Height: 900},
	}

	resizeLast := inputs{desired: final.desired}
	resizeLast.container = ContainerSize{Width: 300, Height: 300}
	_ = Constrain(resizeLast.container, resizeLast.desired)
	resizeLast.container = final.container

	dragLast := inputs{container: final.container}
	dragLast.desired = DesiredSize{Width: 100, Height: 100}
	_ = Constrain(dragLast.container, dragLast.desired)
	dragLast.desired = final.desired

	assert.Equal(t,
		Constrain(resizeLast.container, resizeLast.desired),
		Constrain(dragLast.container, dragLast.desired))
}

func TestChromeAvailable(t *testing.T) {
	w, h := DefaultChrome.Available(ContainerSize{Width: 500, Height: 900})
	assert.Equal(t, 466, w)
	assert.Equal(t, 859, h)

	w, h = DefaultChrome.Available(ContainerSize{Width: 10, Height: 10})
	assert.Zero(t, w)
	assert.Zero(t, h)

	w, h = Chrome{}.Available(ContainerSize{Width: 10, Height: 10})
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestFrame(t *testing.T) {
	t.Run("scaled frame is recentered", func(t *testing.T) {
		f := ConstrainedSize{Width: 2000, Height: 400, Zoom: 0.233}.Frame()
		assert.Equal(t, 466, f.BoxWidth)
		assert.Equal(t, 93, f.BoxHeight)
		assert.InDelta(t, 767.0, f.OffsetX, 1e-9)
	})

	t.Run("unscaled frame has no offset", func(t *testing.T) {
		f := ConstrainedSize{Width: 380, Height: 600, Zoom: 1}.Frame()
		assert.Equal(t, 380, f.BoxWidth)
		assert.Equal(t, 600, f.BoxHeight)
		assert.Zero(t, f.OffsetX)
	})
}

func TestConstrainedPercent(t *testing.T) {
	assert.Equal(t, 100, ConstrainedSize{Zoom: 1}.Percent())
	assert.Equal(t, 23, ConstrainedSize{Zoom: 0.233}.Percent())
}

func TestDesiredSizeOrientation(t *testing.T) {
	portrait := DesiredSize{Width: 380, Height: 700}
	assert.False(t, portrait.Landscape())

	rotated := portrait.Rotated()
	assert.Equal(t, DesiredSize{Width: 700, Height: 380}, rotated)
	assert.True(t, rotated.Landscape())

	assert.False(t, DesiredSize{Width: 500, Height: 500}.Landscape(), "square is portrait")
}

func TestCellMetrics(t *testing.T) {
	m := DefaultCellMetrics

	w, h := m.ToPixels(80, 24)
	assert.Equal(t, 640, w)
	assert.Equal(t, 384, h)

	cols, rows := m.ToCells(466, 93)
	assert.Equal(t, 58, cols)
	assert.Equal(t, 6, rows)

	cols, _ = m.ToCells(-12, 0)
	assert.Equal(t, -2, cols)

	assert.Equal(t, 4, m.PointX(0))
	assert.Equal(t, 24, m.PointY(1))
}
