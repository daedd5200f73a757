package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpreview/ui/layout"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Preset
		wantErr bool
	}{
		{name: "phone", value: "375x667", want: Preset{Name: "phone", Width: 375, Height: 667}},
		{name: "upper", value: " 1024X768 ", want: Preset{Name: "upper", Width: 1024, Height: 768}},
		{name: "width only", value: "1280", want: Preset{Name: "width only", Width: 1280}},
		{name: "garbage", value: "wide", wantErr: true},
		{name: "zero", value: "0x100", wantErr: true},
		{name: "bad height", value: "100x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePreset(tt.name, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPreset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePresetsSortsAndSkipsInvalid(t *testing.T) {
	presets, err := ParsePresets(map[string]string{
		"tablet":  "768x1024",
		"broken":  "x",
		"desktop": "1440",
	})
	assert.ErrorIs(t, err, ErrInvalidPreset)
	require.Len(t, presets, 2)
	assert.Equal(t, "desktop", presets[0].Name)
	assert.Equal(t, "tablet", presets[1].Name)
	assert.Equal(t, "1440", presets[0].Value())
	assert.Equal(t, "768x1024", presets[1].Value())
}

func TestPresetResolve(t *testing.T) {
	container := layout.ContainerSize{Width: 834, Height: 641} // capacity 800x600

	tests := []struct {
		name   string
		preset Preset
		want   layout.DesiredSize
	}{
		{
			name:   "explicit size",
			preset: Preset{Width: 375, Height: 667},
			want:   layout.DesiredSize{Width: 375, Height: 667},
		},
		{
			name:   "width fits - full height",
			preset: Preset{Width: 600},
			want:   layout.DesiredSize{Width: 600, Height: 600},
		},
		{
			name:   "width overflows - aspect fit",
			preset: Preset{Width: 1600},
			want:   layout.DesiredSize{Width: 1600, Height: 1200}, // 200% of 600
		},
		{
			name:   "collapsed container",
			preset: Preset{Width: 400},
			want:   layout.DesiredSize{Width: 400, Height: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := container
			if tt.name == "collapsed container" {
				c = layout.ContainerSize{}
			}
			assert.Equal(t, tt.want, tt.preset.Resolve(c))
		})
	}
}

func TestFilterPresets(t *testing.T) {
	presets := []Preset{{Name: "iPhone SE"}, {Name: "iPad Pro"}, {Name: "Desktop"}}

	assert.Equal(t, presets, FilterPresets(presets, ""))

	got := FilterPresets(presets, "ipad")
	require.NotEmpty(t, got)
	assert.Equal(t, "iPad Pro", got[0].Name)

	assert.Empty(t, FilterPresets(presets, "zzz"))
}

func TestSizerRotation(t *testing.T) {
	s := NewSizer(layout.DesiredSize{Width: 380, Height: 700})
	assert.Equal(t, Portrait, s.Orientation())

	s.Rotate()
	assert.Equal(t, layout.DesiredSize{Width: 700, Height: 380}, s.Desired())
	assert.Equal(t, Landscape, s.Orientation())

	s.Rotate()
	assert.Equal(t, Portrait, s.Orientation())
}

func TestSizerZoomRelativeToBaseline(t *testing.T) {
	s := NewSizer(layout.DesiredSize{Width: 380, Height: 700})

	s.BeginZoom()
	s.Zoom(1.2)
	s.Zoom(1.5)
	assert.InDelta(t, 570, s.Desired().Width, 1e-9)
	assert.Equal(t, 700.0, s.Desired().Height)
	assert.Equal(t, Portrait, s.Orientation())

	s.Zoom(1.9) // clamped to 1.8
	assert.InDelta(t, 684, s.Desired().Width, 1e-9)
	s.EndZoom()

	// A new gesture starts from the zoomed width.
	s.BeginZoom()
	s.Zoom(0.5)
	assert.InDelta(t, 342, s.Desired().Width, 1e-9)
}

func TestSizerZoomCrossesOrientation(t *testing.T) {
	s := NewSizer(layout.DesiredSize{Width: 500, Height: 600})
	s.BeginZoom()
	s.Zoom(1.5)
	assert.Equal(t, Landscape, s.Orientation(), "750 > 600")
	s.Zoom(1)
	assert.Equal(t, Portrait, s.Orientation())
}

func TestSizerZoomWithoutGesture(t *testing.T) {
	s := NewSizer(layout.DesiredSize{Width: 400, Height: 700})
	s.Zoom(0.5)
	assert.InDelta(t, 200, s.Desired().Width, 1e-9)
	assert.True(t, s.ZoomState().Active)
	assert.InDelta(t, 400, s.ZoomState().BaselineWidth, 1e-9)
}

func TestSizerPresetUpdatesOrientation(t *testing.T) {
	container := layout.ContainerSize{Width: 834, Height: 641}
	s := NewSizer(layout.DesiredSize{Width: 380, Height: 600})
	s.SetPresets([]Preset{{Name: "laptop", Width: 1366, Height: 768}})

	choices := s.Choices(container)
	require.Len(t, choices, 2)
	assert.Equal(t, DefaultPresetName, choices[0].Name)
	assert.Equal(t, Preset{Name: DefaultPresetName, Width: 380, Height: 600}, choices[0])

	s.ApplyPreset(choices[1], container)
	assert.Equal(t, layout.DesiredSize{Width: 1366, Height: 768}, s.Desired())
	assert.Equal(t, Landscape, s.Orientation())
	assert.Equal(t, "laptop", s.Selected())

	s.Reset(container)
	assert.Equal(t, layout.DesiredSize{Width: 380, Height: 600}, s.Desired())
	assert.Equal(t, Portrait, s.Orientation())
}

func TestSizerDragKeepsOrientationConsistent(t *testing.T) {
	s := NewSizer(layout.DesiredSize{Width: 380, Height: 600})
	s.Drag(layout.DesiredSize{Width: 900, Height: 600})
	assert.Equal(t, Landscape, s.Orientation())
}

func TestSnapZoom(t *testing.T) {
	assert.InDelta(t, 0.2, SnapZoom(0.01), 1e-9)
	assert.InDelta(t, 1.8, SnapZoom(5), 1e-9)
	assert.InDelta(t, 1.02, SnapZoom(1.013), 1e-9)
	assert.InDelta(t, 1.0, SnapZoom(1.009), 1e-9)
}
