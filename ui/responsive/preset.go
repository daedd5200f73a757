package responsive

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"webpreview/ui/layout"
)

// ErrInvalidPreset is returned for preset values that are neither "W" nor "WxH".
var ErrInvalidPreset = errors.New("invalid preset dimensions")

// DefaultPresetName labels the built-in preset listed first.
const DefaultPresetName = "Media Screen"

// DefaultDeviceWidth is the width of the built-in preset.
const DefaultDeviceWidth = 380

// Preset is a named device size. A zero Height means the height is derived
// from the container when the preset is applied.
type Preset struct {
	Name   string
	Width  int
	Height int
}

// Value returns the preset in its configuration form.
func (p Preset) Value() string {
	if p.Height == 0 {
		return strconv.Itoa(p.Width)
	}
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// WidthOnly reports whether the preset leaves the height to the container.
func (p Preset) WidthOnly() bool {
	return p.Height == 0
}

// ParsePreset parses a "WIDTHxHEIGHT" or "WIDTH" value.
func ParsePreset(name, value string) (Preset, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(value)), "x", 2)

	width, err := parseDimension(parts[0])
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	p := Preset{Name: name, Width: width}
	if len(parts) == 2 {
		if p.Height, err = parseDimension(parts[1]); err != nil {
			return Preset{}, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return p, nil
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPreset, s)
	}
	return n, nil
}

// ParsePresets parses a name -> value mapping, sorted by name. Invalid entries
// are skipped and reported together.
func ParsePresets(screens map[string]string) ([]Preset, error) {
	names := make([]string, 0, len(screens))
	for name := range screens {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := make([]Preset, 0, len(names))
	var errs []error
	for _, name := range names {
		p, err := ParsePreset(name, screens[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		presets = append(presets, p)
	}
	return presets, errors.Join(errs...)
}

// Capacity returns the room the container leaves for a device, before zoom.
func Capacity(container layout.ContainerSize) (width, height int) {
	return container.Width - layout.DefaultChrome.Horizontal, container.Height - layout.DefaultChrome.Vertical
}

// DefaultPreset is the built-in preset: a phone-width device as tall as the
// container allows.
func DefaultPreset(container layout.ContainerSize) Preset {
	_, capHeight := Capacity(container)
	return Preset{Name: DefaultPresetName, Width: DefaultDeviceWidth, Height: max(capHeight, layout.MinViewport)}
}

// Resolve returns the desired size the preset selects in container. A
// width-only preset wider than the container takes its height from the
// container's aspect; otherwise it takes the container's full height.
func (p Preset) Resolve(container layout.ContainerSize) layout.DesiredSize {
	if !p.WidthOnly() {
		return layout.DesiredSize{Width: float64(p.Width), Height: float64(p.Height)}
	}

	capWidth, capHeight := Capacity(container)
	height := capHeight
	if p.Width > capWidth && capWidth > 0 {
		percent := int(float64(p.Width) / (float64(capWidth) / 100))
		height = int(float64(percent) * (float64(capHeight) / 100))
	}
	return layout.DesiredSize{Width: float64(p.Width), Height: float64(max(height, 0))}
}

type presetSource []Preset

func (s presetSource) String(i int) string { return s[i].Name }
func (s presetSource) Len() int            { return len(s) }

// FilterPresets fuzzy-matches query against preset names, best match first.
// An empty query returns presets unchanged.
func FilterPresets(presets []Preset, query string) []Preset {
	if strings.TrimSpace(query) == "" {
		return presets
	}
	matches := fuzzy.FindFrom(query, presetSource(presets))
	out := make([]Preset, 0, len(matches))
	for _, m := range matches {
		out = append(out, presets[m.Index])
	}
	return out
}
