// Package layout provides the panel layout and the responsive viewport geometry.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 150w x 48h).
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 120w x 36h).
	LayoutStandard

	// LayoutCompact is for smaller terminals (>= 60w x 16h).
	// The toolbar drops its labels.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	LayoutMinimal
)

var modeNames = [...]string{
	LayoutFull:     "full",
	LayoutStandard: "standard",
	LayoutCompact:  "compact",
	LayoutMinimal:  "minimal",
}

func (m LayoutMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// axis holds the breakpoints of one terminal dimension.
type axis struct {
	min, standard, full int
}

var (
	widthAxis  = axis{min: MinWidth, standard: StandardWidth, full: FullWidth}
	heightAxis = axis{min: MinHeight, standard: StandardHeight, full: FullHeight}
)

func (a axis) mode(v int) LayoutMode {
	switch {
	case v >= a.full:
		return LayoutFull
	case v >= a.standard:
		return LayoutStandard
	case v >= a.min:
		return LayoutCompact
	}
	return LayoutMinimal
}

// DetermineMode picks the layout for a terminal of width x height cells. The
// tighter dimension decides, so a wide but short terminal gets the short
// layout: the viewport container loses rows first.
func DetermineMode(width, height int) LayoutMode {
	return max(widthAxis.mode(width), heightAxis.mode(height))
}
