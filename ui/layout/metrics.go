package layout

// CellMetrics converts between terminal cells and logical pixels.
type CellMetrics struct {
	Width  int
	Height int
}

// DefaultCellMetrics approximates a monospace cell at 8x16 px.
var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

// ToPixels converts a cell extent to pixels.
func (m CellMetrics) ToPixels(cols, rows int) (int, int) {
	return cols * m.Width, rows * m.Height
}

// ToCells converts a pixel extent to the nearest cell extent.
func (m CellMetrics) ToCells(width, height int) (int, int) {
	return divRound(width, m.Width), divRound(height, m.Height)
}

// PointX converts a column to the pixel at the cell's center.
func (m CellMetrics) PointX(col int) int {
	return col*m.Width + m.Width/2
}

// PointY converts a row to the pixel at the cell's center.
func (m CellMetrics) PointY(row int) int {
	return row*m.Height + m.Height/2
}

func divRound(v, d int) int {
	if d <= 0 {
		return 0
	}
	if v < 0 {
		return -divRound(-v, d)
	}
	return (v + d/2) / d
}
