package overlay

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

const shadowChar = "░"

// WhitespaceOption sets a styling rule for the whitespace PlaceOverlay fills
// in around the foreground.
type WhitespaceOption func(*whitespace)

type whitespace struct {
	style termenv.Style
	chars string
}

// WithWhitespaceChars sets the characters used as filler.
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

// WithWhitespaceStyle styles the filler.
func WithWhitespaceStyle(s termenv.Style) WhitespaceOption {
	return func(w *whitespace) {
		w.style = s
	}
}

// render returns whitespace width cells wide.
func (w whitespace) render(width int) string {
	if width <= 0 {
		return ""
	}
	chars := w.chars
	if chars == "" {
		chars = " "
	}

	r := []rune(chars)
	var b strings.Builder
	for i, j := 0, 0; i < width; {
		b.WriteRune(r[j])
		i += runewidth.RuneWidth(r[j])
		j = (j + 1) % len(r)
	}

	// A double-width filler may overshoot; pad what is left with spaces.
	short := width - ansi.PrintableRuneWidth(b.String())
	if short > 0 {
		b.WriteString(strings.Repeat(" ", short))
	}
	return w.style.Styled(b.String())
}

// PlaceOverlay places fg on top of bg at column x and row y. With center the
// position is ignored and fg is centered. With shadow a drop shadow is drawn
// right of and below fg.
func PlaceOverlay(x, y int, fg, bg string, shadow, center bool, opts ...WhitespaceOption) string {
	if shadow {
		fg = addShadow(fg)
	}

	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}
	x = clamp(x, 0, max(0, bgWidth-fgWidth))
	y = clamp(y, 0, max(0, bgHeight-fgHeight))

	ws := &whitespace{}
	for _, opt := range opts {
		opt(ws)
	}

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		lineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= lineWidth-pos {
			b.WriteString(ws.render(lineWidth - rightWidth - pos))
		}
		b.WriteString(right)
	}

	return b.String()
}

func addShadow(fg string) string {
	lines, width := getLines(fg)
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if pad := width - ansi.PrintableRuneWidth(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(shadowChar)
		}
		b.WriteByte('\n')
	}
	b.WriteString(" ")
	b.WriteString(strings.Repeat(shadowChar, width))
	return b.String()
}

// cutLeft cuts printable characters from the left, keeping the ANSI state
// that applies to what remains.
func cutLeft(s string, cutWidth int) string {
	var (
		pos    int
		isAnsi bool
		ab     bytes.Buffer
		b      bytes.Buffer
	)
	for _, c := range s {
		var w int
		if c == ansi.Marker || isAnsi {
			isAnsi = true
			ab.WriteRune(c)
			if ansi.IsTerminator(c) {
				isAnsi = false
				if bytes.HasSuffix(ab.Bytes(), []byte("[0m")) {
					ab.Reset()
				}
			}
		} else {
			w = runewidth.RuneWidth(c)
		}

		if pos >= cutWidth {
			if b.Len() == 0 {
				if ab.Len() > 0 {
					b.Write(ab.Bytes())
				}
				if pos-cutWidth > 1 {
					b.WriteByte(' ')
					continue
				}
			}
			b.WriteRune(c)
		}
		pos += w
	}
	return b.String()
}

// getLines splits a string into lines and returns the widest line width.
func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")
	for _, l := range lines {
		if w := ansi.PrintableRuneWidth(l); widest < w {
			widest = w
		}
	}
	return lines, widest
}

func clamp(v, lower, upper int) int {
	return min(max(v, lower), upper)
}
