package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/mattn/go-runewidth"
)

// ErrBadWidth is returned when the display width is not positive or does
// not divide the pattern length.
var ErrBadWidth = errors.New("render: width must be positive and divide the pattern length")

// Default glyphs.
const (
	GlyphOn  = "●"
	GlyphOff = "○"
)

// Box-drawing runes.
const (
	cornerTL = "┌"
	cornerTR = "┐"
	cornerBL = "└"
	cornerBR = "┘"
	edgeH    = "─"
	edgeV    = "│"
	teeT     = "┬"
	teeB     = "┴"
	teeL     = "├"
	teeR     = "┤"
	cross    = "┼"
)

// cond measures display width independently of the user's locale.
var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Option customizes rendering.
type Option func(*options)

type options struct {
	on, off string
	border  bool
	cells   bool
}

// WithGlyphs replaces the +1 and −1 glyphs. Empty strings are ignored.
func WithGlyphs(on, off string) Option {
	return func(o *options) {
		if on != "" {
			o.on = on
		}
		if off != "" {
			o.off = off
		}
	}
}

// WithBorder toggles the surrounding box (on by default).
func WithBorder(on bool) Option {
	return func(o *options) { o.border = on }
}

// WithCellBorders draws every cell in its own box, one table row per grid
// row. It implies the outer border.
func WithCellBorders(on bool) Option {
	return func(o *options) { o.cells = on }
}

// Grid renders p as rows of width cells. The result ends with a newline.
//
// Errors:
//   - ErrBadWidth for width <= 0 or len(p) % width != 0.
//   - bipolar.ErrEmptySet / ErrDomainViolation from p.Validate.
func Grid(p bipolar.Pattern, width int, opts ...Option) (string, error) {
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if width <= 0 || len(p)%width != 0 {
		return "", fmt.Errorf("width %d for %d cells: %w", width, len(p), ErrBadWidth)
	}
	o := options{on: GlyphOn, off: GlyphOff, border: true}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	cell := max(cond.StringWidth(o.on), cond.StringWidth(o.off))
	on := cond.FillRight(o.on, cell)
	off := cond.FillRight(o.off, cell)
	if o.cells {
		return cellTable(p, width, cell, on, off), nil
	}
	inner := width*cell + (width - 1) // cells plus single-space gaps

	var sb strings.Builder
	if o.border {
		sb.WriteString(cornerTL + strings.Repeat(edgeH, inner+2) + cornerTR + "\n")
	}
	for r := 0; r < len(p)/width; r++ {
		if o.border {
			sb.WriteString(edgeV + " ")
		}
		for c := 0; c < width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p[r*width+c] == 1 {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		if o.border {
			sb.WriteString(" " + edgeV)
		}
		sb.WriteByte('\n')
	}
	if o.border {
		sb.WriteString(cornerBL + strings.Repeat(edgeH, inner+2) + cornerBR + "\n")
	}

	return sb.String(), nil
}

// cellTable draws one box per cell:
//
//	┌───┬───┐
//	│ ● │ ○ │
//	├───┼───┤
func cellTable(p bipolar.Pattern, width, cell int, on, off string) string {
	seg := strings.Repeat(edgeH, cell+2)
	rule := func(left, mid, right string) string {
		return left + strings.Repeat(seg+mid, width-1) + seg + right + "\n"
	}

	var sb strings.Builder
	sb.WriteString(rule(cornerTL, teeT, cornerTR))
	rows := len(p) / width
	for r := 0; r < rows; r++ {
		for c := 0; c < width; c++ {
			sb.WriteString(edgeV + " ")
			if p[r*width+c] == 1 {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
			sb.WriteByte(' ')
		}
		sb.WriteString(edgeV + "\n")
		if r < rows-1 {
			sb.WriteString(rule(teeL, cross, teeR))
		}
	}
	sb.WriteString(rule(cornerBL, teeB, cornerBR))

	return sb.String()
}

// Fprint writes Grid(p, width, opts...) to w.
func Fprint(w io.Writer, p bipolar.Pattern, width int, opts ...Option) error {
	s, err := Grid(p, width, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// Width returns the display width in terminal columns of the widest line of s.
func Width(s string) int {
	w := 0
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		w = max(w, cond.StringWidth(line))
	}

	return w
}
