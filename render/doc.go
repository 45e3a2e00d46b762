// Package render draws bipolar patterns and weight matrices as plain text.
//
// A pattern of length n is shown as a grid of n/width rows inside a box:
//
//	┌───────┐
//	│ ● ○ ● │
//	│ ○ ● ○ │
//	│ ● ○ ● │
//	└───────┘
//
// WithCellBorders boxes every cell instead (┌───┬───┐ / │ ● │ ○ │ / ├───┼───┤).
//
// +1 is drawn with GlyphOn, −1 with GlyphOff; WithGlyphs swaps them for
// any other pair (ASCII "#"/"." for plain logs). Cell widths are measured in
// terminal columns, so wide glyphs keep the box aligned.
//
// Output is deterministic: the East Asian ambiguous-width rule is fixed to
// narrow regardless of the locale.
package render
