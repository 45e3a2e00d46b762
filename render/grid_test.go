package render_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/matrix"
	"github.com/katalvlaran/hopfield/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var board = bipolar.Pattern{1, -1, 1, -1, 1, -1, 1, -1, 1}

func TestGrid_Checkerboard(t *testing.T) {
	got, err := render.Grid(board, 3)
	require.NoError(t, err)
	want := "" +
		"┌───────┐\n" +
		"│ ● ○ ● │\n" +
		"│ ○ ● ○ │\n" +
		"│ ● ○ ● │\n" +
		"└───────┘\n"
	assert.Equal(t, want, got)
	assert.Equal(t, 9, render.Width(got))
}

func TestGrid_CellBorders(t *testing.T) {
	got, err := render.Grid(board, 3, render.WithCellBorders(true))
	require.NoError(t, err)
	want := "" +
		"┌───┬───┬───┐\n" +
		"│ ● │ ○ │ ● │\n" +
		"├───┼───┼───┤\n" +
		"│ ○ │ ● │ ○ │\n" +
		"├───┼───┼───┤\n" +
		"│ ● │ ○ │ ● │\n" +
		"└───┴───┴───┘\n"
	assert.Equal(t, want, got)

	got, err = render.Grid(bipolar.Pattern{1, -1}, 2, render.WithCellBorders(true), render.WithGlyphs("##", "."))
	require.NoError(t, err)
	assert.Equal(t, "┌────┬────┐\n│ ## │ .  │\n└────┴────┘\n", got)
}

func TestGrid_PlainGlyphs(t *testing.T) {
	got, err := render.Grid(board, 9, render.WithGlyphs("#", "."), render.WithBorder(false))
	require.NoError(t, err)
	assert.Equal(t, "# . # . # . # . #\n", got)
}

// TestGrid_UnevenGlyphWidths pads the narrower glyph so columns line up.
func TestGrid_UnevenGlyphWidths(t *testing.T) {
	got, err := render.Grid(bipolar.Pattern{1, -1}, 2, render.WithGlyphs("##", "."), render.WithBorder(false))
	require.NoError(t, err)
	assert.Equal(t, "## . \n", got)
}

func TestGrid_Errors(t *testing.T) {
	for _, w := range []int{0, -1, 2, 4} {
		_, err := render.Grid(board, w)
		assert.ErrorIs(t, err, render.ErrBadWidth, "width %d", w)
	}

	_, err := render.Grid(nil, 3)
	assert.ErrorIs(t, err, bipolar.ErrEmptySet)

	_, err = render.Grid(bipolar.Pattern{1, 2, 1}, 3)
	assert.ErrorIs(t, err, bipolar.ErrDomainViolation)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Fprint(&buf, bipolar.Pattern{1, 1, -1, -1}, 2, render.WithBorder(false)))
	assert.Equal(t, "● ●\n○ ○\n", buf.String())

	assert.ErrorIs(t, render.Fprint(&buf, board, 5), render.ErrBadWidth)
}

func TestMatrix(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, -1, 12}, {-1, 0, 0.5}})
	require.NoError(t, err)
	got, err := render.Matrix(m)
	require.NoError(t, err)
	assert.Equal(t, " 0 -1  12\n-1  0 0.5\n", got)

	_, err = render.Matrix(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
