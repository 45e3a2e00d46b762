package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopfield/matrix"
)

// Matrix renders m as right-aligned columns separated by one space, one
// row per line. Values are printed with strconv 'g' formatting, so integer
// weights show without a fractional part.
func Matrix(m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	cells := make([]string, rows*cols)
	colW := make([]int, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", fmt.Errorf("render: %w", err)
			}
			s := strconv.FormatFloat(v, 'g', 6, 64)
			cells[i*cols+j] = s
			colW[j] = max(colW[j], cond.StringWidth(s))
		}
	}

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cond.FillLeft(cells[i*cols+j], colW[j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
