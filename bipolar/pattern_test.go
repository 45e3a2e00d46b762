package bipolar_test

import (
	"testing"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checker = bipolar.Pattern{1, -1, 1, -1, 1, -1, 1, -1, 1}

func TestPattern_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    bipolar.Pattern
		want error
	}{
		{"valid", checker, nil},
		{"empty", bipolar.Pattern{}, bipolar.ErrEmptySet},
		{"zero element", bipolar.Pattern{1, 0, -1}, bipolar.ErrDomainViolation},
		{"two", bipolar.Pattern{2, -1}, bipolar.ErrDomainViolation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSet(t *testing.T) {
	n, err := bipolar.ValidateSet([]bipolar.Pattern{checker, bipolar.Complement(checker)})
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = bipolar.ValidateSet(nil)
	assert.ErrorIs(t, err, bipolar.ErrEmptySet)

	_, err = bipolar.ValidateSet([]bipolar.Pattern{checker, {1, -1}})
	assert.ErrorIs(t, err, bipolar.ErrLengthMismatch)

	_, err = bipolar.ValidateSet([]bipolar.Pattern{{1, 1}, {1, 3}})
	assert.ErrorIs(t, err, bipolar.ErrDomainViolation)
}

func TestParseAndString(t *testing.T) {
	p, err := bipolar.Parse("+-+ | -+- | +-+")
	require.NoError(t, err)
	assert.Equal(t, checker, p)
	assert.Equal(t, "+-+-+-+-+", p.String())

	_, err = bipolar.Parse("+x-")
	assert.ErrorIs(t, err, bipolar.ErrDomainViolation)
	_, err = bipolar.Parse(" | ")
	assert.ErrorIs(t, err, bipolar.ErrEmptySet)
}

func TestCloneEqualComplement(t *testing.T) {
	c := checker.Clone()
	c[0] = -1
	assert.Equal(t, 1, checker[0], "clone must not alias")
	assert.False(t, c.Equal(checker))
	assert.True(t, checker.Equal(checker.Clone()))
	assert.False(t, checker.Equal(checker[:3]))

	comp := bipolar.Complement(checker)
	for i := range checker {
		assert.Equal(t, -checker[i], comp[i])
	}
	assert.Nil(t, bipolar.Pattern(nil).Clone())
}

func TestFlipAndHamming(t *testing.T) {
	damaged, err := bipolar.Flip(checker, 4)
	require.NoError(t, err)
	assert.Equal(t, bipolar.Pattern{1, -1, 1, -1, -1, -1, 1, -1, 1}, damaged)
	assert.Equal(t, 1, checker[4], "Flip must not mutate its input")

	d, err := bipolar.Hamming(checker, damaged)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = bipolar.Flip(checker, 9)
	assert.Error(t, err)
	_, err = bipolar.Hamming(checker, damaged[:2])
	assert.ErrorIs(t, err, bipolar.ErrLengthMismatch)
}

func TestFloats(t *testing.T) {
	assert.Equal(t, []float64{1, -1}, bipolar.Pattern{1, -1}.Floats())
}
