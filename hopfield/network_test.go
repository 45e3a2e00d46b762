package hopfield_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/hopfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferLogger returns a debug-level text logger writing into buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		nw, err := hopfield.New(n)
		assert.ErrorIs(t, err, hopfield.ErrInvalidSize)
		assert.Nil(t, nw)
	}
}

func TestNetwork_Untrained(t *testing.T) {
	nw, err := hopfield.New(9)
	require.NoError(t, err)
	assert.Equal(t, 9, nw.Size())
	assert.False(t, nw.Trained())
	assert.Nil(t, nw.Weights())
	assert.Empty(t, nw.Patterns())

	_, err = nw.Recall(p1)
	assert.ErrorIs(t, err, hopfield.ErrUntrained)
	_, err = nw.RecallSynchronous(p1, 5)
	assert.ErrorIs(t, err, hopfield.ErrUntrained)
}

// TestNetwork_Scenario walks the checkerboard demo end to end.
func TestNetwork_Scenario(t *testing.T) {
	nw, err := hopfield.New(9)
	require.NoError(t, err)
	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{p1, bipolar.Complement(p1)}))
	assert.True(t, nw.Trained())

	probe := centreFlipped(t)
	got, err := nw.RecallSynchronous(probe, 5)
	require.NoError(t, err)
	assert.Equal(t, p1, got)

	got, err = nw.RecallAsynchronous(probe, 5)
	require.NoError(t, err)
	assert.Equal(t, p1, got)
}

func TestNetwork_TrainLengthMismatch(t *testing.T) {
	nw, err := hopfield.New(8)
	require.NoError(t, err)
	err = nw.TrainHebb([]bipolar.Pattern{p1})
	assert.ErrorIs(t, err, hopfield.ErrLengthMismatch)
	assert.False(t, nw.Trained())
}

// TestNetwork_FailedTrainKeepsPriorWeights: a dependent set rejected by
// the pseudoinverse rule leaves the earlier weights in place.
func TestNetwork_FailedTrainKeepsPriorWeights(t *testing.T) {
	var buf bytes.Buffer
	nw, err := hopfield.New(9, hopfield.WithLogger(bufferLogger(&buf)))
	require.NoError(t, err)

	err = nw.TrainPseudoinverse([]bipolar.Pattern{p1, p1})
	assert.ErrorIs(t, err, hopfield.ErrLinearDependence)
	assert.False(t, nw.Trained(), "untrained network stays untrained")

	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{p1}))
	before := nw.Weights()

	err = nw.TrainPseudoinverse([]bipolar.Pattern{p1, bipolar.Complement(p1)})
	assert.ErrorIs(t, err, hopfield.ErrLinearDependence)
	assert.Same(t, before, nw.Weights())
	assert.Equal(t, []bipolar.Pattern{p1}, nw.Patterns())
	assert.Contains(t, buf.String(), "training failed")
}

// TestNetwork_RetrainReplaces makes sure weights never accumulate across Train calls.
func TestNetwork_RetrainReplaces(t *testing.T) {
	nw, err := hopfield.New(9)
	require.NoError(t, err)
	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{p1}))
	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{p1}))

	assert.Equal(t, -1.0, at(t, nw.Weights(), 0, 1))
}

func TestNetwork_CrossTalkWarning(t *testing.T) {
	var buf bytes.Buffer
	nw, err := hopfield.New(9, hopfield.WithLogger(bufferLogger(&buf)))
	require.NoError(t, err)

	near := centreFlipped(t) // similarity 7/9 with p1
	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{p1, near}))
	out := buf.String()
	assert.Contains(t, out, "stored patterns are strongly correlated")
	assert.Contains(t, out, "level=WARN")

	buf.Reset()
	strict, err := hopfield.New(9, hopfield.WithLogger(bufferLogger(&buf)), hopfield.WithCrossTalkThreshold(0.9))
	require.NoError(t, err)
	require.NoError(t, strict.TrainHebb([]bipolar.Pattern{p1, near}))
	assert.NotContains(t, buf.String(), "strongly correlated")
}

func TestNetwork_UnknownRule(t *testing.T) {
	nw, err := hopfield.New(9)
	require.NoError(t, err)
	err = nw.Train(hopfield.Rule(5), []bipolar.Pattern{p1})
	assert.ErrorIs(t, err, hopfield.ErrOptionViolation)
}

func TestNetwork_PatternsAreCopies(t *testing.T) {
	nw, err := hopfield.New(9)
	require.NoError(t, err)
	src := p1.Clone()
	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{src}))

	src[0] = -1
	got := nw.Patterns()
	got[0][1] = 1
	assert.Equal(t, []bipolar.Pattern{p1}, nw.Patterns())
}

func TestNetwork_WithLinearAlgebra(t *testing.T) {
	la := &countingAlgebra{}
	nw, err := hopfield.New(8, hopfield.WithLinearAlgebra(la))
	require.NoError(t, err)
	require.NoError(t, nw.TrainPseudoinverse([]bipolar.Pattern{orthoA, orthoB}))
	assert.Equal(t, 1, la.inverse)
	assert.Equal(t, hopfield.RulePseudoinverse, nw.Weights().Rule())
}

// TestNetwork_ConcurrentRecallAndTrain runs readers against a retraining writer.
func TestNetwork_ConcurrentRecallAndTrain(t *testing.T) {
	nw, err := hopfield.New(8)
	require.NoError(t, err)
	require.NoError(t, nw.TrainHebb([]bipolar.Pattern{orthoA}))

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				res, err := nw.Recall(orthoA, hopfield.WithMode(hopfield.Asynchronous))
				assert.NoError(t, err)
				assert.Equal(t, 8, len(res.Pattern))
			}
		}()
	}
	for i := 0; i < 20; i++ {
		assert.NoError(t, nw.TrainHebb([]bipolar.Pattern{orthoA, orthoB}))
	}
	wg.Wait()
}
