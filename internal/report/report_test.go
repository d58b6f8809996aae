package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dicesim/internal/dice"
	"github.com/cory-johannsen/dicesim/internal/report"
	"github.com/cory-johannsen/dicesim/internal/sim"
)

func TestWrite_Sections(t *testing.T) {
	p := sim.Params{Sides: 6, Dice: 2, Rolls: 1000}
	res := sim.Run(p, dice.NewSeededSource(3))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, p, res))
	out := buf.String()

	assert.Contains(t, out, "Rolling 2d6 for 1000 times...")
	assert.Contains(t, out, "-- Face frequencies (aggregated across all dice) --")
	assert.Contains(t, out, "-- Sum of 2 dice (2..=12, k = sum - 2) --")
	assert.Contains(t, out, "Theoretical mean sum: 7.0000")
	assert.Contains(t, out, "Empirical mean sum  : ")

	// 6 face rows + 11 sum rows, each with a percentage.
	assert.Equal(t, 17, strings.Count(out, "%)"))
	assert.Contains(t, out, "k=10: ")
	assert.NotContains(t, out, "k=11: ")
}

func TestWrite_KnownHistogram(t *testing.T) {
	p := sim.Params{Sides: 2, Dice: 1, Rolls: 4}
	res := sim.Result{
		FaceCounts: []int64{1, 3},
		SumCounts:  []int64{1, 3},
		MinSum:     1,
		MaxSum:     2,
	}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, p, res))
	out := buf.String()

	assert.Contains(t, out, "  2:          3 ( 75.00%) ")
	assert.Contains(t, out, "k= 0:          1 ( 25.00%) ")
	assert.Contains(t, out, "k= 1:          3 ( 75.00%) ")
	assert.Contains(t, out, "Theoretical mean sum: 1.5000")
	assert.Contains(t, out, "Empirical mean sum  : 1.7500")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_PropagatesWriteError(t *testing.T) {
	p := sim.Params{Sides: 6, Dice: 1, Rolls: 10}
	res := sim.Run(p, dice.NewSeededSource(1))

	err := report.Write(failingWriter{}, p, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
