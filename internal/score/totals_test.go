package score

import (
	"testing"

	"bowling/internal/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningTotals(t *testing.T) {
	assert.Equal(t, points(7, 16, 25), RunningTotals(points(7, 9, 9)))
	assert.Empty(t, RunningTotals(nil))
}

func TestRunningTotals_UndeterminedPropagates(t *testing.T) {
	scores := []Score{Points(7), Undetermined, Points(5)}
	assert.Equal(t, []Score{Points(7), Undetermined, Undetermined}, RunningTotals(scores))
}

func TestTotal(t *testing.T) {
	total, ok := Total(points(7, 9, 9))
	assert.True(t, ok)
	assert.Equal(t, 25, total)

	_, ok = Total([]Score{Points(7), Undetermined})
	assert.False(t, ok)

	total, ok = Total(nil)
	assert.True(t, ok)
	assert.Equal(t, 0, total)
}

func TestCalculator_Card_PerfectGame(t *testing.T) {
	perfect := repeat(frame.Frame{10, 0}, 9)
	perfect = append(perfect, frame.Frame{10, 10, 10})

	calculator, err := Default()
	require.NoError(t, err)

	card, err := calculator.Card(perfect)
	require.NoError(t, err)
	// The ninth frame waits for a third frame that never comes.
	assert.Equal(t, Undetermined, card.Scores[8])
	assert.Equal(t, Points(30), card.Scores[9])
	assert.Equal(t, append(points(30, 60, 90, 120, 150, 180, 210, 240), Undetermined, Undetermined), card.Totals)
	assert.Equal(t, Undetermined, card.Total)
	assert.False(t, card.Complete)
}

func TestCalculator_Card_Complete(t *testing.T) {
	game := repeat(frame.Frame{10, 0}, 8)
	game = append(game, frame.Frame{3, 4}, frame.Frame{5, 5, 5})

	calculator, err := Default()
	require.NoError(t, err)

	card, err := calculator.Card(game)
	require.NoError(t, err)
	assert.Equal(t, points(30, 30, 30, 30, 30, 30, 27, 17, 7, 15), card.Scores)
	assert.Equal(t, Points(246), card.Total)
	assert.True(t, card.Complete)
}

func TestCalculator_Card_InProgress(t *testing.T) {
	calculator, err := Default()
	require.NoError(t, err)

	card, err := calculator.Card(frame.Game{{3, 4}, {10, 0}})
	require.NoError(t, err)
	assert.Equal(t, []Score{Points(7), Undetermined}, card.Scores)
	assert.Equal(t, []Score{Points(7), Undetermined}, card.Totals)
	assert.Equal(t, Undetermined, card.Total)
	assert.False(t, card.Complete)
}

func TestCalculator_Card_ShortGameIsNotComplete(t *testing.T) {
	calculator, err := Default()
	require.NoError(t, err)

	card, err := calculator.Card(frame.Game{{3, 4}})
	require.NoError(t, err)
	assert.Equal(t, Points(7), card.Total)
	assert.False(t, card.Complete)
}

func TestCalculator_Card_Invalid(t *testing.T) {
	calculator, err := Default()
	require.NoError(t, err)

	card, err := calculator.Card(frame.Game{{1}})
	assert.Nil(t, card)
	assert.Error(t, err)
}
