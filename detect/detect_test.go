package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabvox/tabvox/model"
)

func TestDetectsChordChart(t *testing.T) {
	text := "F: 1-3-3-2-1-1\nC: X-3-2-0-1-0"
	assert.Equal(t, model.FormatChordChart, DetectFormat(text))
}

func TestDetectsStandardTab(t *testing.T) {
	text := "|--0-----|\n|----1---|\n|------2-|\n|--------|\n|--------|\n|--3-----|"
	assert.Equal(t, model.FormatStandardTab, DetectFormat(text))
}

func TestDetectsLabeledTab(t *testing.T) {
	text := "E:--3--\nB:--0--\nG:--0--\nD:-----\nA:-----\nE:-----"
	assert.Equal(t, model.FormatLabeledTab, DetectFormat(text))
}

func TestGarbageIsNone(t *testing.T) {
	assert.Equal(t, model.FormatNone, DetectFormat("asdf\nqwer"))
}

func TestBlankIsNone(t *testing.T) {
	assert.Equal(t, model.FormatNone, DetectFormat("\n  \n\n"))
}

func TestChordChartNeedsMajority(t *testing.T) {
	// one chord line out of two non-blank lines is not a chart
	text := "F: 1-3-3-2-1-1\nsome random prose"
	assert.Equal(t, model.FormatNone, DetectFormat(text))
}

func TestLabeledTabNeedsARun(t *testing.T) {
	// two labeled lines are too few to count as tablature
	text := "E:--3--\nB:--0--\njust a note to self"
	assert.Equal(t, model.FormatNone, DetectFormat(text))
}

func TestLinePredicates(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsStandardTabLine("|------|"))
	assert.True(IsStandardTabLine("|--5h7--12--|"))
	assert.False(IsStandardTabLine("------"))
	assert.False(IsStandardTabLine("hello |"))

	assert.True(IsLabeledTabLine("E|--3--"))
	assert.True(IsLabeledTabLine("e:--0--|"))
	assert.False(IsLabeledTabLine("E: hello"))
	assert.False(IsLabeledTabLine("F: 1-3-3-2-1-1"))

	assert.True(IsChordLine("F: 1-3-3-2-1-1"))
	assert.True(IsChordLine("Am7: X-0-2-0-1-0"))
	assert.False(IsChordLine("F 1-3-3-2-1-1"))
	assert.False(IsChordLine("F: one-two"))

	assert.True(IsTechniqueLegendLine("h = hammer on"))
	assert.True(IsTechniqueLegendLine("~ : vibrato"))
	assert.False(IsTechniqueLegendLine("play it loud"))
}
