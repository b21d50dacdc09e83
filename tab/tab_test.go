package tab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabvox/tabvox/model"
)

func standardLines(first string) []string {
	lines := []string{first}
	for len(lines) < 6 {
		lines = append(lines, "|------------|")
	}
	return lines
}

func TestLabeledTabSimultaneousNotesFormOneChord(t *testing.T) {
	res := Parse([]string{
		"E:--3--",
		"B:--0--",
		"G:--0--",
		"D:-----",
		"A:-----",
		"E:-----",
	})

	assert := assert.New(t)
	assert.Len(res.Sequences, 1)
	assert.Len(res.Sequences[0].Groups, 1)

	g := res.Sequences[0].Groups[0]
	assert.Equal(2, g.Position)
	assert.True(g.IsChord)
	assert.Len(g.Notes, 3)
	assert.Equal("high E", g.Notes[0].StringName)
	assert.Equal(model.FretValue(3), g.Notes[0].Fret)
	assert.Equal("B", g.Notes[1].StringName)
	assert.Equal(model.FretValue(0), g.Notes[1].Fret)
	assert.Equal("G", g.Notes[2].StringName)
}

func TestLabeledStringIdentityIsPositional(t *testing.T) {
	// both E lines carry a note; the first one is the high string
	res := Parse([]string{
		"E:--3-----",
		"B:--------",
		"G:--------",
		"D:--------",
		"A:--------",
		"E:------1-",
	})

	assert := assert.New(t)
	assert.Len(res.Sequences, 1)
	groups := res.Sequences[0].Groups
	assert.Len(groups, 2)
	assert.Equal("high E", groups[0].Notes[0].StringName)
	assert.Equal("low E", groups[1].Notes[0].StringName)
}

func TestAllDashesYieldsNoSequences(t *testing.T) {
	lines := []string{}
	for i := 0; i < 6; i++ {
		lines = append(lines, "|------|")
	}
	res := Parse(lines)
	assert.Empty(t, res.Sequences)
}

func TestTwoDigitFret(t *testing.T) {
	res := Parse(standardLines("|--15---------|"))

	assert := assert.New(t)
	assert.Len(res.Sequences, 1)
	groups := res.Sequences[0].Groups
	assert.Len(groups, 1)
	assert.Equal(3, groups[0].Position)
	assert.Equal(model.FretValue(15), groups[0].Notes[0].Fret)
}

func TestTechniqueSymbolDoesNotShiftFret(t *testing.T) {
	plain := Parse(standardLines("|--5---------|"))
	marked := Parse(standardLines("|--5h--------|"))

	assert := assert.New(t)
	assert.Equal(
		plain.Sequences[0].Groups[0].Notes[0].Fret,
		marked.Sequences[0].Groups[0].Notes[0].Fret,
	)
	assert.Empty(plain.Sequences[0].Groups[0].Notes[0].Techniques)
	assert.Equal([]string{"hammer-on"}, marked.Sequences[0].Groups[0].Notes[0].Techniques)
}

func TestHammerRunParsesBothNotes(t *testing.T) {
	res := Parse(standardLines("|-5h7--------|"))

	assert := assert.New(t)
	groups := res.Sequences[0].Groups
	assert.Len(groups, 2)
	assert.Equal(model.FretValue(5), groups[0].Notes[0].Fret)
	assert.Equal([]string{"hammer-on"}, groups[0].Notes[0].Techniques)
	assert.Equal(model.FretValue(7), groups[1].Notes[0].Fret)
	assert.Equal([]string{"hammer-on"}, groups[1].Notes[0].Techniques)
}

func TestMutedHit(t *testing.T) {
	res := Parse(standardLines("|--x---------|"))

	groups := res.Sequences[0].Groups
	assert.Len(t, groups, 1)
	assert.True(t, groups[0].Notes[0].Fret.IsMuted())
}

func TestStandardStringIdentityIsPositional(t *testing.T) {
	res := Parse([]string{
		"|------|",
		"|--1---|",
		"|------|",
		"|------|",
		"|------|",
		"|--3---|",
	})

	assert := assert.New(t)
	groups := res.Sequences[0].Groups
	assert.Len(groups, 1)
	assert.True(groups[0].IsChord)
	assert.Equal(1, groups[0].Notes[0].StringIndex)
	assert.Equal("B", groups[0].Notes[0].StringName)
	assert.Equal(5, groups[0].Notes[1].StringIndex)
	assert.Equal("low E", groups[0].Notes[1].StringName)
}

func TestBlankAndLegendLinesDontSplitAGroup(t *testing.T) {
	res := Parse([]string{
		"|--1---|",
		"|------|",
		"|------|",
		"h = hammer on",
		"|------|",
		"|------|",
		"|--3---|",
	})

	assert := assert.New(t)
	assert.Len(res.Sequences, 1)
	assert.Len(res.Sequences[0].Groups, 1)
	assert.Len(res.Sequences[0].Groups[0].Notes, 2)
}

func TestAnnotationLineSplitsGroups(t *testing.T) {
	var lines []string
	lines = append(lines, standardLines("|--1---------|")...)
	lines = append(lines, "", "Verse 2", "")
	lines = append(lines, standardLines("|--2---------|")...)

	res := Parse(lines)

	assert := assert.New(t)
	assert.Len(res.Sequences, 2)
	assert.Equal(1, res.Sequences[0].Section)
	assert.Equal(2, res.Sequences[1].Section)
}

func TestNearbyAnnotationAttachesToNoteGroup(t *testing.T) {
	res := Parse([]string{
		"Intro",
		"E:--3--",
		"B:-----",
		"G:-----",
	})

	assert := assert.New(t)
	assert.Len(res.Sequences, 1)
	assert.Equal("Intro", res.Sequences[0].Groups[0].Annotation)
}

func TestFarAnnotationIsNotAttached(t *testing.T) {
	res := Parse([]string{
		"Intro",
		"",
		"",
		"",
		"E:--3--",
		"B:-----",
		"G:-----",
	})

	assert := assert.New(t)
	assert.Len(res.Sequences, 1)
	assert.Equal("", res.Sequences[0].Groups[0].Annotation)
	// the annotation itself is still extracted
	assert.Len(res.Annotations, 1)
}

func TestCategorizeRuleOrder(t *testing.T) {
	cases := []struct {
		text string
		want model.AnnotationCategory
	}{
		{"[Chorus]", model.CategorySection},
		{"II. Verse", model.CategorySection},
		{"Intro riff", model.CategorySection},
		{`"hello darkness my old friend"`, model.CategoryLyrics},
		{"0:15", model.CategoryTiming},
		{"repeat x3", model.CategoryInstruction},
		{"Am F C G", model.CategoryChords},
		{"play this part quietly", model.CategoryNote},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			assert.Equal(t, c.want, Categorize(c.text))
		})
	}
}

func TestBestEffortNeverPanics(t *testing.T) {
	// assorted near-tab garbage must parse to something, even if empty
	inputs := []string{
		"|--99--|\n|------|\n|------|",
		"E:\nB:\nG:",
		strings.Repeat("|-|\n", 10),
		"|--5h7p5/9\\7~--|\n|---|\n|---|",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			Parse(strings.Split(input, "\n"))
		})
	}
}
