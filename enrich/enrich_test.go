package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabvox/tabvox/model"
)

func seqWithRun(firstFret, secondFret model.FretValue, firstTechs, secondTechs []string) model.Sequence {
	return model.Sequence{
		Section: 1,
		Groups: []model.NoteGroup{
			{Position: 1, Notes: []model.Note{{StringIndex: 0, Fret: firstFret, Techniques: firstTechs}}},
			{Position: 3, Notes: []model.Note{{StringIndex: 0, Fret: secondFret, Techniques: secondTechs}}},
		},
	}
}

func TestHammerOnLooksBack(t *testing.T) {
	seqs := Enhance([]model.Sequence{seqWithRun(5, 7, nil, []string{"hammer-on"})})

	note := seqs[0].Groups[1].Notes[0]
	assert := assert.New(t)
	assert.Len(note.Details, 1)
	assert.Equal("hammer-on", note.Details[0].Name)
	assert.Equal("Hammer from 5 to 7", note.Details[0].Context)
}

func TestHammerOnWithoutNeighborHasEmptyContext(t *testing.T) {
	seqs := Enhance([]model.Sequence{seqWithRun(5, 7, []string{"hammer-on"}, nil)})

	note := seqs[0].Groups[0].Notes[0]
	assert.Len(t, note.Details, 1)
	assert.Equal(t, "", note.Details[0].Context)
	assert.NotEmpty(t, note.Details[0].Description)
}

func TestPullOffLooksForward(t *testing.T) {
	seqs := Enhance([]model.Sequence{seqWithRun(7, 5, []string{"pull-off"}, nil)})

	note := seqs[0].Groups[0].Notes[0]
	assert.Equal(t, "Pull off from 7 to 5", note.Details[0].Context)
}

func TestSlideUpLooksForward(t *testing.T) {
	seqs := Enhance([]model.Sequence{seqWithRun(5, 9, []string{"slide up"}, nil)})

	note := seqs[0].Groups[0].Notes[0]
	assert.Equal(t, "Slide up from 5 to 9", note.Details[0].Context)
}

func TestBareSlideInfersDirection(t *testing.T) {
	seqs := Enhance([]model.Sequence{seqWithRun(9, 5, []string{"slide"}, nil)})

	note := seqs[0].Groups[0].Notes[0]
	assert.Equal(t, "Slide down from 9 to 5", note.Details[0].Context)
}

func TestBendContextIsStatic(t *testing.T) {
	seqs := Enhance([]model.Sequence{seqWithRun(8, 8, []string{"bend"}, nil)})

	note := seqs[0].Groups[0].Notes[0]
	assert.Equal(t, "Bend the string at fret 8", note.Details[0].Context)
}

func TestDifferentStringNeighborIsIgnored(t *testing.T) {
	seq := model.Sequence{
		Section: 1,
		Groups: []model.NoteGroup{
			{Notes: []model.Note{{StringIndex: 1, Fret: 5}}},
			{Notes: []model.Note{{StringIndex: 0, Fret: 7, Techniques: []string{"hammer-on"}}}},
		},
	}
	seqs := Enhance([]model.Sequence{seq})

	note := seqs[0].Groups[1].Notes[0]
	assert.Equal(t, "", note.Details[0].Context)
}

func TestEnhanceLeavesInputIntact(t *testing.T) {
	in := []model.Sequence{seqWithRun(5, 7, nil, []string{"hammer-on"})}
	Enhance(in)
	assert.Empty(t, in[0].Groups[1].Notes[0].Details)
}

func TestEnhancePreservesStructure(t *testing.T) {
	in := []model.Sequence{seqWithRun(5, 7, nil, []string{"hammer-on"})}
	out := Enhance(in)

	assert := assert.New(t)
	assert.Len(out, 1)
	assert.Equal(in[0].Section, out[0].Section)
	assert.Len(out[0].Groups, 2)
	assert.Equal(in[0].Groups[0].Position, out[0].Groups[0].Position)
}
