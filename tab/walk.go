package tab

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/model"
	"github.com/tabvox/tabvox/util"
)

// techniqueWindow is how many characters before and after a fret are
// scanned for technique symbols.
const techniqueWindow = 2

// walkGroup walks a tab group column by column. Every column holding at
// least one note becomes one NoteGroup; simultaneous notes form a chord.
func walkGroup(g model.TabGroup, section int, anns []model.Annotation) model.Sequence {
	maxLen := 0
	for _, sl := range g.Lines {
		if len(sl.Content) > maxLen {
			maxLen = len(sl.Content)
		}
	}

	firstLine := 0
	if len(g.Lines) > 0 {
		firstLine = g.Lines[0].SourceLine
	}

	seq := model.Sequence{Section: section}
	for pos := 0; pos < maxLen; pos++ {
		var notes []model.Note
		for _, sl := range g.Lines {
			if note, ok := noteAt(sl, pos); ok {
				notes = append(notes, note)
			}
		}
		if len(notes) == 0 {
			continue
		}
		ng := model.NoteGroup{
			Position: pos,
			IsChord:  len(notes) > 1,
			Notes:    notes,
		}
		if a := nearestAnnotation(anns, firstLine, pos); a != nil {
			ng.Annotation = a.Text
		}
		seq.Groups = append(seq.Groups, ng)
	}
	return seq
}

// noteAt tries to parse a note anchored at one column of one string line.
// Digit runs are consumed greedily so two-digit frets stay intact; a column
// inside a run is not a fresh note.
func noteAt(sl model.StringLine, pos int) (model.Note, bool) {
	line := sl.Content
	if pos >= len(line) {
		return model.Note{}, false
	}

	c := line[pos]
	switch {
	case c == '-' || c == '|' || c == ' ' || c == ':':
		return model.Note{}, false

	case isDigit(c):
		if pos > 0 && isDigit(line[pos-1]) {
			return model.Note{}, false
		}
		end := pos
		for end < len(line) && isDigit(line[end]) {
			end++
		}
		fret, err := strconv.Atoi(line[pos:end])
		if err != nil || fret > int(model.MaxFret) {
			return model.Note{}, false
		}
		return model.Note{
			StringName:  sl.StringName,
			StringIndex: sl.StringIndex,
			Fret:        model.FretValue(fret),
			Techniques:  techniquesAround(line, pos, end),
		}, true

	case c == 'x' || c == 'X':
		// muted hit, but only when no fret digits follow
		if pos+1 < len(line) && isDigit(line[pos+1]) {
			return model.Note{}, false
		}
		return model.Note{
			StringName:  sl.StringName,
			StringIndex: sl.StringIndex,
			Fret:        model.Muted,
			Techniques:  techniquesAround(line, pos, pos+1),
		}, true
	}
	return model.Note{}, false
}

// techniquesAround collects technique symbols in a fixed window immediately
// before and after a fret's digit run.
func techniquesAround(line string, start, end int) []string {
	var res []string
	add := func(i int) {
		if name, ok := constants.TechniqueNames[line[i]]; ok {
			if !slices.Contains(res, name) {
				res = append(res, name)
			}
		}
	}
	for i := util.Max(start-techniqueWindow, 0); i < start; i++ {
		add(i)
	}
	for i := end; i < util.Min(end+techniqueWindow, len(line)); i++ {
		add(i)
	}
	return res
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
