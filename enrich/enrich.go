package enrich

import (
	"fmt"

	"github.com/tabvox/tabvox/model"
)

// descriptions are the static half of every technique detail.
var descriptions = map[string]string{
	"hammer-on":    "Strike the note with a fretting finger without picking",
	"pull-off":     "Release the fretting finger to sound the next note",
	"bend":         "Push the string up to raise the pitch",
	"release bend": "Let the bent string return to pitch",
	"slide":        "Slide the fretting finger along the string",
	"slide up":     "Slide the fretting finger up the neck",
	"slide down":   "Slide the fretting finger down the neck",
	"vibrato":      "Rock the fretting finger to waver the pitch",
	"tap":          "Tap the fret with the picking hand",
}

// Enhance attaches technique details to every note carrying techniques.
// It is a pure transform: the input sequences are not modified.
func Enhance(seqs []model.Sequence) []model.Sequence {
	out := make([]model.Sequence, len(seqs))
	for i, seq := range seqs {
		out[i] = enhanceSequence(seq)
	}
	return out
}

func enhanceSequence(seq model.Sequence) model.Sequence {
	res := model.Sequence{Section: seq.Section, Groups: make([]model.NoteGroup, len(seq.Groups))}
	for gi, group := range seq.Groups {
		ng := group
		ng.Notes = make([]model.Note, len(group.Notes))
		for ni, note := range group.Notes {
			for _, tech := range note.Techniques {
				note.Details = append(note.Details, model.TechniqueDetail{
					Name:        tech,
					Description: descriptions[tech],
					Context:     deriveContext(seq.Groups, gi, note, tech),
				})
			}
			ng.Notes[ni] = note
		}
		res.Groups[gi] = ng
	}
	return res
}

// deriveContext builds the directional phrase for position-dependent
// techniques. Hammer-ons look back one note group, pull-offs and slides look
// forward; bends are framed at their own fret. A missing same-string
// neighbor leaves the context empty.
func deriveContext(groups []model.NoteGroup, gi int, note model.Note, tech string) string {
	switch tech {
	case "hammer-on":
		if prev, ok := neighborFret(groups, gi-1, note.StringIndex); ok && !note.Fret.IsMuted() {
			return fmt.Sprintf("Hammer from %d to %d", prev, note.Fret)
		}
	case "pull-off":
		if next, ok := neighborFret(groups, gi+1, note.StringIndex); ok && !note.Fret.IsMuted() {
			return fmt.Sprintf("Pull off from %d to %d", note.Fret, next)
		}
	case "slide", "slide up", "slide down":
		if next, ok := neighborFret(groups, gi+1, note.StringIndex); ok && !note.Fret.IsMuted() {
			direction := "up"
			if tech == "slide down" || (tech == "slide" && next < note.Fret) {
				direction = "down"
			}
			return fmt.Sprintf("Slide %s from %d to %d", direction, note.Fret, next)
		}
	case "bend":
		if !note.Fret.IsMuted() {
			return fmt.Sprintf("Bend the string at fret %d", note.Fret)
		}
	}
	return ""
}

// neighborFret finds a numeric fret on the same string in the note group at
// index gi, if there is one.
func neighborFret(groups []model.NoteGroup, gi, stringIndex int) (model.FretValue, bool) {
	if gi < 0 || gi >= len(groups) {
		return 0, false
	}
	for _, n := range groups[gi].Notes {
		if n.StringIndex == stringIndex && !n.Fret.IsMuted() {
			return n.Fret, true
		}
	}
	return 0, false
}
