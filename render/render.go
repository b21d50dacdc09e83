package render

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/model"
)

// Ordinal returns the English ordinal suffix for n (1st, 2nd, 3rd, 11th...).
func Ordinal(n int) string {
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func fretPhrase(f model.FretValue) string {
	switch {
	case f.IsMuted():
		return "muted"
	case f == 0:
		return "open"
	default:
		return fmt.Sprintf("%d%s fret", f, Ordinal(int(f)))
	}
}

func fretToken(f model.FretValue) string {
	if f.IsMuted() {
		return "x"
	}
	return fmt.Sprintf("%d", f)
}

// Chords renders a chord chart, one block per chord, one line per string
// from the highest-pitched string down.
func Chords(chords []model.Chord, s model.Settings) string {
	var b strings.Builder
	for ci, chord := range chords {
		if ci > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Chord %s:\n", chord.Name)
		names := constants.StringNamesFor(len(chord.Frets))
		for i := len(chord.Frets) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "%s: %s\n", stringLabel(names, len(chord.Frets)-1-i, s), fretPhrase(chord.Frets[i]))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func stringLabel(names []string, idx int, s model.Settings) string {
	if s.UseStringNames && idx < len(names) {
		return names[idx] + " string"
	}
	return fmt.Sprintf("string %d", idx+1)
}

// Tablature renders parsed tab: an optional summary of the annotations,
// then one section per sequence with one line per note group.
func Tablature(res model.TabResult, s model.Settings) string {
	var b strings.Builder
	if s.IncludeTiming {
		writeInfoBlock(&b, res.Annotations)
	}
	for si, seq := range res.Sequences {
		if si > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionHeader(seq))
		for _, g := range seq.Groups {
			b.WriteString(renderGroup(g, s))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeInfoBlock(b *strings.Builder, anns []model.Annotation) {
	byCategory := map[model.AnnotationCategory][]string{}
	for _, a := range anns {
		byCategory[a.Category] = append(byCategory[a.Category], a.Text)
	}
	if len(byCategory) == 0 {
		return
	}
	b.WriteString("Tab Information:\n")
	if texts := byCategory[model.CategorySection]; len(texts) > 0 {
		fmt.Fprintf(b, "Sections: %s\n", strings.Join(texts, ", "))
	}
	if texts := byCategory[model.CategoryTiming]; len(texts) > 0 {
		fmt.Fprintf(b, "Timing: %s\n", strings.Join(texts, ", "))
	}
	if texts := byCategory[model.CategoryChords]; len(texts) > 0 {
		fmt.Fprintf(b, "Chord progression: %s\n", strings.Join(texts, ", "))
	}
	if texts := byCategory[model.CategoryInstruction]; len(texts) > 0 {
		fmt.Fprintf(b, "Instructions: %s\n", strings.Join(texts, ", "))
	}
	if len(byCategory[model.CategoryLyrics]) > 0 {
		b.WriteString("Contains lyrics\n")
	}
	b.WriteString("\n")
}

func sectionHeader(seq model.Sequence) string {
	var distinct []string
	for _, g := range seq.Groups {
		if g.Annotation != "" && !slices.Contains(distinct, g.Annotation) {
			distinct = append(distinct, g.Annotation)
		}
	}
	if len(distinct) > 0 {
		return fmt.Sprintf("Section %d (%s):\n", seq.Section, strings.Join(distinct, ", "))
	}
	return fmt.Sprintf("Section %d:\n", seq.Section)
}

func renderGroup(g model.NoteGroup, s model.Settings) string {
	var b strings.Builder
	if g.IsChord {
		b.WriteString(renderChordGroup(g, s))
	} else {
		b.WriteString(renderSingleNote(g.Notes[0], s))
	}
	b.WriteString(techniqueText(g, s))
	if g.Annotation != "" {
		fmt.Fprintf(&b, " (%s)", g.Annotation)
	}
	return b.String()
}

func renderSingleNote(n model.Note, s model.Settings) string {
	ref := noteRef(n, s)
	if !s.VerboseMode {
		return fmt.Sprintf("%s: %s", ref, fretToken(n.Fret))
	}
	switch {
	case n.Fret.IsMuted():
		return fmt.Sprintf("Mute the %s", ref)
	case n.Fret == 0:
		return fmt.Sprintf("Play the %s open", ref)
	default:
		return fmt.Sprintf("Play %s on the %s", fretPhrase(n.Fret), ref)
	}
}

// renderChordGroup lists every string verbosely, or joins the fret pattern
// with hyphens in compact mode, highest string first.
func renderChordGroup(g model.NoteGroup, s model.Settings) string {
	if !s.VerboseMode {
		tokens := make([]string, len(g.Notes))
		for i, n := range g.Notes {
			tokens[i] = fretToken(n.Fret)
		}
		return "Chord " + strings.Join(tokens, "-")
	}
	parts := make([]string, len(g.Notes))
	for i, n := range g.Notes {
		parts[i] = fmt.Sprintf("%s %s", noteRef(n, s), fretPhrase(n.Fret))
	}
	return "Play chord: " + strings.Join(parts, ", ")
}

func noteRef(n model.Note, s model.Settings) string {
	if s.UseStringNames && n.StringName != "" {
		return n.StringName + " string"
	}
	return fmt.Sprintf("string %d", n.StringIndex+1)
}

func techniqueText(g model.NoteGroup, s model.Settings) string {
	if !s.IncludeTechniqueDetails {
		return ""
	}
	if s.VerboseMode {
		var parts []string
		for _, n := range g.Notes {
			for _, d := range n.Details {
				if d.Context != "" {
					parts = append(parts, d.Context)
				} else if d.Description != "" {
					parts = append(parts, fmt.Sprintf("%s (%s)", d.Name, d.Description))
				} else if d.Name != "" {
					parts = append(parts, d.Name)
				}
			}
			// unenriched notes still announce their technique names
			if len(n.Details) == 0 {
				parts = append(parts, n.Techniques...)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		return ", " + strings.Join(parts, ", ")
	}
	var names []string
	for _, n := range g.Notes {
		for _, tech := range n.Techniques {
			if !slices.Contains(names, tech) {
				names = append(names, tech)
			}
		}
	}
	if len(names) == 0 {
		return ""
	}
	return " " + strings.Join(names, "+")
}
