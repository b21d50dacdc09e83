package tab

import (
	"strings"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/model"
)

// Proximity thresholds for attaching an annotation to a note group. These
// are heuristics, kept as variables so callers can tune them.
var (
	AnnotationLineRadius   = 2
	AnnotationColumnRadius = 10
)

// extractAnnotations turns every non-blank line that is neither tab content
// nor a technique legend into one categorized annotation.
func extractAnnotations(infos []lineInfo) []model.Annotation {
	var res []model.Annotation
	for _, info := range infos {
		if info.blank || info.standard || info.labeled || info.legend {
			continue
		}
		text := strings.TrimSpace(info.text)
		res = append(res, model.Annotation{
			Text:         text,
			SourceLine:   info.idx,
			SourceColumn: len(info.text) - len(strings.TrimLeft(info.text, " \t")),
			Category:     Categorize(text),
		})
	}
	return res
}

// Categorize infers an annotation category from the line's shape. The rules
// run in a fixed order; swapping them changes classifications, so the order
// is part of the contract.
func Categorize(text string) model.AnnotationCategory {
	switch {
	case constants.SectionRe.MatchString(text):
		return model.CategorySection
	case constants.LyricsRe.MatchString(text):
		return model.CategoryLyrics
	case constants.TimingRe.MatchString(text):
		return model.CategoryTiming
	case constants.InstructionRe.MatchString(text):
		return model.CategoryInstruction
	case constants.ChordsLineRe.MatchString(text):
		return model.CategoryChords
	default:
		return model.CategoryNote
	}
}

// nearestAnnotation finds the first annotation within the proximity window
// of a note group. Matching is lenient and non-exclusive: several note
// groups may pick up the same annotation.
func nearestAnnotation(anns []model.Annotation, firstLine, pos int) *model.Annotation {
	for i := range anns {
		if abs(anns[i].SourceLine-firstLine) > AnnotationLineRadius {
			continue
		}
		if abs(anns[i].SourceColumn-pos) > AnnotationColumnRadius {
			continue
		}
		return &anns[i]
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
