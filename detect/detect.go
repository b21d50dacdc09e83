package detect

import (
	"strings"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/model"
)

// SplitLines normalizes line endings and splits the input into lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func IsChordLine(line string) bool {
	return constants.ChordLineRe.MatchString(line)
}

// IsStandardTabLine reports whether a line is unlabeled tab content: framed
// by at least one pipe, carrying only digits, dashes, technique symbols,
// whitespace and pipes.
func IsStandardTabLine(line string) bool {
	if !strings.Contains(line, "|") || !strings.Contains(line, "-") {
		return false
	}
	return constants.StandardTabCharsRe.MatchString(line)
}

// IsLabeledTabLine reports whether a line starts with a string letter and a
// separator followed by content holding at least one digit or dash.
func IsLabeledTabLine(line string) bool {
	m := constants.LabeledTabLineRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	return strings.ContainsAny(m[2], "-0123456789")
}

func IsTechniqueLegendLine(line string) bool {
	return constants.TechniqueLegendRe.MatchString(line)
}

// DetectFormat classifies an input text. The tests are applied in a fixed
// order: chord chart, standard tab, labeled tab. Every non-blank input falls
// into exactly one bucket or FormatNone.
func DetectFormat(text string) model.Format {
	var nonBlank []string
	for _, line := range SplitLines(text) {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}
	if len(nonBlank) == 0 {
		return model.FormatNone
	}

	var chordLines int
	for _, line := range nonBlank {
		if IsChordLine(line) {
			chordLines++
		}
	}
	if chordLines*2 > len(nonBlank) {
		return model.FormatChordChart
	}

	var standardLines int
	for _, line := range nonBlank {
		if IsStandardTabLine(line) {
			standardLines++
		}
	}
	if standardLines >= constants.MinGroupLines {
		return model.FormatStandardTab
	}

	// Labeled lines have to appear as a run of at least 3 to count as tab;
	// a lone "E: ..." line is more likely prose.
	var run, bestRun int
	for _, line := range nonBlank {
		if IsLabeledTabLine(line) {
			run++
			if run > bestRun {
				bestRun = run
			}
		} else {
			run = 0
		}
	}
	if bestRun >= constants.MinGroupLines {
		return model.FormatLabeledTab
	}

	return model.FormatNone
}
