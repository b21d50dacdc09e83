// Package convert wires the pipeline together: one call turns one tab text
// into one accessible-text description, or a typed error. The pipeline is
// pure and keeps no state between calls, so it is safe to run concurrently.
package convert

import (
	"errors"
	"strings"

	"github.com/tabvox/tabvox/chart"
	"github.com/tabvox/tabvox/detect"
	"github.com/tabvox/tabvox/enrich"
	"github.com/tabvox/tabvox/model"
	"github.com/tabvox/tabvox/render"
	"github.com/tabvox/tabvox/tab"
)

var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrNoValidFormat     = errors.New("no recognizable chord chart or tablature")
	ErrNoValidChords     = errors.New("chord chart contains no valid chords")
	ErrNoNotesFound      = errors.New("tablature contains no playable notes")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Convert transforms tab text into its spoken-text description. Individual
// malformed lines are skipped silently; only an entirely empty result is an
// error.
func Convert(text string, settings model.Settings) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	lines := detect.SplitLines(text)

	switch detect.DetectFormat(text) {
	case model.FormatChordChart:
		chords := chart.Parse(lines)
		if len(chords) == 0 {
			return "", ErrNoValidChords
		}
		return render.Chords(chords, settings), nil

	case model.FormatStandardTab, model.FormatLabeledTab:
		res := tab.Parse(lines)
		if len(res.Sequences) == 0 {
			return "", ErrNoNotesFound
		}
		res.Sequences = enrich.Enhance(res.Sequences)
		return render.Tablature(res, settings), nil

	case model.FormatNone:
		return "", ErrNoValidFormat
	}
	return "", ErrUnsupportedFormat
}
