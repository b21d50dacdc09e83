package chart

import (
	"strconv"
	"strings"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/model"
)

// Parse converts "Name: fret-fret-..." lines into chord records. Lines that
// don't match the chord shape are skipped, and chords with a fret count
// outside 6-8 are dropped. A chart can legitimately come back empty; the
// caller decides whether that is an error.
func Parse(lines []string) []model.Chord {
	var chords []model.Chord
	for _, line := range lines {
		m := constants.ChordLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		frets := parseFretList(m[2])
		if len(frets) < 6 || len(frets) > constants.MaxGroupLines {
			continue
		}
		chords = append(chords, model.Chord{
			Name:  strings.TrimSpace(m[1]),
			Frets: frets,
		})
	}
	return chords
}

// parseFretList is lenient: X and anything unparseable or out of range
// becomes Muted rather than failing the chord.
func parseFretList(list string) []model.FretValue {
	tokens := strings.Split(list, "-")
	frets := make([]model.FretValue, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if strings.EqualFold(token, "x") {
			frets = append(frets, model.Muted)
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > int(model.MaxFret) {
			frets = append(frets, model.Muted)
			continue
		}
		frets = append(frets, model.FretValue(n))
	}
	return frets
}
