package model

// FretValue is a fret number 0-24 or the Muted sentinel.
type FretValue uint8

const (
	MaxFret FretValue = 24
	Muted   FretValue = 0xFF
)

func (f FretValue) IsMuted() bool {
	return f == Muted
}

// Valid reports whether the value is a playable fret or the mute marker.
func (f FretValue) Valid() bool {
	return f == Muted || f <= MaxFret
}

// Chord is one parsed chord-chart entry. Frets are stored in the order the
// chart writes them: lowest-pitched string first.
type Chord struct {
	Name  string
	Frets []FretValue // length 6, 7 or 8
}
