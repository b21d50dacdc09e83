package model

// Format is the detected shape of an input text.
type Format int

const (
	FormatNone Format = iota
	FormatChordChart
	FormatStandardTab
	FormatLabeledTab
)

func (f Format) String() string {
	switch f {
	case FormatChordChart:
		return "chord chart"
	case FormatStandardTab:
		return "standard tab"
	case FormatLabeledTab:
		return "labeled tab"
	}
	return "none"
}

type AnnotationCategory string

const (
	CategorySection     AnnotationCategory = "section"
	CategoryLyrics      AnnotationCategory = "lyrics"
	CategoryTiming      AnnotationCategory = "timing"
	CategoryInstruction AnnotationCategory = "instruction"
	CategoryChords      AnnotationCategory = "chords"
	CategoryNote        AnnotationCategory = "note"
)

// Annotation is one free-text line found between tab lines.
type Annotation struct {
	Text         string
	SourceLine   int
	SourceColumn int
	Category     AnnotationCategory
}

// StringLine is one guitar string's playable content within a tab group.
// For labeled lines the label prefix is already stripped, so note columns
// are measured on Content directly.
type StringLine struct {
	Content     string
	SourceLine  int
	StringIndex int // 0 = highest-pitched string in the group
	StringName  string
}

// TabGroup is one contiguous block of 3-8 aligned string lines.
type TabGroup struct {
	Kind  Format
	Lines []StringLine
}

type Note struct {
	StringName  string
	StringIndex int
	Fret        FretValue
	Techniques  []string
	Details     []TechniqueDetail
}

type TechniqueDetail struct {
	Name        string
	Description string
	Context     string // empty when no same-string neighbor was found
}

// NoteGroup is one playing instant: every note parsed at the same column.
type NoteGroup struct {
	Position   int
	IsChord    bool
	Notes      []Note
	Annotation string
}

// Sequence is one tab group's fully parsed, position-ordered output.
type Sequence struct {
	Section int
	Groups  []NoteGroup
}

// TabResult is everything the tablature parser extracts from one input.
type TabResult struct {
	Sequences   []Sequence
	Annotations []Annotation
}
