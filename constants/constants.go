package constants

import (
	"os"
	"regexp"
)

// String name tables indexed high to low: index 0 is the highest-pitched
// string. Resolved once at init, never mutated.
var (
	StringNames6 = []string{"high E", "B", "G", "D", "A", "low E"}
	StringNames7 = []string{"high E", "B", "G", "D", "A", "low E", "low B"}
	StringNames8 = []string{"high E", "B", "G", "D", "A", "low E", "low B", "low F#"}
)

// StringNamesFor returns the name table for a string count. Groups smaller
// than 6 strings get the top of the 6-string table.
func StringNamesFor(count int) []string {
	switch {
	case count == 7:
		return StringNames7
	case count >= 8:
		return StringNames8
	case count >= 6:
		return StringNames6
	default:
		return StringNames6[:count]
	}
}

// TechniqueNames maps a tab symbol to its technique name.
var TechniqueNames = map[byte]string{
	'h':  "hammer-on",
	'p':  "pull-off",
	'b':  "bend",
	'^':  "bend",
	'r':  "release bend",
	's':  "slide",
	'/':  "slide up",
	'\\': "slide down",
	'~':  "vibrato",
	'v':  "vibrato",
	't':  "tap",
}

// Tab groups hold between 3 and 8 aligned string lines.
const (
	MinGroupLines = 3
	MaxGroupLines = 8
)

// Line classification patterns. Order of application matters and is part of
// the contract: chord line, standard tab line, labeled tab line, technique
// legend, then the annotation categories section, lyrics, timing,
// instruction, chords, with note as the fallback.
var (
	// "F: 1-3-3-2-1-1", "Am7: X-0-2-0-1-0"
	ChordLineRe = regexp.MustCompile(`^\s*([A-G][#b]?[A-Za-z0-9()+/]*)\s*:\s*((?:[0-9]{1,2}|[xX])(?:\s*-\s*(?:[0-9]{1,2}|[xX]))+)\s*$`)

	// Unlabeled tab content: digits, dashes, technique symbols, pipes.
	StandardTabCharsRe = regexp.MustCompile(`^\s*[-0-9hpbrsxXtv~^/\\| ]+\s*$`)

	// "E|--3--" or "e:--0--": string letter, separator, tab content.
	LabeledTabLineRe = regexp.MustCompile(`^\s*([EADGBeadgb])\s*[|:]([-0-9hpbrsxXtv~^/\\| ]*)$`)

	// "h = hammer on"
	TechniqueLegendRe = regexp.MustCompile(`^\s*[hpbrstvxHPBRSTVX~^/\\]\s*[=:-]\s*[A-Za-z][A-Za-z() \-]*$`)

	// Annotation categories, checked in this order.
	SectionRe     = regexp.MustCompile(`^\s*(?:\[[^\]]+\].*|[IVXivx]+[.):\s].*|(?i:verse|chorus|intro|bridge|outro|solo|riff)\b.*)$`)
	LyricsRe      = regexp.MustCompile(`"[^"]+"`)
	TimingRe      = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	InstructionRe = regexp.MustCompile(`(?i)\b(?:repeat|times|x\s?\d+|\d+\s?x)\b`)
	chordToken    = `[A-G][#b]?(?:maj|min|dim|aug|sus|add|m)?\d*(?:/[A-G][#b]?)?`
	ChordsLineRe  = regexp.MustCompile(`^\s*(?:` + chordToken + `\s+)+` + chordToken + `\s*$`)
)

func GetServePort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func GetOutDir() string {
	if path := os.Getenv("OUT_PATH"); path != "" {
		return path
	}
	return "./out"
}
