package tab

import (
	"strings"

	"github.com/tabvox/tabvox/constants"
	"github.com/tabvox/tabvox/detect"
	"github.com/tabvox/tabvox/model"
)

type lineInfo struct {
	text     string
	idx      int
	blank    bool
	standard bool
	labeled  bool
	legend   bool
}

// Parse runs the full tablature pass: group raw lines into tab groups,
// extract free-text annotations, then walk every group column by column.
// Malformed lines never fail the parse; they just contribute nothing.
func Parse(lines []string) model.TabResult {
	infos := classifyLines(lines)
	annotations := extractAnnotations(infos)
	groups := buildGroups(infos)

	var res model.TabResult
	res.Annotations = annotations
	for _, g := range groups {
		seq := walkGroup(g, len(res.Sequences)+1, annotations)
		if len(seq.Groups) == 0 {
			continue
		}
		res.Sequences = append(res.Sequences, seq)
	}
	return res
}

func classifyLines(lines []string) []lineInfo {
	infos := make([]lineInfo, len(lines))
	for i, line := range lines {
		info := lineInfo{text: line, idx: i}
		switch {
		case strings.TrimSpace(line) == "":
			info.blank = true
		default:
			info.labeled = detect.IsLabeledTabLine(line)
			info.standard = detect.IsStandardTabLine(line)
			if !info.labeled && !info.standard {
				info.legend = detect.IsTechniqueLegendLine(line)
			}
		}
		infos[i] = info
	}
	return infos
}

// buildGroups partitions tab lines into groups of 3-8 strings. Blank and
// technique-legend lines keep a group open only when another tab line of the
// same kind follows them; any other line closes the group.
func buildGroups(infos []lineInfo) []model.TabGroup {
	var groups []model.TabGroup
	var curr []lineInfo
	kind := model.FormatNone

	flush := func() {
		if len(curr) >= constants.MinGroupLines {
			groups = append(groups, makeGroup(kind, curr))
		}
		curr = nil
		kind = model.FormatNone
	}

	for i, info := range infos {
		switch {
		case matchesKind(info, kind):
			curr = append(curr, info)
			if len(curr) == constants.MaxGroupLines {
				flush()
			}
		case info.labeled || info.standard:
			// a tab line of the other kind starts a fresh group
			flush()
			if info.labeled {
				kind = model.FormatLabeledTab
			} else {
				kind = model.FormatStandardTab
			}
			curr = append(curr, info)
		case info.blank || info.legend:
			if len(curr) > 0 && !probeAhead(infos, i+1, kind) {
				flush()
			}
		default:
			flush()
		}
	}
	flush()
	return groups
}

// matchesKind reports whether a line continues the group being built. Lines
// matching both tab shapes (lowercase string letters double as technique
// symbols) follow the current group's kind.
func matchesKind(info lineInfo, kind model.Format) bool {
	switch kind {
	case model.FormatStandardTab:
		return info.standard
	case model.FormatLabeledTab:
		return info.labeled
	default:
		return false
	}
}

// probeAhead skips blank and legend lines looking for another tab line that
// would continue the current group.
func probeAhead(infos []lineInfo, from int, kind model.Format) bool {
	for i := from; i < len(infos); i++ {
		if infos[i].blank || infos[i].legend {
			continue
		}
		return matchesKind(infos[i], kind)
	}
	return false
}

func makeGroup(kind model.Format, curr []lineInfo) model.TabGroup {
	if kind == model.FormatLabeledTab {
		return model.TabGroup{Kind: kind, Lines: resolveLabeled(curr)}
	}
	names := constants.StringNamesFor(len(curr))
	lines := make([]model.StringLine, len(curr))
	for i, info := range curr {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		lines[i] = model.StringLine{
			Content:     info.text,
			SourceLine:  info.idx,
			StringIndex: i,
			StringName:  name,
		}
	}
	return model.TabGroup{Kind: kind, Lines: lines}
}

// resolveLabeled assigns string identity from the leading letters and
// re-sorts the group high to low. E and B are ambiguous: the first
// occurrence in the group is the high string, a later one the low string.
func resolveLabeled(curr []lineInfo) []model.StringLine {
	type slotted struct {
		line model.StringLine
		slot int
	}
	seen := map[byte]int{}
	slots := make([]slotted, 0, len(curr))
	for _, info := range curr {
		m := constants.LabeledTabLineRe.FindStringSubmatch(info.text)
		if m == nil {
			continue
		}
		letter := strings.ToUpper(m[1])[0]
		slot := slotForLetter(letter, seen[letter], len(slots))
		seen[letter]++
		slots = append(slots, slotted{
			line: model.StringLine{Content: m[2], SourceLine: info.idx},
			slot: slot,
		})
	}

	// insertion sort by slot, stable for equal slots
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j-1].slot > slots[j].slot; j-- {
			slots[j-1], slots[j] = slots[j], slots[j-1]
		}
	}

	highest := 0
	for _, s := range slots {
		if s.slot > highest {
			highest = s.slot
		}
	}
	names := constants.StringNamesFor(highest + 1)
	lines := make([]model.StringLine, len(slots))
	for i, s := range slots {
		name := ""
		if s.slot < len(names) {
			name = names[s.slot]
		}
		lines[i] = model.StringLine{
			Content:     s.line.Content,
			SourceLine:  s.line.SourceLine,
			StringIndex: i,
			StringName:  name,
		}
	}
	return lines
}

func slotForLetter(letter byte, timesSeen, fallback int) int {
	switch letter {
	case 'E':
		if timesSeen == 0 {
			return 0
		}
		return 5
	case 'B':
		if timesSeen == 0 {
			return 1
		}
		return 6
	case 'G':
		return 2
	case 'D':
		return 3
	case 'A':
		return 4
	}
	return fallback
}
