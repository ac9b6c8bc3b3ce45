package inventory

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedLine is the raw tuple extracted from one inventory data line. Name
// still carries any quality suffix; the location slot prefix has been split
// off into Location.
type ParsedLine struct {
	Name     string
	Location string
	ID       int
	Count    int
	Slots    int
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Trailing "<id> <count> <slots>" integer columns after whitespace collapse.
	dataLineRe = regexp.MustCompile(`^(.*?)\s+(\d+)\s+(\d+)\s+(\d+)$`)

	// Known inventory slot vocabulary, optionally followed by "-SlotN".
	slotPrefixRe = regexp.MustCompile(`(?i)^(Charm|Ear|Head|Face|Neck|Shoulders|Arms|Back|Wrist|Range|Hands|Primary|Secondary|Fingers|Chest|Legs|Feet|Waist|Ammo|General\d*|Bank\d*|SharedBank\d*)(-Slot\d*)?\s*`)
)

// isStructuralFile reports whether the dump is a UI export rather than an
// inventory listing. Such files are skipped wholesale.
func isStructuralFile(data string) bool {
	return strings.HasPrefix(strings.TrimSpace(data), "[") ||
		strings.Contains(data, "[Abilities]") ||
		strings.Contains(data, "[HotButtons]")
}

// isHeaderLine reports whether the first line of a file is the column header.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "location") &&
		strings.Contains(lower, "id") &&
		strings.Contains(lower, "count")
}

// ParseLine extracts one candidate record from a raw inventory line.
// Malformed or decorative lines are expected input, not errors: ok is false
// and the line is skipped.
func ParseLine(line string) (ParsedLine, bool) {
	normalized := whitespaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if normalized == "" {
		return ParsedLine{}, false
	}

	// Explicitly-empty slot lines end in a zero count.
	if strings.Contains(strings.ToLower(normalized), "empty") && strings.HasSuffix(normalized, " 0") {
		return ParsedLine{}, false
	}

	match := dataLineRe.FindStringSubmatch(normalized)
	if match == nil {
		return ParsedLine{}, false
	}

	id, err := strconv.Atoi(match[2])
	if err != nil {
		return ParsedLine{}, false
	}
	count, err := strconv.Atoi(match[3])
	if err != nil {
		return ParsedLine{}, false
	}
	slots, err := strconv.Atoi(match[4])
	if err != nil {
		return ParsedLine{}, false
	}

	name := strings.TrimSpace(match[1])
	location := ""
	if prefix := slotPrefixRe.FindString(name); prefix != "" {
		location = strings.TrimSpace(prefix)
		name = strings.TrimSpace(name[len(prefix):])
	}

	return ParsedLine{
		Name:     name,
		Location: location,
		ID:       id,
		Count:    count,
		Slots:    slots,
	}, true
}

// ParseFile extracts every candidate record from one raw inventory dump.
func ParseFile(data string) []ParsedLine {
	if isStructuralFile(data) {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 && isHeaderLine(lines[0]) {
		lines = lines[1:]
	}

	var parsed []ParsedLine
	for _, line := range lines {
		if p, ok := ParseLine(line); ok {
			parsed = append(parsed, p)
		}
	}
	return parsed
}
