package editor

import "strings"

const avgCharWidth = 0.6

// wrapName breaks a room name into lines that fit a box of the given
// width in plane units. Words are packed greedily and a word longer than
// a whole line is split mid-word rather than overflowing. Lengths are
// counted in runes so multi-byte names never split inside a character.
func wrapName(name string, width float64) []string {
	perLine := int(width / avgCharWidth)
	if perLine < 1 {
		perLine = 1
	}

	var lines []string
	line := ""
	lineLen := 0
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		for len(r) > perLine {
			if line != "" {
				lines = append(lines, line)
				line, lineLen = "", 0
			}
			lines = append(lines, string(r[:perLine]))
			r = r[perLine:]
		}
		if len(r) == 0 {
			continue
		}
		switch {
		case line == "":
			line, lineLen = string(r), len(r)
		case lineLen+1+len(r) <= perLine:
			line += " " + string(r)
			lineLen += 1 + len(r)
		default:
			lines = append(lines, line)
			line, lineLen = string(r), len(r)
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
