package diag

// LineContext describes the source line containing a given offset.
type LineContext struct {
	LineStart int    // rune offset of the first character of the line
	LineText  string // the line's text, without its terminating newline
	Column    int    // 1-based column of the offset within the line
}

// ContextAt computes the line context for a rune offset into src: the
// start of the containing line (found by scanning backward for the
// previous newline), the line's text, and the 1-based column. Offsets at
// or past the end of input resolve to the last line.
func ContextAt(src string, offset int) LineContext {
	runes := []rune(src)
	if offset > len(runes) {
		offset = len(runes)
	}
	if offset < 0 {
		offset = 0
	}

	lineStart := 0
	for i := offset - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			lineStart = i + 1
			break
		}
	}

	lineEnd := len(runes)
	for i := lineStart; i < len(runes); i++ {
		if runes[i] == '\n' {
			lineEnd = i
			break
		}
	}

	return LineContext{
		LineStart: lineStart,
		LineText:  string(runes[lineStart:lineEnd]),
		Column:    offset - lineStart + 1,
	}
}
