package source

import (
	"path/filepath"
	"unicode/utf8"
)

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// LineTerminatorLen returns the byte length of the line terminator starting at
// content[i], or 0 if there is none. CRLF counts as a single terminator.
// Recognised: LF, CR, CRLF, U+2028 LINE SEPARATOR, U+2029 PARAGRAPH SEPARATOR.
func LineTerminatorLen(content []byte, i int) int {
	if i >= len(content) {
		return 0
	}
	switch content[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(content) && content[i+1] == '\n' {
			return 2
		}
		return 1
	case 0xE2:
		if i+2 < len(content) && content[i+1] == 0x80 && (content[i+2] == 0xA8 || content[i+2] == 0xA9) {
			return 3
		}
	}
	return 0
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32+1)
	for i := 0; i < len(content); {
		n := LineTerminatorLen(content, i)
		if n == 0 {
			i++
			continue
		}
		// храним смещение последнего байта терминатора
		out = append(out, uint32(i+n-1))
		i += n
	}
	return out
}

// toLineCol: колонка считается в символах (рунах) UTF-8, а не в байтах.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	// бинпоиск: количество терминаторов, закончившихся строго до off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // 0-based

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line + 1), Col: ColumnOf(content, startOff, off)}
}

// ColumnOf returns the 1-based character column of off on the line that
// starts at lineStart. Offsets past the content count as single bytes.
func ColumnOf(content []byte, lineStart, off uint32) uint32 {
	if off <= lineStart {
		return 1
	}
	end := min(int(off), len(content))
	n := 0
	if int(lineStart) < end {
		n = utf8.RuneCount(content[lineStart:end])
	}
	n += int(off) - max(end, int(lineStart))
	return uint32(n) + 1
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
