package loupe

import "unicode/utf8"

// Text returns the characters of line at logical character positions
// [colStart, colEnd). Column bounds are clamped to the line's actual width,
// never rejected, so a viewport scrolled past the end of a short line
// yields "" rather than an error. The terminator is not part of the
// returned text. A line that has not been indexed yet also yields "".
func (f *File) Text(line, colStart, colEnd int) string {
	start, length, columns, err := f.index.entry(line)
	if err != nil {
		return ""
	}

	seg := f.src.ByteRange(start, start+length)
	if n := len(seg); n > 0 && seg[n-1] == '\n' {
		seg = seg[:n-1]
	}

	if colEnd > int(columns) {
		colEnd = int(columns)
	}
	if colEnd < 0 {
		colEnd = 0
	}
	if colStart > colEnd {
		colStart = colEnd
	}
	if colStart < 0 {
		colStart = 0
	}

	byteStart, byteEnd := colsToBytes(seg, colStart, colEnd)
	return string(seg[byteStart:byteEnd])
}

// colsToBytes walks the character boundaries of s once and returns the byte
// offsets at which columns colStart and colEnd begin. A column the walk
// never reaches resolves to len(s). Requires 0 <= colStart <= colEnd.
func colsToBytes(s []byte, colStart, colEnd int) (int, int) {
	byteStart, byteEnd := len(s), len(s)
	col := 0
	for pos := 0; pos < len(s); col++ {
		if col == colStart {
			byteStart = pos
		}
		if col == colEnd {
			byteEnd = pos
		}
		_, size := utf8.DecodeRune(s[pos:])
		pos += size
	}
	return byteStart, byteEnd
}
