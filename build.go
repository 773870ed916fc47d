package loupe

import (
	"bytes"
	"unicode/utf8"
)

// Build scans src from the end of the previously scanned region to the end
// of the mapped bytes and appends one index entry per line segment. A
// segment runs up to and including its '\n'; the final segment may be
// unterminated. The index lock is taken once per line, so Build can run on
// a background goroutine while readers consult the index throughout.
//
// Column counting is character-accurate: the segment is decoded as UTF-8
// and every decoded rune is one column. A byte that does not decode counts
// as one column by itself, so malformed input is length-preserving and
// never aborts or skips a line's byte accounting.
//
// Build does not fail. It returns, marking the index complete, when the
// scan reaches the end of the region that was mapped at open time.
func (ix *LineIndex) Build(src *Source) {
	pos := ix.resumeOffset()
	size := src.Len()

	for pos < size {
		rest := src.ByteRange(pos, size)
		n := int64(len(rest))
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			n = int64(i) + 1
		}
		seg := rest[:n]

		columns := int64(utf8.RuneCount(seg))
		if seg[n-1] == '\n' {
			columns--
		}

		ix.appendLine(pos, n, columns)
		pos += n
	}

	ix.finish()
}
