package loupe

import "sync"

// LineIndex records, for every line discovered so far, where the line starts
// in the source, how many bytes it occupies (terminator included) and how
// many characters it holds (terminator excluded).
//
// One builder goroutine appends entries while any number of readers consult
// the counters and spans. A single mutex guards all fields and is held for
// one append or one multi-field read at a time, never for a whole scan, so
// a reader can never observe a partially written entry and never waits
// longer than one append.
//
// Entries are append-only and committed in line order: once LineCount
// reports n, lines 0 through n-1 are fully present and will never change.
type LineIndex struct {
	mu sync.Mutex

	start   []int64 // byte offset where each line begins
	length  []int64 // byte length of each line, terminator included
	columns []int64 // characters per line, terminator excluded

	maxColumns int64
	scanned    int64 // end of the region consumed by the builder so far
	complete   bool
}

// NewLineIndex returns an empty index with zero counters.
func NewLineIndex() *LineIndex {
	return &LineIndex{}
}

// LineCount returns the number of lines discovered so far.
func (ix *LineIndex) LineCount() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return len(ix.start)
}

// MaxColumns returns the widest character count seen across all discovered
// lines.
func (ix *LineIndex) MaxColumns() int64 {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.maxColumns
}

// Complete reports whether the builder has reached the end of the source.
func (ix *LineIndex) Complete() bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.complete
}

// LineSpan returns the byte offset and byte length of a line. Both values
// come from a single lock acquisition, so they always describe the same
// committed entry. Returns ErrInvalidLine for a line that has not been
// indexed yet.
func (ix *LineIndex) LineSpan(line int) (start, length int64, err error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if line < 0 || line >= len(ix.start) {
		return 0, 0, ErrInvalidLine
	}
	return ix.start[line], ix.length[line], nil
}

// ColumnCount returns the number of characters in a line, excluding the
// terminator. Returns ErrInvalidLine for a line that has not been indexed
// yet.
func (ix *LineIndex) ColumnCount(line int) (int64, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if line < 0 || line >= len(ix.columns) {
		return 0, ErrInvalidLine
	}
	return ix.columns[line], nil
}

// entry returns all three fields of a line's record under one lock
// acquisition.
func (ix *LineIndex) entry(line int) (start, length, columns int64, err error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if line < 0 || line >= len(ix.start) {
		return 0, 0, 0, ErrInvalidLine
	}
	return ix.start[line], ix.length[line], ix.columns[line], nil
}

// appendLine commits one line's record. All three fields, the scan boundary
// and the max-columns counter change under a single lock hold, so a
// concurrent reader sees either the whole entry or none of it.
func (ix *LineIndex) appendLine(start, length, columns int64) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.start = append(ix.start, start)
	ix.length = append(ix.length, length)
	ix.columns = append(ix.columns, columns)
	if columns > ix.maxColumns {
		ix.maxColumns = columns
	}
	ix.scanned = start + length
}

// resumeOffset returns where the previous scan stopped.
func (ix *LineIndex) resumeOffset() int64 {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.scanned
}

// finish marks the index complete once the scan has consumed every byte
// available at open time.
func (ix *LineIndex) finish() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.complete = true
}
