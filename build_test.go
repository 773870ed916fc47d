package loupe

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

// largeFile produces n lines of varying width, wide enough that a full
// scan takes long enough for readers to race the builder.
func largeFile(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "line %d %s\n", i, strings.Repeat("x", i%80))
	}
	return buf.Bytes()
}

func TestStartRunsToCompletion(t *testing.T) {
	f, err := Open(writeTemp(t, largeFile(1000)))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	select {
	case <-f.Start():
	case <-time.After(10 * time.Second):
		t.Fatal("Builder did not finish")
	}

	if !f.Index().Complete() {
		t.Error("Expected index to be complete")
	}
	if f.Index().LineCount() != 1000 {
		t.Errorf("Expected 1000 lines, got %d", f.Index().LineCount())
	}
}

func TestStartIdempotent(t *testing.T) {
	f, err := Open(writeTemp(t, []byte("a\nb\n")))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	first := f.Start()
	second := f.Start()
	<-first
	<-second

	if f.Index().LineCount() != 2 {
		t.Errorf("Expected 2 lines after double Start, got %d", f.Index().LineCount())
	}
}

// A reader must never observe a line count for which the corresponding
// entry is missing, no matter where the builder is mid-scan.
func TestConcurrentReadsNeverTorn(t *testing.T) {
	f, err := Open(writeTemp(t, largeFile(50000)))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	done := f.Start()

	for {
		n := f.Index().LineCount()
		if n > 0 {
			if _, _, err := f.Index().LineSpan(n - 1); err != nil {
				t.Fatalf("LineCount reported %d but LineSpan(%d) failed: %v", n, n-1, err)
			}
			// Retrieval on a committed line must be safe mid-build.
			_ = f.Text(n-1, 0, 40)
		}

		select {
		case <-done:
			if f.Index().LineCount() != 50000 {
				t.Errorf("Expected 50000 lines, got %d", f.Index().LineCount())
			}
			return
		default:
		}
	}
}

// Counters observed mid-build never exceed their final values and never
// decrease.
func TestCountersMonotonic(t *testing.T) {
	f, err := Open(writeTemp(t, largeFile(20000)))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	done := f.Start()

	prevLines := 0
	var prevCols int64
	for {
		lines := f.Index().LineCount()
		cols := f.Index().MaxColumns()
		if lines < prevLines {
			t.Fatalf("Line count went backwards: %d -> %d", prevLines, lines)
		}
		if cols < prevCols {
			t.Fatalf("Max columns went backwards: %d -> %d", prevCols, cols)
		}
		prevLines, prevCols = lines, cols

		select {
		case <-done:
			return
		default:
		}
	}
}
