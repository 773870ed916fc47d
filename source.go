package loupe

import (
	"fmt"
	"os"

	"github.com/tysontate/gommap"
)

// Source is a read-only view of a file's bytes backed by a memory mapping.
// The view is a frozen snapshot: it is established once at open time and
// never changes, so it can be read from any goroutine without locking.
type Source struct {
	file *os.File
	data gommap.MMap
}

// OpenSource opens the file at path read-only and maps its full current
// length. A zero-length file is valid and yields an empty view.
func OpenSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	src := &Source{file: f}
	if info.Size() > 0 {
		m, err := gommap.Map(f.Fd(), gommap.PROT_READ, gommap.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("mmap %s: %w", path, err)
		}
		src.data = m
	}
	return src, nil
}

// Len returns the length of the mapped region in bytes.
func (s *Source) Len() int64 {
	return int64(len(s.data))
}

// ByteRange returns the bytes in [start, end). The caller must keep
// 0 <= start <= end <= Len(); an out-of-range request is a programming
// error and panics.
func (s *Source) ByteRange(start, end int64) []byte {
	return s.data[start:end]
}

// Close releases the mapping and the underlying file descriptor. The Source
// must not be used afterwards; a second Close returns ErrClosed.
func (s *Source) Close() error {
	if s.file == nil {
		return ErrClosed
	}
	if s.data != nil {
		if err := s.data.UnsafeUnmap(); err != nil {
			return err
		}
		s.data = nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
