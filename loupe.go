package loupe

import "sync"

// File ties one Source to one LineIndex and owns the builder goroutine.
// The Source and the index are shared by reference between the builder and
// every reader; neither is ever copied or replaced for the lifetime of the
// File.
type File struct {
	src   *Source
	index *LineIndex

	startOnce sync.Once
	done      chan struct{}
}

// Open opens path read-only, maps it, and returns a File with an empty
// index. Call Start to index in the background, or Index().Build for a
// synchronous scan.
func Open(path string) (*File, error) {
	src, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	return &File{
		src:   src,
		index: NewLineIndex(),
		done:  make(chan struct{}),
	}, nil
}

// Source returns the underlying byte view.
func (f *File) Source() *Source {
	return f.src
}

// Index returns the shared line index.
func (f *File) Index() *LineIndex {
	return f.index
}

// Start launches the index builder on its own goroutine. The returned
// channel closes when the scan has consumed the whole file. Start is
// idempotent; repeated calls return the same channel without launching a
// second builder.
func (f *File) Start() <-chan struct{} {
	f.startOnce.Do(func() {
		go func() {
			defer close(f.done)
			f.index.Build(f.src)
		}()
	})
	return f.done
}

// Close releases the mapping and the file descriptor. The builder must
// have finished, or never have been started; Close does not interrupt an
// in-flight scan.
func (f *File) Close() error {
	return f.src.Close()
}
