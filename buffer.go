package loader

import (
	"bytes"
	"io"
)

// Buffer holds the most recently fetched payload of a Loader.
// The zero value is a valid empty buffer.
//
// A Loader replaces the contents on every fetch, so callers must not keep
// the slice returned by Bytes across fetches.
type Buffer struct {
	data   []byte
	reader bytes.Reader
}

// NewBuffer returns a buffer holding a copy of data, positioned at the start.
func NewBuffer(data []byte) *Buffer {
	b := &Buffer{}
	b.Reset(data)

	return b
}

// Reset replaces the contents with a copy of data and rewinds to the start.
// A nil or empty data leaves a valid zero-length buffer.
func (b *Buffer) Reset(data []byte) {
	b.set(bytes.Clone(data))
}

// set takes ownership of data without copying.
func (b *Buffer) set(data []byte) {
	if data == nil {
		data = []byte{}
	}

	b.data = data
	b.reader.Reset(data)
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (int, error) {
	return b.reader.Read(p) //nolint:wrapcheck
}

// ReadAt implements io.ReaderAt.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	return b.reader.ReadAt(p, off) //nolint:wrapcheck
}

// Seek implements io.Seeker.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	return b.reader.Seek(offset, whence) //nolint:wrapcheck
}

// WriteTo implements io.WriterTo, draining the unread portion.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	return b.reader.WriteTo(w) //nolint:wrapcheck
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.reader.Len()
}

// Size returns the total payload length.
func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

// Position returns the current read offset.
func (b *Buffer) Position() int64 {
	return b.Size() - int64(b.reader.Len())
}

// Bytes returns the whole payload regardless of the read position.
// It is never nil.
func (b *Buffer) Bytes() []byte {
	if b.data == nil {
		return []byte{}
	}

	return b.data
}

// String returns the whole payload as text.
func (b *Buffer) String() string {
	return string(b.data)
}
