// SPDX-License-Identifier: EPL-2.0

// Package memio provides in-memory seekable readers and writers for codecs
// that need io.ReadSeeker or io.WriteSeeker.
package memio

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("negative position")

func seek(cur, size, offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = cur + offset
	case io.SeekEnd:
		pos = size + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, ErrNegativePosition
	}
	return pos, nil
}

// ReadSeeker implements io.ReadSeeker over a byte slice.
type ReadSeeker struct {
	data   []byte
	offset int64
}

func NewReadSeeker(data []byte) *ReadSeeker {
	return &ReadSeeker{data: data}
}

// AsReadSeeker returns r itself when it can seek, otherwise buffers it.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return NewReadSeeker(data), nil
}

func (rs *ReadSeeker) Read(p []byte) (int, error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n := copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := seek(rs.offset, int64(len(rs.data)), offset, whence)
	if err != nil {
		return 0, err
	}
	rs.offset = pos
	return pos, nil
}

// WriteSeeker is a growable buffer implementing io.WriteSeeker. Writing
// past the end zero fills the gap.
type WriteSeeker struct {
	buf    []byte
	offset int64
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.offset + int64(len(p))
	if end > int64(len(w.buf)) {
		if end > int64(cap(w.buf)) {
			grown := make([]byte, end, max(end, 2*int64(cap(w.buf))))
			copy(grown, w.buf)
			w.buf = grown
		} else {
			w.buf = w.buf[:end]
		}
	}
	copy(w.buf[w.offset:], p)
	w.offset = end
	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := seek(w.offset, int64(len(w.buf)), offset, whence)
	if err != nil {
		return 0, err
	}
	w.offset = pos
	return pos, nil
}

// Bytes returns the written content. The slice aliases the buffer.
func (w *WriteSeeker) Bytes() []byte { return w.buf }
