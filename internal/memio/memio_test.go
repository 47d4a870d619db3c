// SPDX-License-Identifier: EPL-2.0

package memio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	rs := NewReadSeeker([]byte("hello world"))

	buf := make([]byte, 5)
	if n, err := rs.Read(buf); n != 5 || err != nil || string(buf) != "hello" {
		t.Fatalf("Read = %d, %v, %q", n, err, buf)
	}

	if pos, err := rs.Seek(-5, io.SeekEnd); pos != 6 || err != nil {
		t.Fatalf("Seek(-5, end) = %d, %v", pos, err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "world" {
		t.Errorf("rest = %q", rest)
	}

	if n, err := rs.Read(buf); n != 0 || err != io.EOF {
		t.Errorf("Read at end = %d, %v; want 0, EOF", n, err)
	}

	if _, err := rs.Seek(-1, io.SeekStart); !errors.Is(err, ErrNegativePosition) {
		t.Errorf("negative seek err = %v", err)
	}
	if _, err := rs.Seek(0, 42); err == nil {
		t.Error("invalid whence accepted")
	}
}

func TestAsReadSeeker(t *testing.T) {
	t.Parallel()

	orig := NewReadSeeker([]byte("abc"))
	if got, _ := AsReadSeeker(orig); got != orig {
		t.Error("AsReadSeeker wrapped a seeker")
	}

	rs, err := AsReadSeeker(strings.NewReader("abc"))
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(rs)
	if string(data) != "abc" {
		t.Errorf("data = %q", data)
	}
}

func TestWriteSeeker(t *testing.T) {
	t.Parallel()

	var w WriteSeeker
	_, _ = w.Write([]byte("header__body"))
	_, _ = w.Seek(6, io.SeekStart)
	_, _ = w.Write([]byte("XY"))
	_, _ = w.Seek(0, io.SeekEnd)
	_, _ = w.Write([]byte("!"))

	if got := string(w.Bytes()); got != "headerXYbody!" {
		t.Errorf("Bytes() = %q", got)
	}

	var gap WriteSeeker
	_, _ = gap.Seek(3, io.SeekStart)
	_, _ = gap.Write([]byte{1})
	if !bytes.Equal(gap.Bytes(), []byte{0, 0, 0, 1}) {
		t.Errorf("gap Bytes() = %v", gap.Bytes())
	}
}
