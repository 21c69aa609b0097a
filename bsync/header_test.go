package bsync

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	for _, userData := range [][]byte{nil, []byte("release-2.1")} {
		h := NewHeader(DATA, 10, 4, userData)
		var buf bytes.Buffer
		if err := WriteHeader(&buf, h); err != nil {
			t.Fatalf("WriteHeader: %v", err)
		}
		if int64(buf.Len()) != h.EncodedLen() {
			t.Errorf("encoded %d bytes, EncodedLen says %d", buf.Len(), h.EncodedLen())
		}
		got, err := ReadHeader(&buf)
		if err != nil {
			t.Fatalf("ReadHeader: %v", err)
		}
		if got.Version != Version || got.Type != DATA || got.BlockSize != 4 || got.TotalSize != 10 {
			t.Errorf("unexpected header %s", got)
		}
		if !bytes.Equal(got.UserData, userData) {
			t.Errorf("user data %q, want %q", got.UserData, userData)
		}
		if userData == nil && got.UserData != nil {
			t.Errorf("absent user data decoded as %q", got.UserData)
		}
	}
}

func TestNewHeaderCopiesUserData(t *testing.T) {
	userData := []byte("abc")
	h := NewHeader(CHECKSUM, 1, 1, userData)
	userData[0] = 'x'
	if string(h.UserData) != "abc" {
		t.Errorf("header user data aliased the caller's slice: %q", h.UserData)
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, NewHeader(CHECKSUM, 100, 16, []byte("tag"))); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()
	for n := 0; n < len(full); n++ {
		_, err := ReadHeader(bytes.NewReader(full[:n]))
		if KindOf(err) != KindHeaderRead {
			t.Fatalf("prefix of %d bytes: got %v, want header read error", n, err)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("prefix of %d bytes: cause %v, want unexpected EOF", n, err)
		}
	}
}

func TestReadHeaderMalformed(t *testing.T) {
	valid := func() []byte {
		var buf bytes.Buffer
		if err := WriteHeader(&buf, NewHeader(CHECKSUM, 100, 16, nil)); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	badType := valid()
	order.PutUint32(badType[4:], 7)

	zeroBlock := valid()
	order.PutUint64(zeroBlock[8:], 0)

	hugeUserData := valid()
	order.PutUint32(hugeUserData[24:], MaxUserDataLen+1)

	for name, raw := range map[string][]byte{
		"unknown type":     badType,
		"zero block size":  zeroBlock,
		"oversized length": hugeUserData,
	} {
		if _, err := ReadHeader(bytes.NewReader(raw)); KindOf(err) != KindHeaderRead {
			t.Errorf("%s: got %v, want header read error", name, err)
		}
	}
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) <= f.after {
		f.after -= len(p)
		return len(p), nil
	}
	n := f.after
	f.after = 0
	return n, io.ErrShortWrite
}

func TestWriteHeaderFailure(t *testing.T) {
	err := WriteHeader(&failingWriter{after: 5}, NewHeader(DATA, 8, 4, nil))
	if KindOf(err) != KindHeaderWrite {
		t.Fatalf("got %v, want header write error", err)
	}
	if ExitCode(err) != ExitHeaderWrite {
		t.Errorf("exit code %d, want %d", ExitCode(err), ExitHeaderWrite)
	}
}

func TestBlockGeometry(t *testing.T) {
	tests := []struct {
		blockSize, totalSize uint64
		count, last          uint64
	}{
		{4, 10, 3, 2},
		{4, 8, 2, 4},
		{4, 0, 0, 0},
		{4096, 1, 1, 1},
		{1, 5, 5, 1},
		{1 << 63, 1<<63 + 1, 2, 1},
		{math.MaxUint64, math.MaxUint64, 1, math.MaxUint64},
	}
	for _, tt := range tests {
		h := NewHeader(CHECKSUM, tt.totalSize, tt.blockSize, nil)
		if got := h.BlockCount(); got != tt.count {
			t.Errorf("blockSize=%d totalSize=%d: BlockCount=%d, want %d", tt.blockSize, tt.totalSize, got, tt.count)
		}
		if got := h.LastBlockSize(); got != tt.last {
			t.Errorf("blockSize=%d totalSize=%d: LastBlockSize=%d, want %d", tt.blockSize, tt.totalSize, got, tt.last)
		}
	}
}

func TestBlockPayloadSize(t *testing.T) {
	h := NewHeader(CHECKSUM, 10, 4, nil)
	want := []uint64{4, 4, 2}
	for i, w := range want {
		if got := h.BlockPayloadSize(uint64(i)); got != w {
			t.Errorf("block %d: size %d, want %d", i, got, w)
		}
	}
}

func TestCheckCompatibility(t *testing.T) {
	base := func() *Header { return NewHeader(CHECKSUM, 100, 16, nil) }
	tests := []struct {
		name   string
		mutate func(left, right *Header)
		want   Mismatch
	}{
		{"identical", func(l, r *Header) {}, MismatchNone},
		{"user data ignored", func(l, r *Header) { r.UserData = []byte("x") }, MismatchNone},
		{"version differs", func(l, r *Header) { r.Version = Version + 1 }, VersionMismatch},
		{"right version 1 is a wildcard", func(l, r *Header) { l.Version = 7; r.Version = WildcardVersion }, MismatchNone},
		{"left version 1 is not a wildcard", func(l, r *Header) { l.Version = WildcardVersion }, VersionMismatch},
		{"block size differs", func(l, r *Header) { r.BlockSize = 32 }, BlockSizeMismatch},
		{"total size differs", func(l, r *Header) { r.TotalSize = 101 }, TotalSizeMismatch},
		{"type differs", func(l, r *Header) { r.Type = DATA }, TypeMismatch},
		{"right CHECKSUM is a wildcard", func(l, r *Header) { l.Type = DATA }, MismatchNone},
	}
	for _, tt := range tests {
		left, right := base(), base()
		tt.mutate(left, right)
		if got := CheckCompatibility(left, right); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}
