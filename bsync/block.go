package bsync

import (
	"bytes"
	"io"
	"math"

	"github.com/pkg/errors"
)

// BlockPayloadSize is LastBlockSize for the final block and BlockSize otherwise.
func (h *Header) BlockPayloadSize(i uint64) uint64 {
	if i == h.BlockCount()-1 {
		return h.LastBlockSize()
	}
	return h.BlockSize
}

// ReadBlock seeks to block i of src and reads exactly BlockPayloadSize(i) bytes.
// A short read is always a KindBlockRead error, never a truncated block.
func ReadBlock(h *Header, i uint64, src io.ReadSeeker) ([]byte, error) {
	if i >= h.BlockCount() {
		return nil, newError(KindBlockRead, int64(i),
			errors.Errorf("block index out of range, %d blocks", h.BlockCount()))
	}
	off, n := i*h.BlockSize, h.BlockPayloadSize(i)

	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, newError(KindBlockRead, int64(i), errors.Wrap(err, "seek"))
	}
	if size := uint64(end); off > size || n > size-off {
		return nil, newError(KindBlockRead, int64(i),
			errors.Wrapf(io.ErrUnexpectedEOF, "block needs %d bytes at offset %d, source has %d", n, off, size))
	}
	if _, err := src.Seek(int64(off), io.SeekStart); err != nil {
		return nil, newError(KindBlockRead, int64(i), errors.Wrap(err, "seek"))
	}
	buf, err := readExact(src, n, nil)
	if err != nil {
		return nil, newError(KindBlockRead, int64(i),
			errors.Wrapf(err, "reading %d bytes at offset %d", n, off))
	}
	return buf, nil
}

// readExact reads n bytes from r into scratch when it is large enough. Past
// maxPrealloc the buffer grows with the data actually read, so a bogus length
// from a header fails with io.ErrUnexpectedEOF instead of a huge allocation.
func readExact(r io.Reader, n uint64, scratch []byte) ([]byte, error) {
	var err error
	switch {
	case n <= uint64(cap(scratch)):
		p := scratch[:n]
		_, err = io.ReadFull(r, p)
		if err == nil {
			return p, nil
		}
	case n <= maxPrealloc:
		p := make([]byte, n)
		_, err = io.ReadFull(r, p)
		if err == nil {
			return p, nil
		}
	case n > math.MaxInt64:
		err = io.ErrUnexpectedEOF
	default:
		var buf bytes.Buffer
		_, err = io.CopyN(&buf, r, int64(n))
		if err == nil {
			return buf.Bytes(), nil
		}
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return nil, err
}
