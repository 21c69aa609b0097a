package bsync

import (
	"encoding/binary"
	"io"
)

/* Encoding: little endian for every multi-byte integer, in all three file kinds.
   size of: u32: 4, u64: 8
*/
var order = binary.LittleEndian

// wireReader decodes fixed-width integers from a sequential stream.
// bytespool avoids an allocation per checksum read.
type wireReader struct {
	r         io.Reader
	bytespool [8]byte
}

func newWireReader(r io.Reader) *wireReader {
	return &wireReader{r: r}
}

// ReadUint32 fails with io.ErrUnexpectedEOF on a partial value and io.EOF when
// the stream ended exactly at a value boundary.
func (w *wireReader) ReadUint32() (uint32, error) {
	val := w.bytespool[:4]
	if _, err := io.ReadFull(w.r, val); err != nil {
		return 0, err
	}
	return order.Uint32(val), nil
}

func (w *wireReader) ReadUint64() (uint64, error) {
	val := w.bytespool[:8]
	if _, err := io.ReadFull(w.r, val); err != nil {
		return 0, err
	}
	return order.Uint64(val), nil
}

// WriteUint32 writes v to w; a short write is reported as io.ErrShortWrite.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	order.PutUint32(b[:], v)
	return writeFull(w, b[:])
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}
