package bsync

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

type syncer interface {
	Sync() error
}

// Writer appends a delta artifact: one header, then records in strictly
// increasing block order. Every record is flushed, and synced when the
// destination supports it, before WriteRecord returns.
type Writer struct {
	dst     io.Writer
	buf     *bufio.Writer
	header  *Header
	last    int64
	records int
	payload uint64
	written int64
}

func NewWriter(dst io.Writer) *Writer {
	return &Writer{
		dst:  dst,
		buf:  bufio.NewWriter(dst),
		last: -1,
	}
}

// WriteHeader must be called exactly once, before any record.
func (w *Writer) WriteHeader(h *Header) error {
	if w.header != nil {
		return newError(KindHeaderWrite, NoBlock, errors.New("header already written"))
	}
	if h.Type != DATA {
		return newError(KindHeaderWrite, NoBlock, errors.Errorf("delta header must be DATA, got %s", h.Type))
	}
	if err := WriteHeader(w.buf, h); err != nil {
		return err
	}
	if err := w.flush(); err != nil {
		return newError(KindHeaderWrite, NoBlock, err)
	}
	w.header = h
	w.written += h.EncodedLen()
	return nil
}

// WriteRecord appends (index, payload). The payload length must match the
// header geometry for index.
func (w *Writer) WriteRecord(index uint32, payload []byte) error {
	block := int64(index)
	if w.header == nil {
		return newError(KindWrite, block, errors.New("record written before header"))
	}
	if block <= w.last {
		return newError(KindWrite, block, errors.Errorf("index not increasing, last was %d", w.last))
	}
	if uint64(index) >= w.header.BlockCount() {
		return newError(KindWrite, block, errors.Errorf("index out of range, %d blocks", w.header.BlockCount()))
	}
	if want := w.header.BlockPayloadSize(uint64(index)); uint64(len(payload)) != want {
		return newError(KindWrite, block, errors.Errorf("payload is %d bytes, want %d", len(payload), want))
	}

	if err := WriteUint32(w.buf, index); err != nil {
		return newError(KindWrite, block, err)
	}
	if err := writeFull(w.buf, payload); err != nil {
		return newError(KindWrite, block, err)
	}
	if err := w.flush(); err != nil {
		return newError(KindWrite, block, err)
	}

	w.last = block
	w.records++
	w.payload += uint64(len(payload))
	w.written += indexLen + int64(len(payload))
	return nil
}

func (w *Writer) flush() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if s, ok := w.dst.(syncer); ok {
		return errors.Wrap(s.Sync(), "sync")
	}
	return nil
}

// Records is the number of records written so far.
func (w *Writer) Records() int { return w.records }

// PayloadBytes is the sum of all record payload lengths.
func (w *Writer) PayloadBytes() uint64 { return w.payload }

// Written is the artifact length so far, header included.
func (w *Writer) Written() int64 { return w.written }
