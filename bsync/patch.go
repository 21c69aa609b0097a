package bsync

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Record is one (index, payload) entry of a delta artifact.
type Record struct {
	Index   uint32
	Payload []byte
}

// RecordReader decodes the body of a delta artifact. Payload lengths are not
// stored; they follow from the header geometry.
type RecordReader struct {
	hdr  *Header
	wr   *wireReader
	last int64
}

// NewRecordReader reads the DATA header from r and returns a reader for the records.
func NewRecordReader(r io.Reader) (*RecordReader, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if hdr.Type != DATA {
		return nil, newError(KindHeaderRead, NoBlock, errors.Errorf("expected a DATA artifact, got %s", hdr.Type))
	}
	return &RecordReader{hdr: hdr, wr: newWireReader(r), last: -1}, nil
}

func (rr *RecordReader) Header() *Header { return rr.hdr }

// Next returns io.EOF once the artifact ends cleanly between records.
func (rr *RecordReader) Next() (*Record, error) {
	index, err := rr.wr.ReadUint32()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, newError(KindBlockRead, rr.last+1, errors.Wrap(err, "reading record index"))
	}
	block := int64(index)
	if block <= rr.last {
		return nil, newError(KindBlockRead, block, errors.Errorf("index not increasing, last was %d", rr.last))
	}
	if uint64(index) >= rr.hdr.BlockCount() {
		return nil, newError(KindBlockRead, block, errors.Errorf("index out of range, %d blocks", rr.hdr.BlockCount()))
	}
	payload, err := readExact(rr.wr.r, rr.hdr.BlockPayloadSize(uint64(index)), nil)
	if err != nil {
		return nil, newError(KindBlockRead, block, errors.Wrap(err, "reading record payload"))
	}
	rr.last = block
	return &Record{Index: index, Payload: payload}, nil
}

// Apply writes every record of the delta onto dst, which must already hold a
// copy of the old file. It returns the artifact header and the record count.
func Apply(delta io.Reader, dst io.WriterAt) (*Header, int, error) {
	rr, err := NewRecordReader(delta)
	if err != nil {
		return nil, 0, err
	}
	hdr := rr.Header()
	n := 0
	for {
		rec, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, n, err
		}
		off := int64(uint64(rec.Index) * hdr.BlockSize)
		if _, err := dst.WriteAt(rec.Payload, off); err != nil {
			return nil, n, newError(KindWrite, int64(rec.Index), err)
		}
		n++
	}
	return hdr, n, nil
}

// PatchFile reconstructs the new file at outPath from oldPath and the delta.
func PatchFile(oldPath, deltaPath, outPath string) (*Header, int, error) {
	old, err := os.Open(oldPath)
	if err != nil {
		return nil, 0, pathError(KindOpen, oldPath, err)
	}
	defer old.Close()

	delta, err := os.Open(deltaPath)
	if err != nil {
		return nil, 0, pathError(KindOpen, deltaPath, err)
	}
	defer delta.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, 0, pathError(KindOpen, outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, old); err != nil {
		return nil, 0, pathError(KindWrite, outPath, err)
	}
	hdr, n, err := Apply(bufio.NewReader(delta), out)
	if err != nil {
		return nil, n, withPath(err, deltaPath)
	}
	if err := out.Truncate(int64(hdr.TotalSize)); err != nil {
		return nil, n, pathError(KindWrite, outPath, err)
	}
	if err := out.Sync(); err != nil {
		return nil, n, pathError(KindWrite, outPath, err)
	}
	return hdr, n, nil
}
