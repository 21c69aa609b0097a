package bsync

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

/*
Header is shared by checksum streams and delta artifacts:

	| version u32 | type u32 | blockSize u64 | totalSize u64 | userDataLength u32 | userData |

A zero userDataLength means there is no user data.
*/
type Header struct {
	Version   uint32
	Type      FileType
	BlockSize uint64
	TotalSize uint64
	UserData  []byte // nil when absent
}

// NewHeader builds a header at the current Version. userData is copied.
func NewHeader(t FileType, totalSize uint64, blockSize uint64, userData []byte) *Header {
	h := &Header{
		Version:   Version,
		Type:      t,
		BlockSize: blockSize,
		TotalSize: totalSize,
	}
	if len(userData) > 0 {
		h.UserData = append([]byte(nil), userData...)
	}
	return h
}

// BlockCount is ceil(TotalSize / BlockSize).
func (h *Header) BlockCount() uint64 {
	if h.BlockSize == 0 {
		return 0
	}
	count := h.TotalSize / h.BlockSize
	if h.TotalSize%h.BlockSize != 0 {
		count++
	}
	return count
}

// LastBlockSize equals BlockSize when TotalSize is an exact multiple.
func (h *Header) LastBlockSize() uint64 {
	count := h.BlockCount()
	if count == 0 {
		return 0
	}
	return h.TotalSize - h.BlockSize*(count-1)
}

// EncodedLen is the number of bytes WriteHeader produces for h.
func (h *Header) EncodedLen() int64 {
	return int64(headerFixedLen + len(h.UserData))
}

func (h *Header) String() string {
	return fmt.Sprintf("version=%d type=%s blockSize=%d totalSize=%d blocks=%d userData=%q",
		h.Version, h.Type, h.BlockSize, h.TotalSize, h.BlockCount(), h.UserData)
}

// ReadHeader parses a header from the current position of r.
func ReadHeader(r io.Reader) (*Header, error) {
	wr := newWireReader(r)
	h := &Header{}
	var (
		t   uint32
		n   uint32
		err error
	)

	if h.Version, err = wr.ReadUint32(); err != nil {
		goto FAIL
	}
	if t, err = wr.ReadUint32(); err != nil {
		goto FAIL
	}
	h.Type = FileType(t)
	if !h.Type.Valid() {
		err = errors.Errorf("unknown file type %d", t)
		goto FAIL
	}
	if h.BlockSize, err = wr.ReadUint64(); err != nil {
		goto FAIL
	}
	if h.BlockSize == 0 {
		err = errors.New("block size is zero")
		goto FAIL
	}
	if h.TotalSize, err = wr.ReadUint64(); err != nil {
		goto FAIL
	}
	if n, err = wr.ReadUint32(); err != nil {
		goto FAIL
	}
	if n > MaxUserDataLen {
		err = errors.Errorf("user data length %d exceeds %d", n, MaxUserDataLen)
		goto FAIL
	}
	if n > 0 {
		h.UserData = make([]byte, n)
		if _, err = io.ReadFull(r, h.UserData); err != nil {
			goto FAIL
		}
	}
	return h, nil

FAIL:
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return nil, newError(KindHeaderRead, NoBlock, err)
}

// WriteHeader serializes h in the layout ReadHeader expects.
func WriteHeader(w io.Writer, h *Header) error {
	if len(h.UserData) > MaxUserDataLen {
		return newError(KindHeaderWrite, NoBlock,
			errors.Errorf("user data length %d exceeds %d", len(h.UserData), MaxUserDataLen))
	}
	buf := make([]byte, headerFixedLen, h.EncodedLen())
	order.PutUint32(buf[0:], h.Version)
	order.PutUint32(buf[4:], uint32(h.Type))
	order.PutUint64(buf[8:], h.BlockSize)
	order.PutUint64(buf[16:], h.TotalSize)
	order.PutUint32(buf[24:], uint32(len(h.UserData)))
	buf = append(buf, h.UserData...)
	if err := writeFull(w, buf); err != nil {
		return newError(KindHeaderWrite, NoBlock, err)
	}
	return nil
}

// CheckCompatibility decides whether the left (old) and right (new) checksum
// headers can be compared block by block. Version 1 and type CHECKSUM on the
// right side are wildcards.
func CheckCompatibility(left, right *Header) Mismatch {
	if left.Version != right.Version && right.Version != WildcardVersion {
		return VersionMismatch
	}
	if left.BlockSize != right.BlockSize {
		return BlockSizeMismatch
	}
	if left.TotalSize != right.TotalSize {
		return TotalSizeMismatch
	}
	if left.Type != right.Type && right.Type != CHECKSUM {
		return TypeMismatch
	}
	return MismatchNone
}
