package bsync

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteChecksums emits a CHECKSUM stream for the first totalSize bytes of src:
// a header, then one checksum per block in ascending order.
func WriteChecksums(src io.Reader, totalSize, blockSize uint64, userData []byte, dst io.Writer, sum ChecksumFunc) (*Header, error) {
	if blockSize == 0 {
		return nil, newError(KindConfiguration, NoBlock, errors.New("block size is zero"))
	}
	if sum == nil {
		sum = Adler32
	}
	hdr := NewHeader(CHECKSUM, totalSize, blockSize, userData)

	out := bufio.NewWriter(dst)
	if err := WriteHeader(out, hdr); err != nil {
		return nil, err
	}

	var scratch []byte
	if blockSize <= maxPrealloc {
		scratch = make([]byte, blockSize)
	}
	count := hdr.BlockCount()
	for i := uint64(0); i < count; i++ {
		p, err := readExact(src, hdr.BlockPayloadSize(i), scratch)
		if err != nil {
			return nil, newError(KindBlockRead, int64(i), err)
		}
		if err := WriteUint32(out, sum(p)); err != nil {
			return nil, newError(KindWrite, int64(i), err)
		}
	}
	if err := out.Flush(); err != nil {
		return nil, newError(KindWrite, NoBlock, err)
	}
	return hdr, nil
}

// GenerateChecksumFile writes the checksum stream of input into output.
func GenerateChecksumFile(input, output string, blockSize uint64, userData []byte) (*Header, error) {
	in, err := os.Open(input)
	if err != nil {
		return nil, pathError(KindOpen, input, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return nil, pathError(KindOpen, input, err)
	}

	out, err := os.Create(output)
	if err != nil {
		return nil, pathError(KindOpen, output, err)
	}
	defer out.Close()

	hdr, err := WriteChecksums(bufio.NewReader(in), uint64(info.Size()), blockSize, userData, out, Adler32)
	if err != nil {
		return nil, withPath(err, input)
	}
	if err := out.Sync(); err != nil {
		return nil, pathError(KindWrite, output, err)
	}
	return hdr, nil
}

// ReadChecksums loads a whole CHECKSUM stream into memory.
func ReadChecksums(r io.Reader) (*Header, []SumChunk, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, nil, err
	}
	wr := newWireReader(r)
	count := hdr.BlockCount()
	capacity := count
	if capacity > maxPrealloc {
		capacity = maxPrealloc
	}
	sums := make([]SumChunk, 0, capacity)
	for i := uint64(0); i < count; i++ {
		v, err := wr.ReadUint32()
		if err != nil {
			return nil, nil, truncated(i, "", err)
		}
		sums = append(sums, hdr.Chunk(i, v))
	}
	return hdr, sums, nil
}
