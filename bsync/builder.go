package bsync

import (
	"bufio"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options is the immutable configuration of one delta run.
type Options struct {
	LeftChecksum  string  // checksums of the old file
	RightChecksum string  // checksums of the new file
	Target        string  // the new file itself
	Output        string  // delta artifact to create
	UserData      *string // overrides the right header's user data when set
}

// Validate reports a KindConfiguration error for any missing path.
func (o Options) Validate() error {
	missing := ""
	switch {
	case o.LeftChecksum == "":
		missing = "left checksum file"
	case o.RightChecksum == "":
		missing = "right checksum file"
	case o.Target == "":
		missing = "target file"
	case o.Output == "":
		missing = "output data file"
	}
	if missing != "" {
		return newError(KindConfiguration, NoBlock, errors.Errorf("missing %s", missing))
	}
	return nil
}

// Summary describes a successful run.
type Summary struct {
	Header       *Header  // header written to the artifact
	Blocks       uint64   // blocks compared
	Changed      []uint32 // indices emitted, ascending
	PayloadBytes uint64
	Size         int64 // artifact length in bytes
}

type BuilderOption func(*Builder)

// WithChecksum replaces Adler32 as the block checksum.
func WithChecksum(sum ChecksumFunc) BuilderOption {
	return func(b *Builder) { b.sum = sum }
}

// Builder computes a delta artifact from two checksum streams and the new file.
type Builder struct {
	opts Options
	sum  ChecksumFunc
	log  *zap.Logger
}

func NewBuilder(opts Options, log *zap.Logger, options ...BuilderOption) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Builder{
		opts: opts,
		sum:  Adler32,
		log:  log,
	}
	for _, o := range options {
		o(b)
	}
	return b
}

// Run opens every file named in the options, builds the artifact and closes
// everything it opened, whatever the outcome.
func (b *Builder) Run() (*Summary, error) {
	if err := b.opts.Validate(); err != nil {
		return nil, err
	}

	leftFile, err := os.Open(b.opts.LeftChecksum)
	if err != nil {
		return nil, pathError(KindOpen, b.opts.LeftChecksum, err)
	}
	defer leftFile.Close()

	rightFile, err := os.Open(b.opts.RightChecksum)
	if err != nil {
		return nil, pathError(KindOpen, b.opts.RightChecksum, err)
	}
	defer rightFile.Close()

	left := bufio.NewReader(leftFile)
	right := bufio.NewReader(rightFile)
	hdr, err := b.OutputHeader(left, right)
	if err != nil {
		return nil, err
	}

	outFile, err := os.Create(b.opts.Output)
	if err != nil {
		return nil, pathError(KindOpen, b.opts.Output, err)
	}
	defer outFile.Close()

	w := NewWriter(outFile)
	if err := w.WriteHeader(hdr); err != nil {
		return nil, err
	}

	targetFile, err := os.Open(b.opts.Target)
	if err != nil {
		return nil, pathError(KindOpen, b.opts.Target, err)
	}
	defer targetFile.Close()

	return b.diff(left, right, targetFile, w)
}

// Build runs the whole algorithm over already opened streams. The caller keeps
// ownership of every stream.
func (b *Builder) Build(left, right io.Reader, target io.ReadSeeker, out io.Writer) (*Summary, error) {
	hdr, err := b.OutputHeader(left, right)
	if err != nil {
		return nil, err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(hdr); err != nil {
		return nil, err
	}
	return b.diff(left, right, target, w)
}

// OutputHeader reads both checksum headers, checks that they are compatible
// and returns the DATA header of the artifact.
func (b *Builder) OutputHeader(left, right io.Reader) (*Header, error) {
	leftHdr, err := ReadHeader(left)
	if err != nil {
		return nil, withPath(err, b.opts.LeftChecksum)
	}
	rightHdr, err := ReadHeader(right)
	if err != nil {
		return nil, withPath(err, b.opts.RightChecksum)
	}

	if m := CheckCompatibility(leftHdr, rightHdr); m != MismatchNone {
		return nil, &Error{
			Kind:     KindHeaderMismatch,
			Mismatch: m,
			Block:    NoBlock,
			Err:      errors.Errorf("left {%s} right {%s}", leftHdr, rightHdr),
		}
	}
	if rightHdr.BlockCount() > math.MaxUint32+1 {
		return nil, &Error{
			Kind:  KindHeaderRead,
			Block: NoBlock,
			Path:  b.opts.RightChecksum,
			Err:   errors.Errorf("%d blocks do not fit a 32-bit record index", rightHdr.BlockCount()),
		}
	}

	userData := rightHdr.UserData
	if b.opts.UserData != nil {
		userData = []byte(*b.opts.UserData)
	}
	hdr := NewHeader(DATA, rightHdr.TotalSize, rightHdr.BlockSize, userData)
	b.log.Info("output header", zap.Stringer("header", hdr))
	return hdr, nil
}

// diff walks the blocks of hdr in order. Checksum streams are read strictly
// sequentially; only target is accessed by offset.
func (b *Builder) diff(left, right io.Reader, target io.ReadSeeker, w *Writer) (*Summary, error) {
	hdr := w.header
	from := newWireReader(left)
	to := newWireReader(right)
	count := hdr.BlockCount()
	sum := &Summary{Header: hdr, Blocks: count}

	b.log.Debug("comparing blocks", zap.Uint64("blocks", count))
	for i := uint64(0); i < count; i++ {
		fromSum, err := from.ReadUint32()
		if err != nil {
			return nil, truncated(i, b.opts.LeftChecksum, err)
		}
		toSum, err := to.ReadUint32()
		if err != nil {
			return nil, truncated(i, b.opts.RightChecksum, err)
		}
		if fromSum == toSum {
			continue
		}

		chunk := hdr.Chunk(i, toSum)
		b.log.Debug("checksums differ",
			zap.Uint64("block", i),
			zap.Uint32("from", fromSum),
			zap.Uint32("to", toSum),
			zap.Uint64("size", chunk.ChunkLen))

		buf, err := ReadBlock(hdr, i, target)
		if err != nil {
			return nil, withPath(err, b.opts.Target)
		}
		// The target must really be the file the right checksums describe.
		if actual := b.sum(buf); actual != chunk.Sum1 {
			return nil, &Error{
				Kind:  KindChecksumValidation,
				Block: int64(i),
				Path:  b.opts.Target,
				Err:   errors.Errorf("target checksum %d != expected %d", actual, chunk.Sum1),
			}
		}
		if err := w.WriteRecord(uint32(i), buf); err != nil {
			return nil, withPath(err, b.opts.Output)
		}
		sum.Changed = append(sum.Changed, uint32(i))
	}

	sum.PayloadBytes = w.PayloadBytes()
	sum.Size = w.Written()
	b.log.Info("delta built",
		zap.Uint64("blocks", count),
		zap.Int("records", w.Records()),
		zap.Uint64("payloadBytes", sum.PayloadBytes),
		zap.Int64("size", sum.Size))
	return sum, nil
}

func truncated(block uint64, path string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &Error{
		Kind:  KindChecksumStreamTruncated,
		Block: int64(block),
		Path:  path,
		Err:   errors.Wrap(err, "reading checksum"),
	}
}

func withPath(err error, path string) error {
	if e, ok := err.(*Error); ok && e.Path == "" {
		e.Path = path
	}
	return err
}
