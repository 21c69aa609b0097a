package bsync

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies every failure a run can end with.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindOpen
	KindHeaderRead
	KindHeaderWrite
	KindHeaderMismatch
	KindChecksumStreamTruncated
	KindBlockRead
	KindChecksumValidation
	KindWrite
	KindPublish
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindOpen:
		return "open error"
	case KindHeaderRead:
		return "header read error"
	case KindHeaderWrite:
		return "header write error"
	case KindHeaderMismatch:
		return "header mismatch"
	case KindChecksumStreamTruncated:
		return "checksum stream truncated"
	case KindBlockRead:
		return "block read error"
	case KindChecksumValidation:
		return "checksum validation error"
	case KindWrite:
		return "write error"
	case KindPublish:
		return "publish error"
	}
	return "unknown error"
}

// Mismatch is the result of CheckCompatibility. MismatchNone means compatible.
type Mismatch int

const (
	MismatchNone Mismatch = iota
	VersionMismatch
	BlockSizeMismatch
	TotalSizeMismatch
	TypeMismatch
)

func (m Mismatch) String() string {
	switch m {
	case MismatchNone:
		return "compatible"
	case VersionMismatch:
		return "version mismatch"
	case BlockSizeMismatch:
		return "block size mismatch"
	case TotalSizeMismatch:
		return "total size mismatch"
	case TypeMismatch:
		return "type mismatch"
	}
	return "unknown mismatch"
}

// Exit codes, stable so that scripts can branch on them.
const (
	ExitSuccess            = 0
	ExitUnknown            = 1
	ExitConfiguration      = 2
	ExitOpen               = 3
	ExitHeaderRead         = 4
	ExitHeaderWrite        = 5
	ExitVersionMismatch    = 6
	ExitBlockSizeMismatch  = 7
	ExitTotalSizeMismatch  = 8
	ExitTypeMismatch       = 9
	ExitChecksumTruncated  = 10
	ExitBlockRead          = 11
	ExitChecksumValidation = 12
	ExitWrite              = 13
	ExitPublish            = 14
)

// NoBlock marks an Error that is not tied to a block index.
const NoBlock int64 = -1

// Error is the single error type returned by this package.
type Error struct {
	Kind     Kind
	Mismatch Mismatch // only for KindHeaderMismatch
	Block    int64    // block index, or NoBlock
	Path     string   // file involved, if any
	Err      error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Kind == KindHeaderMismatch {
		msg += ": " + e.Mismatch.String()
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Block != NoBlock {
		msg += fmt.Sprintf(" at block %d", e.Block)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode maps the error onto the documented process exit status.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfiguration:
		return ExitConfiguration
	case KindOpen:
		return ExitOpen
	case KindHeaderRead:
		return ExitHeaderRead
	case KindHeaderWrite:
		return ExitHeaderWrite
	case KindHeaderMismatch:
		switch e.Mismatch {
		case VersionMismatch:
			return ExitVersionMismatch
		case BlockSizeMismatch:
			return ExitBlockSizeMismatch
		case TotalSizeMismatch:
			return ExitTotalSizeMismatch
		case TypeMismatch:
			return ExitTypeMismatch
		}
	case KindChecksumStreamTruncated:
		return ExitChecksumTruncated
	case KindBlockRead:
		return ExitBlockRead
	case KindChecksumValidation:
		return ExitChecksumValidation
	case KindWrite:
		return ExitWrite
	case KindPublish:
		return ExitPublish
	}
	return ExitUnknown
}

func newError(kind Kind, block int64, err error) *Error {
	return &Error{Kind: kind, Block: block, Err: err}
}

func pathError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Block: NoBlock, Path: path, Err: err}
}

// Errorf builds an Error of the given kind for callers outside the package,
// e.g. the command layer reporting configuration or publish failures.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Block: NoBlock, Err: errors.Errorf(format, args...)}
}

// WithKind tags err with kind unless it already carries one.
func WithKind(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: kind, Block: NoBlock, Err: err}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode returns the process exit status for err; nil is success.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitUnknown
}
