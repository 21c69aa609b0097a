package bsync

const (
	// Version is written into every header this codec produces.
	Version uint32 = 2
	// WildcardVersion on the right side is accepted against any left version.
	WildcardVersion uint32 = 1

	// fixed part of the header: version, type, blockSize, totalSize, userDataLength
	headerFixedLen = 4 + 4 + 8 + 8 + 4
	MaxUserDataLen = 64 * 1024

	// width of a delta record index
	indexLen = 4

	// largest buffer allocated up front from a length read off the wire
	maxPrealloc = 1 << 20

	DefaultBlockSize uint64 = 4096
)

// FileType distinguishes a checksum stream from a delta artifact.
type FileType uint32

const (
	CHECKSUM FileType = 0
	DATA     FileType = 1
)

func (t FileType) Valid() bool {
	return t == CHECKSUM || t == DATA
}

func (t FileType) String() string {
	switch t {
	case CHECKSUM:
		return "CHECKSUM"
	case DATA:
		return "DATA"
	}
	return "INVALID"
}
