package bsync

import (
	"hash/adler32"
)

// ChecksumFunc computes the per-block weak checksum stored in checksum streams.
type ChecksumFunc func(p []byte) uint32

// Adler32 is the checksum every stream produced by this tool uses.
func Adler32(p []byte) uint32 {
	return adler32.Checksum(p)
}

// SumChunk describes one block of a checksum stream.
type SumChunk struct {
	Index      uint64
	FileOffset int64
	ChunkLen   uint64
	Sum1       uint32
}

// Chunk returns the geometry of block i for h.
func (h *Header) Chunk(i uint64, sum uint32) SumChunk {
	return SumChunk{
		Index:      i,
		FileOffset: int64(i * h.BlockSize),
		ChunkLen:   h.BlockPayloadSize(i),
		Sum1:       sum,
	}
}
