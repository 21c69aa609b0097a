package storage

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ArtifactMetadata travels with a published delta artifact.
type ArtifactMetadata struct {
	BlockSize uint64
	TotalSize uint64
	Blocks    uint64
	Records   int
	Digest    string // hex BLAKE2b-256 of the artifact
	UserData  string
}

// Map renders the metadata as string pairs for object stores.
func (m ArtifactMetadata) Map() map[string]string {
	data := map[string]string{
		"blocksize": strconv.FormatUint(m.BlockSize, 10),
		"totalsize": strconv.FormatUint(m.TotalSize, 10),
		"blocks":    strconv.FormatUint(m.Blocks, 10),
		"records":   strconv.Itoa(m.Records),
		"digest":    m.Digest,
	}
	if m.UserData != "" {
		data["userdata"] = m.UserData
	}
	return data
}

// Sink is where finished delta artifacts are published.
type Sink interface {
	Put(objectName string, content io.Reader, objectSize int64, metadata ArtifactMetadata) (written int64, err error)
	Delete(objectName string) error
	Close() error
}

// Config selects and configures a Sink.
type Config struct {
	Backend  string // none, local, minio or null
	LocalDir string
	Minio    MinioConfig
}

// Open returns the configured sink, or nil when publishing is disabled.
func Open(conf Config, log *zap.Logger) (Sink, error) {
	switch conf.Backend {
	case "", "none":
		return nil, nil
	case "null":
		return &NULL{}, nil
	case "local":
		return NewLocal(conf.LocalDir)
	case "minio":
		return NewMinio(conf.Minio, log)
	}
	return nil, errors.Errorf("unknown storage backend %q", conf.Backend)
}
