package storage

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Local publishes artifacts into a directory.
type Local struct {
	workDir string
}

func NewLocal(topDir string) (*Local, error) {
	if topDir == "" {
		return nil, errors.New("local storage needs a directory")
	}
	if err := os.MkdirAll(topDir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "creating local storage directory")
	}
	return &Local{workDir: topDir}, nil
}

// Put replaces any existing object of the same name. Metadata is not stored
// locally; the catalog keeps it.
func (l *Local) Put(objectName string, content io.Reader, objectSize int64, metadata ArtifactMetadata) (written int64, err error) {
	fpath, err := l.path(objectName)
	if err != nil {
		return -1, err
	}
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return -1, err
	}
	defer f.Close()

	fb := bufio.NewWriter(f)
	if written, err = io.Copy(fb, content); err != nil {
		return written, err
	}
	if err = fb.Flush(); err != nil {
		return written, err
	}
	if written != objectSize {
		return written, errors.Errorf("wrote %d bytes of %s, expected %d", written, objectName, objectSize)
	}
	return written, f.Sync()
}

// Delete succeeds when the object is already gone.
func (l *Local) Delete(objectName string) error {
	fpath, err := l.path(objectName)
	if err != nil {
		return err
	}
	if err := os.Remove(fpath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Local) Close() error {
	return nil
}

// objects are flat files under workDir
func (l *Local) path(objectName string) (string, error) {
	base := filepath.Base(filepath.Clean(objectName))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", errors.Errorf("invalid object name %q", objectName)
	}
	return filepath.Join(l.workDir, base), nil
}
