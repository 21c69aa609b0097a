package storage

import (
	"io"
	"io/ioutil"
)

/*
A /dev/null-like sink for dry runs and tests
*/

type NULL struct {
}

func (nu *NULL) Put(objectName string, content io.Reader, objectSize int64, metadata ArtifactMetadata) (written int64, err error) {
	return io.Copy(ioutil.Discard, content)
}

func (nu *NULL) Delete(objectName string) error {
	return nil
}

func (nu *NULL) Close() error {
	return nil
}
