package storage

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenBackends(t *testing.T) {
	sink, err := Open(Config{Backend: "none"}, nil)
	if err != nil || sink != nil {
		t.Errorf("none: sink=%v err=%v", sink, err)
	}
	if sink, err := Open(Config{Backend: "null"}, nil); err != nil || sink == nil {
		t.Errorf("null: sink=%v err=%v", sink, err)
	}
	if _, err := Open(Config{Backend: "local"}, nil); err == nil {
		t.Errorf("local without a directory accepted")
	}
	if _, err := Open(Config{Backend: "minio"}, nil); err == nil {
		t.Errorf("minio without an endpoint accepted")
	}
	if _, err := Open(Config{Backend: "ftp"}, nil); err == nil {
		t.Errorf("unknown backend accepted")
	}
}

func TestLocalPut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "published")
	sink, err := Open(Config{Backend: "local", LocalDir: dir}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer sink.Close()

	content := []byte("delta artifact bytes")
	n, err := sink.Put("/tmp/build/app.delta", bytes.NewReader(content), int64(len(content)), ArtifactMetadata{})
	if err != nil || n != int64(len(content)) {
		t.Fatalf("Put: n=%d err=%v", n, err)
	}
	got, err := ioutil.ReadFile(filepath.Join(dir, "app.delta"))
	if err != nil || !bytes.Equal(got, content) {
		t.Fatalf("published content %q, %v", got, err)
	}

	if _, err := sink.Put("short.delta", bytes.NewReader(content), 100, ArtifactMetadata{}); err == nil {
		t.Errorf("size mismatch not reported")
	}
	if _, err := sink.Put("..", bytes.NewReader(content), int64(len(content)), ArtifactMetadata{}); err == nil {
		t.Errorf("invalid name accepted")
	}

	if err := sink.Delete("app.delta"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "app.delta")); !os.IsNotExist(err) {
		t.Errorf("object still present after Delete")
	}
	if err := sink.Delete("app.delta"); err != nil {
		t.Errorf("deleting a missing object: %v", err)
	}
}

func TestNullPut(t *testing.T) {
	n, err := (&NULL{}).Put("x", bytes.NewReader(make([]byte, 10)), 10, ArtifactMetadata{})
	if err != nil || n != 10 {
		t.Errorf("n=%d err=%v", n, err)
	}
}

func TestMetadataMap(t *testing.T) {
	m := ArtifactMetadata{BlockSize: 4, TotalSize: 10, Blocks: 3, Records: 1, Digest: "ab"}.Map()
	if m["blocksize"] != "4" || m["totalsize"] != "10" || m["blocks"] != "3" || m["records"] != "1" || m["digest"] != "ab" {
		t.Errorf("unexpected map %v", m)
	}
	if _, ok := m["userdata"]; ok {
		t.Errorf("empty user data exported")
	}
}

func TestDigestFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty")
	if err := ioutil.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	digest, n, err := DigestFile(p)
	if err != nil || n != 0 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	// BLAKE2b-256 of the empty string
	if want := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"; digest != want {
		t.Errorf("digest %s, want %s", digest, want)
	}
	if _, _, err := DigestFile(p + ".missing"); err == nil {
		t.Errorf("missing file hashed")
	}
}
