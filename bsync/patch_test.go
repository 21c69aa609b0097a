package bsync

import (
	"bytes"
	"math"
	"testing"
)

func rawArtifact(t *testing.T, hdr *Header, records ...Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteHeader(&buf, hdr); err != nil {
		t.Fatal(err)
	}
	for _, r := range records {
		if err := WriteUint32(&buf, r.Index); err != nil {
			t.Fatal(err)
		}
		buf.Write(r.Payload)
	}
	return buf.Bytes()
}

func TestApplyRejectsMalformedArtifacts(t *testing.T) {
	hdr := NewHeader(DATA, 10, 4, nil)
	tests := []struct {
		name     string
		artifact []byte
		want     Kind
	}{
		{"checksum stream instead of delta", rawArtifact(t, NewHeader(CHECKSUM, 10, 4, nil)), KindHeaderRead},
		{"repeated index", rawArtifact(t, hdr, Record{1, []byte("bbbb")}, Record{1, []byte("bbbb")}), KindBlockRead},
		{"decreasing index", rawArtifact(t, hdr, Record{1, []byte("bbbb")}, Record{0, []byte("aaaa")}), KindBlockRead},
		{"index out of range", rawArtifact(t, hdr, Record{3, []byte("dd")}), KindBlockRead},
		{"truncated payload", rawArtifact(t, hdr, Record{0, []byte("aa")}), KindBlockRead},
		{"truncated index", append(rawArtifact(t, hdr), 1, 0), KindBlockRead},
	}
	for _, tt := range tests {
		_, _, err := Apply(bytes.NewReader(tt.artifact), &memFile{})
		if KindOf(err) != tt.want {
			t.Errorf("%s: got %v, want %s", tt.name, err, tt.want)
		}
	}
}

func TestApplyEmptyDelta(t *testing.T) {
	dst := &memFile{data: []byte("unchanged!")}
	hdr, n, err := Apply(bytes.NewReader(rawArtifact(t, NewHeader(DATA, 10, 4, []byte("tag")))), dst)
	if err != nil || n != 0 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(hdr.UserData) != "tag" || string(dst.data) != "unchanged!" {
		t.Errorf("header %s, data %q", hdr, dst.data)
	}
}

func TestReadBlockOutOfRange(t *testing.T) {
	hdr := NewHeader(DATA, 8, 4, nil)
	if _, err := ReadBlock(hdr, 2, bytes.NewReader([]byte("AAAABBBB"))); KindOf(err) != KindBlockRead {
		t.Errorf("got %v, want block read error", err)
	}
	got, err := ReadBlock(hdr, 1, bytes.NewReader([]byte("AAAABBBB")))
	if err != nil || string(got) != "BBBB" {
		t.Errorf("block 1: %q, %v", got, err)
	}
}

func TestReadChecksums(t *testing.T) {
	stream := checksumStream(t, []byte("AAAABBBBCC"), 4)
	hdr, sums, err := ReadChecksums(bytes.NewReader(stream))
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Type != CHECKSUM || len(sums) != 3 {
		t.Fatalf("header %s, %d sums", hdr, len(sums))
	}
	if sums[2].ChunkLen != 2 || sums[2].FileOffset != 8 || sums[2].Sum1 != Adler32([]byte("CC")) {
		t.Errorf("unexpected last chunk %+v", sums[2])
	}
	if _, _, err := ReadChecksums(bytes.NewReader(stream[:len(stream)-2])); KindOf(err) != KindChecksumStreamTruncated {
		t.Errorf("truncated stream: %v", err)
	}
}

func TestRecordPayloadLargerThanArtifact(t *testing.T) {
	for _, size := range []uint64{1 << 34, 1 << 62, math.MaxUint64} {
		artifact := rawArtifact(t, NewHeader(DATA, size, size, nil), Record{Index: 0, Payload: []byte("short")})
		_, _, err := Apply(bytes.NewReader(artifact), &memFile{})
		if KindOf(err) != KindBlockRead {
			t.Errorf("size %d: got %v, want block read error", size, err)
		}
	}
}

func TestWriteChecksumsSourceShorterThanBlock(t *testing.T) {
	var out bytes.Buffer
	_, err := WriteChecksums(bytes.NewReader([]byte("short")), 1<<40, 1<<40, nil, &out, nil)
	if KindOf(err) != KindBlockRead {
		t.Errorf("got %v, want block read error", err)
	}
}
