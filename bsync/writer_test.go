package bsync

import (
	"bytes"
	"testing"
)

type syncBuffer struct {
	bytes.Buffer
	syncs int
}

func (s *syncBuffer) Sync() error {
	s.syncs++
	return nil
}

func TestWriterSyncsEveryRecord(t *testing.T) {
	dst := &syncBuffer{}
	w := NewWriter(dst)
	if err := w.WriteHeader(NewHeader(DATA, 10, 4, nil)); err != nil {
		t.Fatal(err)
	}
	headerLen := dst.Len()
	if headerLen == 0 {
		t.Fatal("header not flushed")
	}
	if err := w.WriteRecord(0, []byte("aaaa")); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRecord(2, []byte("cc")); err != nil {
		t.Fatal(err)
	}
	if dst.syncs != 3 {
		t.Errorf("%d syncs, want one per header and record", dst.syncs)
	}
	if want := headerLen + 4 + 4 + 4 + 2; dst.Len() != want {
		t.Errorf("wrote %d bytes, want %d", dst.Len(), want)
	}
	if w.Records() != 2 || w.PayloadBytes() != 6 || w.Written() != int64(dst.Len()) {
		t.Errorf("records=%d payload=%d written=%d", w.Records(), w.PayloadBytes(), w.Written())
	}
}

func TestWriterRejects(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if err := w.WriteRecord(0, []byte("aaaa")); KindOf(err) != KindWrite {
		t.Errorf("record before header: %v", err)
	}
	if err := w.WriteHeader(NewHeader(CHECKSUM, 10, 4, nil)); KindOf(err) != KindHeaderWrite {
		t.Errorf("CHECKSUM header accepted: %v", err)
	}
	if err := w.WriteHeader(NewHeader(DATA, 10, 4, nil)); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteHeader(NewHeader(DATA, 10, 4, nil)); KindOf(err) != KindHeaderWrite {
		t.Errorf("second header accepted: %v", err)
	}

	tests := []struct {
		name    string
		index   uint32
		payload []byte
	}{
		{"short payload", 1, []byte("bb")},
		{"long last payload", 2, []byte("cccc")},
		{"index out of range", 3, []byte("dd")},
	}
	for _, tt := range tests {
		if err := w.WriteRecord(tt.index, tt.payload); KindOf(err) != KindWrite {
			t.Errorf("%s: got %v, want write error", tt.name, err)
		}
	}

	if err := w.WriteRecord(1, []byte("bbbb")); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRecord(1, []byte("bbbb")); KindOf(err) != KindWrite {
		t.Errorf("repeated index accepted: %v", err)
	}
	if err := w.WriteRecord(0, []byte("aaaa")); KindOf(err) != KindWrite {
		t.Errorf("decreasing index accepted: %v", err)
	}
}
