package logger

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "bsdelta.log")
	log, err := New(Config{Debug: true, Format: "json", File: file})
	if err != nil {
		t.Fatal(err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("debug level not enabled")
	}
	log.Debug("checksums differ")
	log.Sync()

	data, err := ioutil.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"checksums differ"`) {
		t.Errorf("log file content %q", data)
	}
}

func TestDefaultLevel(t *testing.T) {
	log, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("debug enabled by default")
	}
}
