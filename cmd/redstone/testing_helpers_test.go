package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/internal/format"
)

// testDocBytes is a document named "Level" holding {version: Int 42,
// name: String "overworld"}.
var testDocBytes = []byte{
	0x0A,
	0x00, 0x05, 'L', 'e', 'v', 'e', 'l',
	0x03, 0x00, 0x07, 'v', 'e', 'r', 's', 'i', 'o', 'n', 0x00, 0x00, 0x00, 0x2A,
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x09, 'o', 'v', 'e', 'r', 'w', 'o', 'r', 'l', 'd',
	0x00,
}

// writeTestDocument writes testDocBytes to a temp file, wrapped in the
// given compression (compression.Unknown writes it raw).
func writeTestDocument(t *testing.T, kind compression.Kind) string {
	t.Helper()

	data := testDocBytes
	if kind != compression.Unknown {
		var err error
		data, err = compression.Compress(testDocBytes, kind)
		if err != nil {
			t.Fatalf("compress fixture: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "level.dat")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// writeTestRegion writes a region file holding one zlib chunk of
// testDocBytes at (x, z), stamped with modTime.
func writeTestRegion(t *testing.T, x, z int, modTime uint32) string {
	t.Helper()

	payload, err := compression.Compress(testDocBytes, compression.Zlib)
	if err != nil {
		t.Fatalf("compress fixture: %v", err)
	}

	data := make([]byte, format.HeaderSize+format.SectorSize)
	idx := x + z*format.ChunksPerAxis
	format.PutU24(data, idx*format.LocationEntrySize, 2)
	data[idx*format.LocationEntrySize+3] = 1
	format.PutU32(data, format.TimestampTableOffset+idx*format.TimestampEntrySize, modTime)

	off := 2 * format.SectorSize
	format.PutU32(data, off, uint32(len(payload)+1))
	data[off+format.ChunkLengthSize] = format.ChunkZlib
	copy(data[off+format.ChunkHeaderSize:], payload)

	path := filepath.Join(t.TempDir(), "r.0.0.mcr")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// resetFlags restores the global and per-command flags between tests.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	dumpFormat = "text"
	dumpDepth = 0
	dumpChunk = ""
	dumpRaw = false
	extractOutput = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
