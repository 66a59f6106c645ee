package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// useTempState points the state file at a fresh temp dir and resets flags
func useTempState(t *testing.T) string {
	t.Helper()
	statePath = filepath.Join(t.TempDir(), "derctl.json")
	quiet = false
	verbose = false
	jsonOut = false
	importText = false
	importType = ""
	importNoEncap = false
	addLabel = ""
	exportOutput = ""
	exportFormat = "bin"
	nodesLimit = -1
	showDepth = 0
	showMaxBytes = 64
	showOffsets = false
	return statePath
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

	// Drain concurrently so large outputs do not block on the pipe buffer.
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}
