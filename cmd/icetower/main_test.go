package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogFileClosedAfterCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icetower.log")
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = "" })

	if err := setupLogging(listCmd, nil); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	f := logFile
	if f == nil {
		t.Fatal("setupLogging() did not keep the log file")
	}
	logger.Info("log file ready")

	if err := closeLogging(listCmd, nil); err != nil {
		t.Fatalf("closeLogging() error = %v", err)
	}
	if logFile != nil {
		t.Errorf("logFile = %v, expected nil after close", logFile)
	}
	if _, err := f.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Write after close error = %v, expected %v", err, os.ErrClosed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "log file ready") {
		t.Errorf("log file = %q, expected the logged line", data)
	}
}

func TestCloseLoggingWithoutFile(t *testing.T) {
	logFile = nil
	if err := closeLogging(listCmd, nil); err != nil {
		t.Errorf("closeLogging() error = %v, expected nil", err)
	}
}
