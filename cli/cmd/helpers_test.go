package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestIsHandledError(t *testing.T) {
	if IsHandledError(nil) {
		t.Fatalf("nil is not handled")
	}
	if IsHandledError(errors.New("plain")) {
		t.Fatalf("plain errors are not handled")
	}
	if !IsHandledError(handledError{msg: "stop"}) {
		t.Fatalf("handledError must be handled")
	}
	wrapped := fmt.Errorf("outer: %w", handledError{msg: "stop"})
	if !IsHandledError(wrapped) {
		t.Fatalf("wrapped handledError must be handled")
	}
}

func TestUsageErrorPrintsUsageAndSilences(t *testing.T) {
	cmd := &cobra.Command{Use: "demo"}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)

	err := usageError(cmd, "bad flags")
	if err == nil || err.Error() != "bad flags" {
		t.Fatalf("err: %v", err)
	}
	if !IsHandledError(err) {
		t.Fatalf("usage errors are handled errors")
	}
	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Fatalf("usage errors must silence cobra's own reporting")
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Fatalf("usage text missing: %q", errOut.String())
	}
}

func TestSuccessfRespectsNoStatus(t *testing.T) {
	cmd := &cobra.Command{Use: "demo"}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)

	previous := noStatusOutput
	t.Cleanup(func() { noStatusOutput = previous })

	noStatusOutput = false
	successf(cmd, "done %d", 1)
	if !strings.Contains(errOut.String(), "[OK] done 1") {
		t.Fatalf("status missing: %q", errOut.String())
	}

	errOut.Reset()
	noStatusOutput = true
	successf(cmd, "done %d", 2)
	if errOut.Len() != 0 {
		t.Fatalf("status printed despite --no-status: %q", errOut.String())
	}
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	if !strings.HasPrefix(formatVersion(), "idstack ") {
		t.Fatalf("version line: %q", formatVersion())
	}
}
