package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests root command wiring.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	if cmd.Use != "credscan" {
		t.Errorf("expected Use 'credscan', got %q", cmd.Use)
	}
	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("expected usage and error output to be silenced")
	}

	want := map[string]bool{"scan": false, "history": false, "init": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

// TestRootCmdHelp tests that help output renders.
func TestRootCmdHelp(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected help to succeed, got %v", err)
	}
	if !strings.Contains(buf.String(), "url:username:password") {
		t.Errorf("expected help to describe the tool, got: %s", buf.String())
	}
}

// TestRootCmdUnknownSubcommand tests the error for an unknown subcommand.
func TestRootCmdUnknownSubcommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"nonsense"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown subcommand")
	}
}
