package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChartCommand_WritesPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.pdf")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"chart", "--birth-date", "2024-03-01", "--names", "Alba,Bruno", "--title", "A-Wurf", "-o", out})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("chart: %v", err)
	}

	doc, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("expected a pdf document")
	}
	if !strings.Contains(stdout.String(), "wrote "+out) {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestChartCommand_RejectsBadDate(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"chart", "--birth-date", "01/03/2024", "-o", filepath.Join(t.TempDir(), "x.pdf")})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
