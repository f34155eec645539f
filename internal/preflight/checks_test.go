package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckInputReadable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.gff")
	if err := os.WriteFile(file, []byte("##PAF\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := CheckInputReadable(file)
	if !res.Passed || res.Err() != nil {
		t.Fatalf("expected pass, got %+v", res)
	}

	res = CheckInputReadable(filepath.Join(dir, "missing.gff"))
	if res.Passed || !strings.Contains(res.Detail, "does not exist") {
		t.Fatalf("expected missing failure, got %+v", res)
	}
	if err := res.Err(); err == nil || !strings.HasPrefix(err.Error(), "Input file: ") {
		t.Fatalf("unexpected error %v", err)
	}

	res = CheckInputReadable(dir)
	if res.Passed || !strings.Contains(res.Detail, "is a directory") {
		t.Fatalf("expected directory failure, got %+v", res)
	}
}

func TestCheckInputReadablePermissions(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	file := filepath.Join(t.TempDir(), "locked.gff")
	if err := os.WriteFile(file, []byte("x"), 0o000); err != nil {
		t.Fatal(err)
	}
	res := CheckInputReadable(file)
	if res.Passed || !strings.Contains(res.Detail, "insufficient permissions") {
		t.Fatalf("expected permission failure, got %+v", res)
	}
}
