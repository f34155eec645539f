package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mpevm/internal/testsupport"
)

func TestGeneCommandWritesStdout(t *testing.T) {
	isolateConfig(t)
	input := testsupport.WriteMiniprotGFF(t)

	stdout, stderr, err := runCLI(t, "gene", input)
	if err != nil {
		t.Fatalf("gene: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 records, got %d:\n%s", len(lines), stdout)
	}
	requireContains(t, lines[0], "\tgene\t")
	requireContains(t, lines[0], "ID=G_MP000001;Name=miniprot model MP000001")
	requireContains(t, lines[1], "ID=MP000001;Parent=G_MP000001;Rank=1")
	if strings.Contains(stdout, "stop_codon") {
		t.Fatalf("stop codon leaked into output:\n%s", stdout)
	}
	if stderr != "Done! Read 9 lines\n" {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestAlignmentCommandWritesFileAndSummary(t *testing.T) {
	isolateConfig(t)
	input := testsupport.WriteMiniprotGFF(t)
	target := filepath.Join(t.TempDir(), "out", "protein_alignments.gff3")

	stdout, stderr, err := runCLI(t, "alignment", input, "--output", target, "--summary")
	if err != nil {
		t.Fatalf("alignment: %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected nothing on stdout, got %q", stdout)
	}
	requireContains(t, stderr, "Done! Read 9 lines")
	requireContains(t, stderr, "Records written")
	requireContains(t, stderr, "Written nucleotide_to_protein_match")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 match records, got %d", len(got))
	}
	for _, line := range got {
		fields := strings.Split(line, "\t")
		if fields[1] != "miniprot_protAln" || fields[2] != "nucleotide_to_protein_match" {
			t.Fatalf("unexpected labels in %q", line)
		}
	}
	requireContains(t, got[0], "\t100.00\t")
}

func TestConvertCommandUsageErrors(t *testing.T) {
	isolateConfig(t)
	input := testsupport.WriteMiniprotGFF(t)

	for _, args := range [][]string{{"gene"}, {"alignment", input, input}} {
		stdout, _, err := runCLI(t, args...)
		var usage *usageError
		if !errors.As(err, &usage) {
			t.Fatalf("%v: err = %v, want usage error", args, err)
		}
		want := "USAGE: mpevm " + args[0] + " <miniprot GFF file>"
		if usage.Error() != want {
			t.Fatalf("usage = %q, want %q", usage.Error(), want)
		}
		if stdout != "" {
			t.Fatalf("usage error produced output %q", stdout)
		}
		if code := exitCode(err); code != 2 {
			t.Fatalf("exit code = %d, want 2", code)
		}
	}
}

func TestConvertCommandMalformedInput(t *testing.T) {
	isolateConfig(t)
	input := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "bad.gff"),
		"##PAF\nctg1\tminiprot\tmRNA\t1\t9\t0\t+\t.\tID=a\nctg1 miniprot CDS 1 9\n")

	_, stderr, err := runCLI(t, "gene", input)
	if err == nil {
		t.Fatal("expected error")
	}
	requireContains(t, err.Error(), "line 3")
	requireContains(t, err.Error(), "ctg1 miniprot CDS 1 9")
	if strings.Contains(stderr, "Done!") {
		t.Fatalf("completion message printed on failure: %q", stderr)
	}
	if code := exitCode(err); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestConvertCommandMissingInput(t *testing.T) {
	isolateConfig(t)
	_, _, err := runCLI(t, "gene", filepath.Join(t.TempDir(), "missing.gff"))
	if err == nil {
		t.Fatal("expected error")
	}
	requireContains(t, err.Error(), "does not exist")
}

func TestConvertCommandUsesConfig(t *testing.T) {
	isolateConfig(t)
	cfg := testsupport.NewConfig(t, testsupport.WithAlignerName("protaligner"))
	configPath := testsupport.WriteConfig(t, cfg)
	input := testsupport.WriteMiniprotGFF(t)

	stdout, _, err := runCLI(t, "--config", configPath, "gene", input)
	if err != nil {
		t.Fatalf("gene: %v", err)
	}
	requireContains(t, stdout, "Name=protaligner model MP000001")
}

func TestConvertCommandDebugJSONLogs(t *testing.T) {
	isolateConfig(t)
	input := testsupport.WriteMiniprotGFF(t)

	_, stderr, err := runCLI(t, "--log-level", "debug", "--log-format", "json", "gene", input)
	if err != nil {
		t.Fatalf("gene: %v", err)
	}
	var runIDs []string
	flushes := 0
	for _, line := range strings.Split(strings.TrimSuffix(stderr, "\n"), "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if id, ok := payload["run_id"].(string); ok {
			runIDs = append(runIDs, id)
		}
		if payload["msg"] == "block flushed" {
			flushes++
		}
	}
	if flushes != 2 {
		t.Fatalf("expected 2 block flush logs, got %d:\n%s", flushes, stderr)
	}
	if len(runIDs) == 0 {
		t.Fatalf("expected run_id in logs:\n%s", stderr)
	}
	for _, id := range runIDs {
		if id != runIDs[0] {
			t.Fatalf("run_id changed within one run: %v", runIDs)
		}
	}
	requireContains(t, stderr, "Done! Read 9 lines")
}

func TestConvertCommandRejectsBadLogFlag(t *testing.T) {
	isolateConfig(t)
	input := testsupport.WriteMiniprotGFF(t)
	_, _, err := runCLI(t, "--log-level", "loud", "gene", input)
	if err == nil {
		t.Fatal("expected error")
	}
	requireContains(t, err.Error(), "logging.level")
}
